package paymentValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// VerifyPaymentRequest carries the gateway callback fields for verification
type VerifyPaymentRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
	Courses           *[]uint `json:"courses"`
}

// PaymentSuccessEmailRequest carries the fields for the payment confirmation mail
type PaymentSuccessEmailRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Amount    *int   `json:"amount"` // smallest currency unit
}

func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Courses []uint `json:"courses"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Courses) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide course IDs", nil)
		}

		c.Locals("validatedCapture", reqData)
		return c.Next()
	}
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed", nil)
		}

		// All identifiers are required and courses must be a list (an empty
		// list is acceptable, a missing field is not)
		if reqData.RazorpayOrderID == "" || reqData.RazorpayPaymentID == "" ||
			reqData.RazorpaySignature == "" || reqData.Courses == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed", nil)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

func PaymentSuccessEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentSuccessEmailRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OrderID == "" || reqData.PaymentID == "" || reqData.Amount == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all the fields", nil)
		}

		c.Locals("validatedSuccessEmail", reqData)
		return c.Next()
	}
}
