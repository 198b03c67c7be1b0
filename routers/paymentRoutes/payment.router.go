package paymentRoutes

import (
	controllers "learnhub/controllers/payment"
	"learnhub/middleware"
	validators "learnhub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the course purchase routes
func SetupPaymentRoutes(app *fiber.App) {
	group := app.Group("/payment")

	group.Post("/capture", middleware.JWTMiddleware, validators.CapturePayment(), controllers.CapturePayment)
	group.Post("/verify", middleware.JWTMiddleware, validators.VerifyPayment(), controllers.VerifyPayment)
	group.Post("/success-email", middleware.JWTMiddleware, validators.PaymentSuccessEmail(), controllers.SendPaymentSuccessEmail)
}
