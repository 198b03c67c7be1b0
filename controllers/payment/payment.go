package paymentController

import (
	"errors"
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	paymentValidator "learnhub/validators/payment"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Swappable collaborators so tests can stub the gateway and the mailer
var (
	createOrder             = utils.CreateRazorpayOrder
	sendEnrollmentEmail     = utils.SendCourseEnrollmentEmail
	sendPaymentSuccessEmail = utils.SendPaymentSuccessEmail
)

// CapturePayment totals the requested courses and raises a gateway order
func CapturePayment(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated course IDs
	reqData, ok := c.Locals("validatedCapture").(*struct {
		Courses []uint `json:"courses"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Total up the course prices, rejecting unknown and already-bought courses
	totalAmount := 0.0
	for _, courseID := range reqData.Courses {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}

		// Do not allow buying an already-enrolled course
		var enrolled int64
		if err := db.Table("user_courses").
			Where("course_id = ? AND user_id = ?", course.ID, userID).
			Count(&enrolled).Error; err != nil {
			log.Printf("capturePayment error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order", nil)
		}
		if enrolled > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student is already Enrolled", nil)
		}

		totalAmount += course.Price
	}

	orderReq := utils.RazorpayOrderRequest{
		Amount:   int(math.Round(totalAmount * 100)), // rupees to paise
		Currency: "INR",
		Receipt:  utils.GenerateReceipt(),
	}

	order, err := createOrder(orderReq)
	if err != nil {
		log.Printf("capturePayment error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order", nil)
	}

	// Record the pending payment against the gateway order
	payment := models.CoursePayment{
		UserID:          userID,
		RazorpayOrderID: order.ID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		Receipt:         orderReq.Receipt,
		Status:          models.PaymentStatusPending,
	}
	if err := db.Create(&payment).Error; err != nil {
		log.Printf("capturePayment error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", order)
}

// VerifyPayment checks the gateway signature and enrolls the user
func VerifyPayment(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedVerify").(*paymentValidator.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed", nil)
	}

	// Reject before any enrollment side effect happens
	if !utils.VerifyRazorpaySignature(
		reqData.RazorpayOrderID,
		reqData.RazorpayPaymentID,
		reqData.RazorpaySignature,
		config.AppConfig.RazorpaySecret,
	) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment signature", nil)
	}

	db := database.Database.Db

	// Enroll the user course by course. A failure partway leaves earlier
	// enrollments committed.
	for _, courseID := range *reqData.Courses {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not Found", nil)
			}
			log.Printf("verifyPayment error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}

		// Add the user to the course roster. The join table covers both the
		// course's student set and the user's course set, so this is an
		// idempotent set union.
		var enrolled int64
		if err := db.Table("user_courses").
			Where("course_id = ? AND user_id = ?", course.ID, userID).
			Count(&enrolled).Error; err != nil {
			log.Printf("verifyPayment error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}
		if enrolled == 0 {
			if err := db.Exec(
				"INSERT INTO user_courses (user_id, course_id) VALUES (?, ?)",
				userID, course.ID,
			).Error; err != nil {
				log.Printf("verifyPayment error: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
			}
		}

		// A fresh progress record per verification call. Re-verifying the same
		// order duplicates it; kept as-is, see DESIGN.md.
		progress := models.CourseProgress{
			CourseID:        course.ID,
			UserID:          userID,
			CompletedVideos: datatypes.JSON([]byte("[]")),
		}
		if err := db.Create(&progress).Error; err != nil {
			log.Printf("verifyPayment error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}

		// Enrollment email is best-effort and never fails the enrollment
		if err := sendEnrollmentEmail(user.Email, user.FirstName, course.Name); err != nil {
			log.Printf("Enrollment email failed: %v", err)
		}
	}

	// Close out the payment record raised at capture time, best-effort
	if err := db.Model(&models.CoursePayment{}).
		Where("razorpay_order_id = ?", reqData.RazorpayOrderID).
		Updates(map[string]interface{}{
			"razorpay_payment_id": reqData.RazorpayPaymentID,
			"status":              models.PaymentStatusCompleted,
		}).Error; err != nil {
		log.Printf("verifyPayment: failed to mark payment completed: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment Verified", nil)
}

// SendPaymentSuccessEmail mails the payment confirmation to the buyer
func SendPaymentSuccessEmail(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSuccessEmail").(*paymentValidator.PaymentSuccessEmailRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide all the fields", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Paise to rupees for display
	if err := sendPaymentSuccessEmail(
		user.Email,
		user.FirstName,
		float64(*reqData.Amount)/100,
		reqData.OrderID,
		reqData.PaymentID,
	); err != nil {
		log.Printf("sendPaymentSuccessEmail error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not send email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email sent", nil)
}
