package utils

import (
	"fmt"
	"learnhub/config"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FFD60A; color: #000814; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD60A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendCourseEnrollmentEmail confirms a successful enrollment to the student.
// Callers treat a failure as non-fatal.
func SendCourseEnrollmentEmail(email, name, courseName string) error {
	subject := fmt.Sprintf("Successfully Enrolled into %s", courseName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled into <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start learning right away.</p>
		<a href="#" class="btn">Go to Dashboard</a>
	`, name, courseName)

	return SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// SendPaymentSuccessEmail confirms a received payment. Amount is in the major
// currency unit (rupees).
func SendPaymentSuccessEmail(email, name string, amount float64, orderID, paymentID string) error {
	subject := "Payment Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>&#8377;%.2f</strong>.</p>
		<div class="info-box">
			<strong>Order ID:</strong> %s<br>
			<strong>Payment ID:</strong> %s
		</div>
		<p>Your courses will appear on your dashboard shortly.</p>
	`, name, amount, orderID, paymentID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Payment Successful", body))
}
