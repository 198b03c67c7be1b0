package models

import "gorm.io/gorm"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// CoursePayment records a gateway order raised for a course purchase.
// Created as pending when the order is initiated and marked completed once
// the gateway signature has been verified.
type CoursePayment struct {
	gorm.Model
	UserID            uint   `gorm:"not null;index" json:"userId"`
	RazorpayOrderID   string `gorm:"type:varchar(100);uniqueIndex" json:"razorpayOrderId"`
	RazorpayPaymentID string `gorm:"type:varchar(100)" json:"razorpayPaymentId"`
	Amount            int    `gorm:"not null" json:"amount"` // smallest currency unit (paise)
	Currency          string `gorm:"type:varchar(10);default:'INR'" json:"currency"`
	Receipt           string `gorm:"type:varchar(100)" json:"receipt"`
	Status            string `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
