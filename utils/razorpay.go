package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"learnhub/config"

	"github.com/go-resty/resty/v2"
)

const razorpayOrderURL = "https://api.razorpay.com/v1/orders"

// RazorpayOrderRequest is the order-creation payload sent to the gateway
type RazorpayOrderRequest struct {
	Amount   int    `json:"amount"` // smallest currency unit (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// RazorpayOrder represents the gateway's order record
type RazorpayOrder struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int    `json:"amount"`
	AmountPaid int    `json:"amount_paid"`
	AmountDue  int    `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

// CreateRazorpayOrder raises a pending order with the payment gateway
func CreateRazorpayOrder(order RazorpayOrderRequest) (*RazorpayOrder, error) {
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpaySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		Post(razorpayOrderURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway error: %s", resp.String())
	}

	var created RazorpayOrder
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %v", err)
	}

	return &created, nil
}

// VerifyRazorpaySignature checks the signature the gateway returned for a
// captured payment: hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
// The comparison is constant-time.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
