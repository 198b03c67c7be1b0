package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "top-secret"
	sig := sign("order_abc", "pay_xyz", secret)

	assert.True(t, VerifyRazorpaySignature("order_abc", "pay_xyz", sig, secret))
}

func TestVerifyRazorpaySignatureRejectsTampering(t *testing.T) {
	secret := "top-secret"
	sig := sign("order_abc", "pay_xyz", secret)

	// Flip the last hex character
	last := sig[len(sig)-1]
	repl := "0"
	if last == '0' {
		repl = "1"
	}
	tampered := sig[:len(sig)-1] + repl

	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_xyz", tampered, secret))
	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_other", sig, secret))
	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_xyz", sig, "wrong-secret"))
	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_xyz", "", secret))
}
