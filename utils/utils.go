package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// RandomIndex picks a uniform random index in [0, n). Returns -1 when n <= 0
// so callers can skip selection on an empty candidate set. A variable so tests
// can swap in a deterministic picker.
var RandomIndex = func(n int) int {
	if n <= 0 {
		return -1
	}
	return rand.Intn(n)
}

// GenerateReceipt builds a time-derived unique receipt identifier for gateway orders
func GenerateReceipt() string {
	return fmt.Sprintf("rcpt_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
