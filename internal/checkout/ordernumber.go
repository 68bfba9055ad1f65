package checkout

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const orderNumberRandLen = 5

// NewOrderNumber generates a customer-facing order number:
// "ORD-" + millisecond timestamp + random suffix, both base-36,
// uppercased. Collision-resistant in practice, not cryptographic.
func NewOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, orderNumberRandLen)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return strings.ToUpper("ORD-" + timestamp + "-" + string(suffix))
}
