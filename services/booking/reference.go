package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// referencePrefix is the brand tag on every reference number.
const referencePrefix = "HALA"

// maxReferenceAttempts bounds regeneration when the random suffix collides.
const maxReferenceAttempts = 5

// newReferenceNumber builds a reference of the shape HALA-YYYYMMDD-NNNN,
// where NNNN is a random 4-digit suffix. Uniqueness is ultimately enforced
// by the persistence layer's unique index.
func newReferenceNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", referencePrefix, now.Format("20060102"), 1000+randomInt(9000))
}

// generateVerificationCode returns a 6-digit code uniform over 100000-999999.
func generateVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+randomInt(900000))
}

// randomInt returns a secure random integer in [0, max).
func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// no safe fallback for payment codes.
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	return n.Int64()
}
