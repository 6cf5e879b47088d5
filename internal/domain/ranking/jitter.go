package ranking

import (
	"math/rand"
	"time"
)

// NewJitterSource seeds the score perturbation used in production. Tests
// pass a fixed-seed source, or nil to disable jitter entirely.
func NewJitterSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
