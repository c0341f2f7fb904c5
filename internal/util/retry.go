// ABOUTME: Retry utilities for classifier API calls with exponential backoff
// ABOUTME: Shared delay calculation so every caller backs off the same way
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff bounds the delay regardless of attempt count
const maxBackoff = 30 * time.Second

// CalculateBackoff returns the delay before the given retry attempt: the
// base delay doubled per attempt, capped at 30s, with jitter in the ±25%
// range from auto-seeded math/rand/v2. Attempt 0 (the first try) waits 0.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30 // avoid overflow in the shift below
	}

	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}

	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
