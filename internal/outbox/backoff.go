package outbox

import (
	"math/rand"
	"time"
)

// Base delays per attempt number (1-based). Attempts beyond the table
// reuse the last entry.
var backoffBase = []time.Duration{
	2 * time.Second,
	10 * time.Second,
	30 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
}

const minRetryDelay = time.Second

// retryDelay computes how long to wait before the next publish attempt.
//
// When the transport supplied a retry-after hint it wins, capped at
// maxRetryAfter. Otherwise the base schedule for this attempt number is
// multiplied by a jitter factor in [0.7, 1.3) so a burst of failures does
// not resynchronize across dispatcher nodes, and floored at one second.
func retryDelay(attempt int, retryAfter, maxRetryAfter time.Duration, rng *rand.Rand) time.Duration {
	if retryAfter > 0 {
		if retryAfter > maxRetryAfter {
			return maxRetryAfter
		}
		return retryAfter
	}

	if attempt < 1 {
		attempt = 1
	}
	base := backoffBase[len(backoffBase)-1]
	if attempt <= len(backoffBase) {
		base = backoffBase[attempt-1]
	}

	jitter := 0.7 + 0.6*rng.Float64()
	delay := time.Duration(float64(base) * jitter)
	if delay < minRetryDelay {
		delay = minRetryDelay
	}
	return delay
}
