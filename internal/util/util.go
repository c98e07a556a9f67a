package util

import (
	"math"
	"time"
)

// DaysRemaining returns the whole days left until end, rounded up. Expired
// windows yield zero or a negative count; callers decide how to render that,
// so no clamping happens here.
func DaysRemaining(end, now time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
