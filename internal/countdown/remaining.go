package countdown

import "time"

// age is how long ago start happened, never negative.
func age(start, now time.Time) time.Duration {
	if d := now.Sub(start); d > 0 {
		return d
	}
	return 0
}
