package models

import "time"

// CountdownRemaining returns max(0, duration - elapsed) in whole seconds,
// where elapsed is floored to seconds. A start in the future counts as just
// started.
func CountdownRemaining(start, now time.Time, duration time.Duration) int {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	remaining := int(duration/time.Second) - int(elapsed/time.Second)
	if remaining < 0 {
		return 0
	}

	return remaining
}

// DeadlineRemaining describes now relative to deadline. Deadlines that passed
// less than window ago are Reached and should start a countdown; older ones
// are Expired.
func DeadlineRemaining(now time.Time, deadline *time.Time, window time.Duration) DeadlineStatus {
	if deadline == nil {
		return DeadlineStatus{Kind: DeadlineNone}
	}

	d := *deadline
	status := DeadlineStatus{Deadline: &d}

	diff := d.Sub(now)
	if diff <= 0 {
		if -diff < window {
			status.Kind = DeadlineReached
		} else {
			status.Kind = DeadlineExpired
		}
		return status
	}

	secs := int(diff / time.Second)
	status.Kind = DeadlinePending
	status.Days = secs / 86400
	status.Hours = secs % 86400 / 3600
	status.Minutes = secs % 3600 / 60
	status.Seconds = secs % 60

	return status
}
