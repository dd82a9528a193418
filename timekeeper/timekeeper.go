package timekeeper

import "time"

// TimeKeeper is a wall-clock deadline started at construction.
type TimeKeeper struct {
	start     time.Time
	threshold time.Duration
}

func New(threshold time.Duration) TimeKeeper {
	return TimeKeeper{start: time.Now(), threshold: threshold}
}

// IsTimeOver reports whether the scaled elapsed time has reached the threshold.
func (t TimeKeeper) IsTimeOver() bool {
	return float64(time.Since(t.start))*SafetyFactor >= float64(t.threshold)
}

func (t TimeKeeper) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t TimeKeeper) Threshold() time.Duration {
	return t.threshold
}
