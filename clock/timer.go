// Package clock holds the frame-time timers used by the game flow. Every query is a pure
// function of the caller's current time, so timers never read a global clock.
package clock

// Timer measures time since it was set. The zero value is unset.
type Timer struct {
	start    float64
	duration float64
	set      bool
}

// Set starts the timer at now with the given duration.
func (t *Timer) Set(now, duration float64) {
	t.start = now
	t.duration = duration
	t.set = true
}

func (t *Timer) Unset() {
	*t = Timer{}
}

func (t Timer) IsSet() bool {
	return t.set
}

func (t Timer) Duration() float64 {
	return t.duration
}

// Time is the time passed since Set, or 0 when unset.
func (t Timer) Time(now float64) float64 {
	if !t.set {
		return 0
	}
	return now - t.start
}

// Elapsed reports whether a set timer has run its full duration.
func (t Timer) Elapsed(now float64) bool {
	return t.set && now-t.start >= t.duration
}

// Active reports whether the timer is set and still running.
func (t Timer) Active(now float64) bool {
	return t.set && now-t.start < t.duration
}

// Percent is the completed fraction in [0,1]. Unset timers report 0, zero-length ones 1.
func (t Timer) Percent(now float64) float64 {
	if !t.set {
		return 0
	}
	if t.duration <= 0 {
		return 1
	}
	return clamp01((now - t.start) / t.duration)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
