package clock

// Countdown is the per-level time budget. Penalties shrink Total and restart the
// underlying timer, while Initial keeps the budget the level started with.
type Countdown struct {
	Initial float64
	Total   float64
	timer   Timer
}

// Start begins a countdown of seconds at now.
func (c *Countdown) Start(now, seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	c.Initial = seconds
	c.Total = seconds
	c.timer.Set(now, seconds)
}

func (c *Countdown) Stop() {
	*c = Countdown{}
}

func (c Countdown) Running() bool {
	return c.timer.IsSet()
}

// Remaining is the budget left at now, never below zero.
func (c Countdown) Remaining(now float64) float64 {
	if !c.timer.IsSet() {
		return 0
	}
	left := c.Total - c.timer.Time(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether a running countdown has reached zero.
func (c Countdown) Expired(now float64) bool {
	return c.timer.IsSet() && c.Remaining(now) <= 0
}

// ApplyPenalty removes seconds from the remaining budget and restarts the timer from now
// with what is left. It returns the new remaining time and whether it hit zero.
func (c *Countdown) ApplyPenalty(now, seconds float64) (remaining float64, exhausted bool) {
	if !c.timer.IsSet() {
		return 0, false
	}
	remaining = c.Remaining(now) - seconds
	if remaining < 0 {
		remaining = 0
	}
	c.Total = remaining
	c.timer.Set(now, remaining)
	return remaining, remaining <= 0
}

// Ratio is the remaining time against the initial budget, in [0,1].
func (c Countdown) Ratio(now float64) float64 {
	if c.Initial <= 0 {
		return 0
	}
	return clamp01(c.Remaining(now) / c.Initial)
}
