package arkanoid

// Effect durations and magnitudes, in seconds and world units.
const (
	pierceDuration    = 2.0
	slowMoDuration    = 5.0
	slowMoFactor      = 0.45 // dt multiplier while slow motion is on
	slowMoSpeedFactor = 0.4  // applied to target speed on pickup
	magnetDuration    = 6.0
	magnetStrength    = 600.0
	scoreMultDuration = 8.0
	freezeDuration    = 5.0
	freezeSpeedFactor = 0.2
)

// effect is a timed modifier. The timer is authoritative: the effect is
// active iff the timer is positive.
type effect struct {
	timer    float64
	duration float64
}

// activate arms (or re-arms) the effect for its full duration.
func (e *effect) activate() {
	e.timer = e.duration
}

// active reports whether the effect is currently on.
func (e *effect) active() bool {
	return e.timer > 0
}

// tick advances the timer and reports whether the effect expired on this
// exact tick, so the caller can reset magnitudes to neutral values.
func (e *effect) tick(dt float64) bool {
	if e.timer <= 0 {
		return false
	}
	e.timer -= dt
	if e.timer <= 0 {
		e.timer = 0
		return true
	}
	return false
}

// reset turns the effect off immediately.
func (e *effect) reset() {
	e.timer = 0
}

// remaining returns the seconds left, zero when inactive.
func (e *effect) remaining() float64 {
	if e.timer < 0 {
		return 0
	}
	return e.timer
}
