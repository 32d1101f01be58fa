package bounce

// Deferred is a tick-counted one-shot timer owned by the session.
// It fires at most once per Schedule and can be cancelled at any time.
type Deferred struct {
	remaining int
	armed     bool
}

// Schedule arms the timer to fire after the given number of ticks,
// replacing any pending schedule.
func (d *Deferred) Schedule(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	d.remaining = ticks
	d.armed = true
}

// Cancel disarms the timer. Returns whether it was armed. Safe to call repeatedly.
func (d *Deferred) Cancel() bool {
	was := d.armed
	d.armed = false
	d.remaining = 0
	return was
}

// Pending reports whether the timer is armed.
func (d *Deferred) Pending() bool {
	return d.armed
}

// Remaining returns the ticks left before the timer fires.
func (d *Deferred) Remaining() int {
	return d.remaining
}

// Tick advances the timer. Returns true exactly once, on the tick it fires.
func (d *Deferred) Tick() bool {
	if !d.armed {
		return false
	}
	if d.remaining > 0 {
		d.remaining--
	}
	if d.remaining == 0 {
		d.armed = false
		return true
	}
	return false
}
