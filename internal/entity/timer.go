package entity

import "time"

// Timer is a countdown driven by the frame loop. It never blocks; callers
// feed it elapsed time every tick and poll Done.
type Timer struct {
	Lifetime time.Duration
}

func (that *Timer) Start(lifetime time.Duration) {
	that.Lifetime = lifetime
}

// Update subtracts one frame from the timer if it has not expired yet.
func (that *Timer) Update(elapsed time.Duration) {
	if that.Lifetime > 0 {
		that.Lifetime -= elapsed
	}
}

func (that *Timer) Done() bool {
	return that.Lifetime <= 0
}
