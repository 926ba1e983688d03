package marquee

import "time"

// Clock is the time source driving interpolation.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// animation is a repeating, linearly eased interpolation between offsets of
// two states. It is cancelled by dropping it, stale generations never
// notify.
type animation struct {
	gen          uint64
	from, to     State
	start        time.Time
	duration     time.Duration
	autoreverses bool
}

// progress returns interpolation fraction in [0,1] and count of completed
// laps at now. With autoreverses odd laps run backwards.
func (a *animation) progress(now time.Time) (fraction float64, lap int) {
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	lap = int(elapsed / a.duration)
	fraction = float64(elapsed%a.duration) / float64(a.duration)
	if a.autoreverses && lap%2 == 1 {
		fraction = 1 - fraction
	}
	return fraction, lap
}
