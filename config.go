package marquee

import (
	"math"
	"time"
)

// Infinite lap duration disables animation, same as zero.
const Infinite = time.Duration(math.MaxInt64)

// Config is the set of user facing knobs of a marquee.
type Config struct {
	// Duration of one lap. Zero, negative or Infinite disables animation.
	Duration time.Duration
	// Autoreverses makes every other lap sweep back instead of snapping
	// to the start offset.
	Autoreverses bool
	Direction    Direction
	// StopWhenNotOverflowing keeps content idle if it fits the viewport.
	StopWhenNotOverflowing bool
	IdleAlignment          Alignment
}

// DefaultConfig returns config with animation disabled. Unset duration
// means no animation, there is no implied default speed.
func DefaultConfig() Config {
	return Config{
		Duration: Infinite,
	}
}

// Animates reports whether Duration enables animation.
func (c Config) Animates() bool {
	return c.Duration > 0 && c.Duration != Infinite
}
