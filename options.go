package marquee

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Option is a func option to alter default behavior of a Marquee, if
// passed to New or NewWithContext.
type Option func(*mState)

// WithConfig overrides whole config, see also individual options.
func WithConfig(conf Config) Option {
	return func(s *mState) {
		s.conf = conf
	}
}

// WithDuration sets lap duration, animation is disabled by default.
func WithDuration(d time.Duration) Option {
	return func(s *mState) {
		s.conf.Duration = d
	}
}

// WithAutoreverses makes every other lap sweep back.
func WithAutoreverses() Option {
	return func(s *mState) {
		s.conf.Autoreverses = true
	}
}

// WithDirection overrides default RightToLeft direction.
func WithDirection(d Direction) Option {
	return func(s *mState) {
		s.conf.Direction = d
	}
}

// WithStopWhenNotOverflowing keeps content idle if it fits.
func WithStopWhenNotOverflowing() Option {
	return func(s *mState) {
		s.conf.StopWhenNotOverflowing = true
	}
}

// WithIdleAlignment overrides default Leading idle alignment.
func WithIdleAlignment(a Alignment) Option {
	return func(s *mState) {
		s.conf.IdleAlignment = a
	}
}

// WithWidth sets fixed viewport width. By default terminal width is used,
// falling back to 80 if output is not a terminal.
func WithWidth(width int) Option {
	return func(s *mState) {
		if width > 0 {
			s.width = width
		}
	}
}

// WithRefreshRate overrides default 60ms refresh rate.
func WithRefreshRate(d time.Duration) Option {
	return func(s *mState) {
		if d > 0 {
			s.rr = d
		}
	}
}

// WithManualRefresh disables internal ticker, a frame is rendered each
// time ch is received from.
func WithManualRefresh(ch <-chan interface{}) Option {
	return func(s *mState) {
		s.manualRC = ch
	}
}

// WithOutput overrides default os.Stdout output. If w is nil, output is
// discarded.
func WithOutput(w io.Writer) Option {
	return func(s *mState) {
		if w == nil {
			w = io.Discard
		}
		s.output = w
	}
}

// WithShutdownNotifier channel will be closed after serve loop exits.
func WithShutdownNotifier(ch chan struct{}) Option {
	return func(s *mState) {
		s.shutdownNotifier = ch
	}
}

// WithStartUnmounted doesn't mount on start, call Mount explicitly.
func WithStartUnmounted() Option {
	return func(s *mState) {
		s.pendingMount = false
	}
}

// WithMarqueeLogger sets logger for the serve loop and its controller.
func WithMarqueeLogger(logger zerolog.Logger) Option {
	return func(s *mState) {
		s.logger = logger
	}
}

// WithControllerOptions passes options to the underlying Controller.
// Hooks are called on the serve goroutine.
func WithControllerOptions(options ...ControllerOption) Option {
	return func(s *mState) {
		s.ctrlOptions = append(s.ctrlOptions, options...)
	}
}
