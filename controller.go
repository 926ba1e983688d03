package marquee

import (
	"time"

	"github.com/rs/zerolog"
)

// Frame is a sampled rendering instruction.
type Frame struct {
	State State
	// Offset of content's left edge, in the same units as the widths.
	Offset float64
	// Lap is count of completed laps of the running animation.
	Lap int
	// Generation changes on every state jump or animation start.
	Generation uint64
	// Running is true while a repeating animation is in flight.
	Running bool
	// Mounted is false if content must not be rendered.
	Mounted bool
}

// ControllerOption is a func option to alter default behavior of a
// Controller, if passed to NewController.
type ControllerOption func(*Controller)

// WithClock overrides wall clock time source.
func WithClock(clock Clock) ControllerOption {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets logger for debug level state transition logs.
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithTransitionHook registers fn to be called on every state change.
func WithTransitionHook(fn func(from, to State)) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.transitionHooks = append(c.transitionHooks, fn)
		}
	}
}

// WithLapHook registers fn to be called with the latest completed lap.
// Laps are detected while sampling, so fn is called from within Sample, at
// most once per call. Laps completed between two samples are reported as
// one call with the latest lap.
func WithLapHook(fn func(lap int)) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.lapHooks = append(c.lapHooks, fn)
		}
	}
}

// Controller is the offset state machine of a marquee. It exclusively owns
// the state, config and geometry are inputs it reads. A Controller is not
// safe for concurrent use.
type Controller struct {
	conf          Config
	state         State
	contentWidth  float64
	viewportWidth float64
	mounted       bool

	generation uint64
	anim       *animation
	lastLap    int

	clock           Clock
	logger          zerolog.Logger
	transitionHooks []func(from, to State)
	lapHooks        []func(lap int)
}

// NewController returns unmounted idle controller. Call Mount to start.
func NewController(conf Config, options ...ControllerOption) *Controller {
	c := &Controller{
		conf:   conf,
		clock:  wallClock{},
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Mount attaches the controller and resets animation.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.Reset()
}

// Unmount detaches the controller, forcing Idle.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.stop()
}

// Reset re-derives animation state from current inputs. The in-flight
// animation, if any, is always replaced.
func (c *Controller) Reset() {
	c.logger.Debug().
		Dur("duration", c.conf.Duration).
		Bool("autoreverses", c.conf.Autoreverses).
		Stringer("direction", c.conf.Direction).
		Float64("contentWidth", c.contentWidth).
		Float64("viewportWidth", c.viewportWidth).
		Bool("mounted", c.mounted).
		Msg("marquee reset")
	if !c.mounted || !c.conf.Animates() {
		c.stop()
		return
	}
	c.start()
}

func (c *Controller) start() {
	if c.conf.StopWhenNotOverflowing && fits(c.contentWidth, c.viewportWidth) {
		c.stop()
		return
	}
	c.jumpTo(Ready)
	c.animateTo(Animating, c.conf.Duration, c.conf.Autoreverses)
}

func (c *Controller) stop() {
	c.jumpTo(Idle)
}

// jumpTo sets state immediately, cancelling in-flight animation.
func (c *Controller) jumpTo(s State) {
	c.cancel()
	c.setState(s)
}

// animateTo starts repeating interpolation from current state to s.
func (c *Controller) animateTo(s State, d time.Duration, autoreverses bool) {
	from := c.state
	c.cancel()
	c.anim = &animation{
		gen:          c.generation,
		from:         from,
		to:           s,
		start:        c.clock.Now(),
		duration:     d,
		autoreverses: autoreverses,
	}
	c.setState(s)
}

func (c *Controller) cancel() {
	c.generation++
	c.anim = nil
	c.lastLap = 0
}

func (c *Controller) setState(s State) {
	from := c.state
	if from == s {
		return
	}
	if !validTransition(from, s) {
		c.setState(Idle)
		from = Idle
	}
	c.state = s
	c.logger.Debug().
		Stringer("from", from).
		Stringer("to", s).
		Uint64("generation", c.generation).
		Msg("marquee transition")
	for _, fn := range c.transitionHooks {
		fn(from, s)
	}
}

// Sample returns frame at clock's current time.
func (c *Controller) Sample() Frame {
	f := Frame{
		State:      c.state,
		Generation: c.generation,
		Mounted:    c.mounted,
	}
	if c.anim == nil {
		f.Offset = c.offsetOf(c.state)
		return f
	}
	anim := c.anim
	fraction, lap := anim.progress(c.clock.Now())
	from, to := c.offsetOf(anim.from), c.offsetOf(anim.to)
	f.Offset = from + (to-from)*fraction
	f.Lap = lap
	f.Running = true
	c.notifyLaps(anim.gen, lap)
	return f
}

// notifyLaps calls every lap hook once with the latest completed lap, if
// it advanced since last call. Laps missed between two samples are
// coalesced. A hook may reset the controller, then remaining hooks of the
// stale generation are skipped.
func (c *Controller) notifyLaps(gen uint64, lap int) {
	if lap <= c.lastLap {
		return
	}
	c.lastLap = lap
	for _, fn := range c.lapHooks {
		if c.generation != gen {
			return
		}
		fn(lap)
	}
}

func (c *Controller) offsetOf(s State) float64 {
	return Offset(s, c.conf.Direction, c.conf.IdleAlignment, c.contentWidth, c.viewportWidth)
}

// SetConfig replaces whole config. Animation is reset if any of duration,
// autoreverses or direction has changed.
func (c *Controller) SetConfig(conf Config) {
	old := c.conf
	c.conf = conf
	if old.Duration != conf.Duration ||
		old.Autoreverses != conf.Autoreverses ||
		old.Direction != conf.Direction {
		c.Reset()
	}
}

// SetDuration sets lap duration, resets animation on change.
func (c *Controller) SetDuration(d time.Duration) {
	conf := c.conf
	conf.Duration = d
	c.SetConfig(conf)
}

// SetAutoreverses sets autoreverses, resets animation on change.
func (c *Controller) SetAutoreverses(autoreverses bool) {
	conf := c.conf
	conf.Autoreverses = autoreverses
	c.SetConfig(conf)
}

// SetDirection sets sweep direction, resets animation on change.
func (c *Controller) SetDirection(d Direction) {
	conf := c.conf
	conf.Direction = d
	c.SetConfig(conf)
}

// SetStopWhenNotOverflowing sets the fit policy. It takes effect on next
// reset.
func (c *Controller) SetStopWhenNotOverflowing(stop bool) {
	c.conf.StopWhenNotOverflowing = stop
}

// SetIdleAlignment sets resting position, idle offset follows immediately.
func (c *Controller) SetIdleAlignment(a Alignment) {
	c.conf.IdleAlignment = a
}

// SetContentWidth is the measurement change notification. Every call
// resets animation.
func (c *Controller) SetContentWidth(w float64) {
	c.contentWidth = w
	c.Reset()
}

// SetViewportWidth updates viewport width, read at offset computation.
func (c *Controller) SetViewportWidth(w float64) {
	c.viewportWidth = w
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Config() Config { return c.conf }
func (c *Controller) Mounted() bool { return c.mounted }
func (c *Controller) Generation() uint64 { return c.generation }
func (c *Controller) ContentWidth() float64 { return c.contentWidth }
func (c *Controller) ViewportWidth() float64 { return c.viewportWidth }
