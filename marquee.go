package marquee

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/rs/zerolog"
	"github.com/vbauerster/marquee/cwriter"
)

const (
	// default RefreshRate
	defaultRefreshRate = 60 * time.Millisecond
	// default width, if terminal width is unknown
	defaultWidth = 80
)

// Marquee renders one scrolling line. All methods are safe for concurrent
// use, they are serialized through the serve goroutine.
type Marquee struct {
	operateState chan func(*mState)
	done         chan struct{}
	cancel       func()
	once         sync.Once

	// following is used after done is receiveable
	cacheFrame  Frame
	cacheConfig Config
}

// mState is owned by the serve goroutine.
type mState struct {
	ctrl     *Controller
	measurer Measurer
	content  func() string
	cw       *cwriter.Writer
	frame    Frame
	rendered bool
	rate     ewma.MovingAverage
	lastTick time.Time

	// following are provided by user
	conf             Config
	width            int
	rr               time.Duration
	manualRC         <-chan interface{}
	output           io.Writer
	shutdownNotifier chan struct{}
	pendingMount     bool
	logger           zerolog.Logger
	ctrlOptions      []ControllerOption
}

// New creates new Marquee instance rendering what content returns.
// It's the same as NewWithContext(context.Background(), content, options...)
func New(content func() string, options ...Option) *Marquee {
	return NewWithContext(context.Background(), content, options...)
}

// NewWithContext creates new Marquee instance, which renders until ctx is
// cancelled or Shutdown is called. If content is nil, empty line is
// rendered.
func NewWithContext(ctx context.Context, content func() string, options ...Option) *Marquee {
	if content == nil {
		content = func() string { return "" }
	}
	s := &mState{
		content:      content,
		conf:         DefaultConfig(),
		rr:           defaultRefreshRate,
		output:       os.Stdout,
		pendingMount: true,
		rate:         ewma.NewMovingAverage(),
		logger:       zerolog.Nop(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.cw = cwriter.New(s.output)
	ctrlOptions := append([]ControllerOption{WithLogger(s.logger)}, s.ctrlOptions...)
	s.ctrl = NewController(s.conf, ctrlOptions...)

	ctx, cancel := context.WithCancel(ctx)
	m := &Marquee{
		operateState: make(chan func(*mState)),
		done:         make(chan struct{}),
		cancel:       cancel,
	}
	go m.serve(ctx, s)
	return m
}

func (m *Marquee) serve(ctx context.Context, s *mState) {
	defer func() {
		m.cacheFrame = s.frame
		m.cacheConfig = s.ctrl.Config()
		if s.shutdownNotifier != nil {
			close(s.shutdownNotifier)
		}
		close(m.done)
	}()

	s.logger.Debug().
		Bool("terminal", s.cw.IsTerminal()).
		Int("width", s.viewportWidth()).
		Msg("marquee serve")

	var refreshCh <-chan time.Time
	if s.manualRC == nil {
		ticker := time.NewTicker(s.rr)
		defer ticker.Stop()
		refreshCh = ticker.C
	}

	for {
		select {
		case op := <-m.operateState:
			op(s)
		case <-refreshCh:
			s.render()
		case <-s.manualRC:
			s.render()
		case <-ctx.Done():
			s.ctrl.Unmount()
			s.frame = s.ctrl.Sample()
			if err := s.cw.Clear(); err != nil {
				s.logger.Warn().Err(err).Msg("marquee clear")
			}
			return
		}
	}
}

func (s *mState) render() {
	width := s.viewportWidth()
	s.ctrl.SetViewportWidth(float64(width))

	text := s.content()
	if w, changed := s.measurer.Update(text); changed {
		s.ctrl.SetContentWidth(w)
	}
	if s.pendingMount {
		s.pendingMount = false
		s.ctrl.Mount()
	}
	s.rendered = true

	s.frame = s.ctrl.Sample()
	if !s.frame.Mounted {
		text = ""
	}
	if err := RenderLine(s.cw, text, s.frame.Offset, width); err != nil {
		s.logger.Warn().Err(err).Msg("marquee render")
	}
	if err := s.cw.Flush(); err != nil {
		s.logger.Warn().Err(err).Msg("marquee flush")
	}

	now := s.ctrl.clock.Now()
	if !s.lastTick.IsZero() {
		s.rate.Add(now.Sub(s.lastTick).Seconds())
	}
	s.lastTick = now
}

func (s *mState) viewportWidth() int {
	if s.width > 0 {
		return s.width
	}
	if !s.cw.IsTerminal() {
		return defaultWidth
	}
	tw, err := s.cw.GetTermWidth()
	if err != nil || tw <= 0 {
		return defaultWidth
	}
	return tw
}

// operate runs fn on the serve goroutine, reports false after shutdown.
func (m *Marquee) operate(fn func(*mState)) bool {
	select {
	case m.operateState <- fn:
		return true
	case <-m.done:
		return false
	}
}

// Mount starts rendering content. Before the first frame it's deferred
// until content is measured.
func (m *Marquee) Mount() {
	m.operate(func(s *mState) {
		if !s.rendered {
			s.pendingMount = true
			return
		}
		s.ctrl.Mount()
	})
}

// Unmount stops rendering content, blank line is rendered instead.
func (m *Marquee) Unmount() {
	m.operate(func(s *mState) {
		s.pendingMount = false
		s.ctrl.Unmount()
	})
}

// SetDuration sets lap duration, zero or Infinite stops animation.
func (m *Marquee) SetDuration(d time.Duration) {
	m.operate(func(s *mState) { s.ctrl.SetDuration(d) })
}

// SetAutoreverses toggles lap reversal.
func (m *Marquee) SetAutoreverses(autoreverses bool) {
	m.operate(func(s *mState) { s.ctrl.SetAutoreverses(autoreverses) })
}

// SetDirection sets sweep direction.
func (m *Marquee) SetDirection(d Direction) {
	m.operate(func(s *mState) { s.ctrl.SetDirection(d) })
}

// SetStopWhenNotOverflowing sets fit policy, effective on next reset.
func (m *Marquee) SetStopWhenNotOverflowing(stop bool) {
	m.operate(func(s *mState) { s.ctrl.SetStopWhenNotOverflowing(stop) })
}

// SetIdleAlignment sets resting position.
func (m *Marquee) SetIdleAlignment(a Alignment) {
	m.operate(func(s *mState) { s.ctrl.SetIdleAlignment(a) })
}

// Config returns current config, or the last one after shutdown.
func (m *Marquee) Config() Config {
	result := make(chan Config, 1)
	if m.operate(func(s *mState) { result <- s.ctrl.Config() }) {
		return <-result
	}
	return m.cacheConfig
}

// Frame returns last rendered frame.
func (m *Marquee) Frame() Frame {
	result := make(chan Frame, 1)
	if m.operate(func(s *mState) { result <- s.frame }) {
		return <-result
	}
	return m.cacheFrame
}

// FrameRate returns smoothed count of rendered frames per second.
func (m *Marquee) FrameRate() float64 {
	result := make(chan float64, 1)
	if m.operate(func(s *mState) {
		if v := s.rate.Value(); v > 0 {
			result <- 1 / v
			return
		}
		result <- 0
	}) {
		return <-result
	}
	return 0
}

// Shutdown stops serve goroutine and clears the line. After this method
// has been called, there is no way to reuse Marquee instance.
func (m *Marquee) Shutdown() {
	m.once.Do(m.cancel)
	<-m.done
}

// Done returns channel closed after serve goroutine has exited.
func (m *Marquee) Done() <-chan struct{} {
	return m.done
}
