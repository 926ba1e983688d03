package marquee

import (
	"reflect"
	"testing"
	"time"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2020, 11, 23, 0, 0, 0, 0, time.UTC)}
}

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

type transition struct {
	from, to State
}

type recorder struct {
	transitions []transition
	laps        []int
}

func (r *recorder) options() []ControllerOption {
	return []ControllerOption{
		WithTransitionHook(func(from, to State) {
			r.transitions = append(r.transitions, transition{from, to})
		}),
		WithLapHook(func(lap int) {
			r.laps = append(r.laps, lap)
		}),
	}
}

func (r *recorder) reset() {
	r.transitions = nil
	r.laps = nil
}

var startSequence = []transition{{Idle, Ready}, {Ready, Animating}}

func newTestController(conf Config, cw, vw float64) (*Controller, *manualClock, *recorder) {
	clock := newManualClock()
	rec := new(recorder)
	c := NewController(conf, append(rec.options(), WithClock(clock))...)
	c.SetViewportWidth(vw)
	c.SetContentWidth(cw)
	return c, clock, rec
}

func TestControllerScenarioRightToLeft(t *testing.T) {
	conf := Config{Duration: 5 * time.Second}
	c, clock, rec := newTestController(conf, 500, 200)

	f := c.Sample()
	if f.State != Idle || f.Offset != 0 || f.Mounted {
		t.Fatalf("before mount, want idle at 0, got %+v", f)
	}
	if len(rec.transitions) != 0 {
		t.Fatalf("unmounted controller transitioned: %v", rec.transitions)
	}

	c.Mount()
	if !reflect.DeepEqual(rec.transitions, startSequence) {
		t.Fatalf("want %v, got %v", startSequence, rec.transitions)
	}
	if got := Offset(Ready, conf.Direction, conf.IdleAlignment, 500, 200); got != 200 {
		t.Errorf("ready offset: want 200, got %v", got)
	}
	if got := Offset(Animating, conf.Direction, conf.IdleAlignment, 500, 200); got != -500 {
		t.Errorf("animating offset: want -500, got %v", got)
	}

	testSuite := []struct {
		advance time.Duration
		offset  float64
		lap     int
	}{
		{advance: 0, offset: 200, lap: 0},
		{advance: 2500 * time.Millisecond, offset: -150, lap: 0},
		{advance: 2500 * time.Millisecond, offset: 200, lap: 1},
		{advance: 2500 * time.Millisecond, offset: -150, lap: 1},
		{advance: 5 * time.Second, offset: -150, lap: 2},
	}
	for i, tc := range testSuite {
		clock.Advance(tc.advance)
		f := c.Sample()
		if f.State != Animating || !f.Running || !f.Mounted {
			t.Fatalf("%d: want running animation, got %+v", i, f)
		}
		if f.Offset != tc.offset {
			t.Errorf("%d: want offset %v, got %v", i, tc.offset, f.Offset)
		}
		if f.Lap != tc.lap {
			t.Errorf("%d: want lap %d, got %d", i, tc.lap, f.Lap)
		}
	}
	if want := []int{1, 2}; !reflect.DeepEqual(rec.laps, want) {
		t.Errorf("laps: want %v, got %v", want, rec.laps)
	}
}

func TestControllerScenarioLeftToRight(t *testing.T) {
	conf := Config{Duration: 5 * time.Second, Direction: LeftToRight}
	c, clock, rec := newTestController(conf, 500, 200)
	c.Mount()

	if !reflect.DeepEqual(rec.transitions, startSequence) {
		t.Fatalf("want %v, got %v", startSequence, rec.transitions)
	}
	for _, tc := range []struct {
		advance time.Duration
		offset  float64
	}{
		{0, -500},
		{2500 * time.Millisecond, -150},
		{2500 * time.Millisecond, -500},
	} {
		clock.Advance(tc.advance)
		if got := c.Sample().Offset; got != tc.offset {
			t.Errorf("want offset %v, got %v", tc.offset, got)
		}
	}
}

func TestControllerAutoreverses(t *testing.T) {
	conf := Config{Duration: 5 * time.Second, Autoreverses: true}
	c, clock, _ := newTestController(conf, 500, 200)
	c.Mount()

	for _, tc := range []struct {
		advance time.Duration
		offset  float64
		lap     int
	}{
		{0, 200, 0},
		{2500 * time.Millisecond, -150, 0},
		{2500 * time.Millisecond, -500, 1},
		{1250 * time.Millisecond, -325, 1},
		{3750 * time.Millisecond, 200, 2},
	} {
		clock.Advance(tc.advance)
		f := c.Sample()
		if f.Offset != tc.offset || f.Lap != tc.lap {
			t.Errorf("want offset %v lap %d, got offset %v lap %d", tc.offset, tc.lap, f.Offset, f.Lap)
		}
	}
}

func TestControllerDisabledDuration(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"zero":     0,
		"infinite": Infinite,
		"negative": -time.Second,
	} {
		t.Run(name, func(t *testing.T) {
			// from a running animation
			c, _, rec := newTestController(Config{Duration: time.Second}, 500, 200)
			c.Mount()
			if c.State() != Animating {
				t.Fatalf("want %s, got %s", Animating, c.State())
			}
			rec.reset()
			c.SetDuration(d)
			f := c.Sample()
			if f.State != Idle || f.Running {
				t.Errorf("want stopped idle, got %+v", f)
			}
			if want := []transition{{Animating, Idle}}; !reflect.DeepEqual(rec.transitions, want) {
				t.Errorf("want %v, got %v", want, rec.transitions)
			}

			// from idle
			c, _, rec = newTestController(Config{Duration: d}, 500, 200)
			c.Mount()
			c.Reset()
			if c.State() != Idle || len(rec.transitions) != 0 {
				t.Errorf("want idle without transitions, got %s %v", c.State(), rec.transitions)
			}
		})
	}
}

func TestControllerDefaultConfigDoesNotAnimate(t *testing.T) {
	c, _, rec := newTestController(DefaultConfig(), 500, 200)
	c.Mount()
	if c.State() != Idle || len(rec.transitions) != 0 {
		t.Errorf("want idle without transitions, got %s %v", c.State(), rec.transitions)
	}
}

func TestControllerStopWhenNotOverflowing(t *testing.T) {
	testSuite := []struct {
		name   string
		cw, vw float64
		want   []transition
	}{
		{name: "fits", cw: 100, vw: 300},
		{name: "negative content fits", cw: -100, vw: 300},
		{name: "empty content", cw: 0, vw: 0},
		{name: "empty viewport", cw: 50, vw: 0},
		{name: "exact", cw: 300, vw: 300, want: startSequence},
		{name: "overflows", cw: 500, vw: 200, want: startSequence},
	}
	for _, tc := range testSuite {
		t.Run(tc.name, func(t *testing.T) {
			conf := Config{Duration: 5 * time.Second, StopWhenNotOverflowing: true}
			c, clock, rec := newTestController(conf, tc.cw, tc.vw)
			c.Mount()
			clock.Advance(time.Minute)
			c.Sample()
			if !reflect.DeepEqual(rec.transitions, tc.want) {
				t.Errorf("want %v, got %v", tc.want, rec.transitions)
			}
		})
	}
}

func TestControllerIdleAlignmentChange(t *testing.T) {
	conf := Config{Duration: 5 * time.Second, StopWhenNotOverflowing: true}
	c, clock, rec := newTestController(conf, 100, 300)
	c.Mount()

	for i := 0; i < 3; i++ {
		clock.Advance(time.Hour)
		if f := c.Sample(); f.State != Idle || f.Offset != 0 {
			t.Fatalf("want idle at 0, got %+v", f)
		}
	}

	gen := c.Generation()
	c.SetIdleAlignment(Center)
	if f := c.Sample(); f.State != Idle || f.Offset != 100 {
		t.Errorf("want idle at 100, got %+v", f)
	}
	c.SetIdleAlignment(Trailing)
	if got := c.Sample().Offset; got != 200 {
		t.Errorf("want idle at 200, got %v", got)
	}
	if c.Generation() != gen {
		t.Error("alignment change must not reset")
	}
	if len(rec.transitions) != 0 {
		t.Errorf("unexpected transitions: %v", rec.transitions)
	}
}

func TestControllerRemount(t *testing.T) {
	conf := Config{Duration: 5 * time.Second}
	c, clock, rec := newTestController(conf, 500, 200)

	c.Mount()
	first := rec.transitions
	firstFrame := c.Sample()

	clock.Advance(3 * time.Second)
	rec.reset()
	c.Unmount()
	f := c.Sample()
	if f.State != Idle || f.Running || f.Mounted {
		t.Fatalf("after unmount, want idle unmounted, got %+v", f)
	}
	if want := []transition{{Animating, Idle}}; !reflect.DeepEqual(rec.transitions, want) {
		t.Errorf("unmount: want %v, got %v", want, rec.transitions)
	}

	// config changes while unmounted never animate
	rec.reset()
	c.SetDirection(LeftToRight)
	c.SetDirection(RightToLeft)
	c.SetContentWidth(500)
	if len(rec.transitions) != 0 {
		t.Errorf("unmounted controller transitioned: %v", rec.transitions)
	}

	clock.Advance(time.Second)
	c.Mount()
	if !reflect.DeepEqual(rec.transitions, first) {
		t.Errorf("remount: want %v, got %v", first, rec.transitions)
	}
	f = c.Sample()
	if f.Offset != firstFrame.Offset || f.Lap != firstFrame.Lap || f.State != firstFrame.State {
		t.Errorf("remount: want %+v, got %+v", firstFrame, f)
	}
}

func TestControllerResetTriggers(t *testing.T) {
	conf := Config{Duration: 5 * time.Second}
	testSuite := []struct {
		name  string
		fn    func(*Controller)
		reset bool
	}{
		{name: "same duration", fn: func(c *Controller) { c.SetDuration(5 * time.Second) }},
		{name: "duration", fn: func(c *Controller) { c.SetDuration(time.Second) }, reset: true},
		{name: "same autoreverses", fn: func(c *Controller) { c.SetAutoreverses(false) }},
		{name: "autoreverses", fn: func(c *Controller) { c.SetAutoreverses(true) }, reset: true},
		{name: "same direction", fn: func(c *Controller) { c.SetDirection(RightToLeft) }},
		{name: "direction", fn: func(c *Controller) { c.SetDirection(LeftToRight) }, reset: true},
		{name: "content width", fn: func(c *Controller) { c.SetContentWidth(600) }, reset: true},
		{name: "same content width", fn: func(c *Controller) { c.SetContentWidth(500) }, reset: true},
		{name: "viewport width", fn: func(c *Controller) { c.SetViewportWidth(100) }},
		{name: "alignment", fn: func(c *Controller) { c.SetIdleAlignment(Center) }},
		{name: "stop policy", fn: func(c *Controller) { c.SetStopWhenNotOverflowing(true) }},
		{name: "remount", fn: func(c *Controller) { c.Mount() }},
	}
	for _, tc := range testSuite {
		t.Run(tc.name, func(t *testing.T) {
			c, clock, rec := newTestController(conf, 500, 200)
			c.Mount()
			clock.Advance(time.Second)
			gen := c.Generation()
			rec.reset()

			tc.fn(c)
			if got := c.Generation() != gen; got != tc.reset {
				t.Fatalf("want reset %v, got %v", tc.reset, got)
			}
			if !tc.reset {
				return
			}
			want := append([]transition{{Animating, Idle}}, startSequence...)
			if !reflect.DeepEqual(rec.transitions, want) {
				t.Errorf("want %v, got %v", want, rec.transitions)
			}
			// restarted at ready offset
			f := c.Sample()
			if f.Lap != 0 || f.Offset != c.offsetOf(Ready) {
				t.Errorf("want restart at ready, got %+v", f)
			}
		})
	}
}

func TestControllerTransitionsAreValid(t *testing.T) {
	var invalid []transition
	clock := newManualClock()
	c := NewController(Config{Duration: time.Second}, WithClock(clock), WithTransitionHook(func(from, to State) {
		if !validTransition(from, to) {
			invalid = append(invalid, transition{from, to})
		}
	}))
	c.SetViewportWidth(10)
	c.SetContentWidth(20)
	c.Mount()
	c.SetDirection(LeftToRight)
	c.SetContentWidth(5)
	c.SetStopWhenNotOverflowing(true)
	c.Reset()
	c.SetContentWidth(50)
	c.SetAutoreverses(true)
	c.Unmount()
	c.Mount()
	c.SetDuration(0)
	c.SetDuration(time.Second)
	if len(invalid) != 0 {
		t.Errorf("invalid transitions: %v", invalid)
	}
}

func TestControllerStaleLapsAreDropped(t *testing.T) {
	clock := newManualClock()
	var laps []int
	var c *Controller
	c = NewController(Config{Duration: time.Second}, WithClock(clock), WithLapHook(func(lap int) {
		laps = append(laps, lap)
		// reset from within hook, remaining laps belong to stale generation
		c.SetContentWidth(c.ContentWidth())
	}))
	c.SetViewportWidth(10)
	c.SetContentWidth(20)
	c.Mount()

	clock.Advance(3500 * time.Millisecond)
	c.Sample()
	if want := []int{3}; !reflect.DeepEqual(laps, want) {
		t.Fatalf("want %v, got %v", want, laps)
	}
	if f := c.Sample(); f.Lap != 0 {
		t.Errorf("want fresh animation at lap 0, got %d", f.Lap)
	}
}

func TestControllerLapsNotifiedOnce(t *testing.T) {
	c, clock, rec := newTestController(Config{Duration: time.Second}, 20, 10)
	c.Mount()
	for i := 0; i < 5; i++ {
		c.Sample()
		clock.Advance(500 * time.Millisecond)
	}
	c.Sample()
	if want := []int{1, 2}; !reflect.DeepEqual(rec.laps, want) {
		t.Errorf("want %v, got %v", want, rec.laps)
	}
}

func TestControllerLapsCoalesced(t *testing.T) {
	testSuite := []struct {
		name  string
		hooks bool
	}{
		{name: "without hooks"},
		{name: "with hooks", hooks: true},
	}
	for _, tc := range testSuite {
		t.Run(tc.name, func(t *testing.T) {
			clock := newManualClock()
			var laps []int
			options := []ControllerOption{WithClock(clock)}
			if tc.hooks {
				options = append(options, WithLapHook(func(lap int) {
					laps = append(laps, lap)
				}))
			}
			c := NewController(Config{Duration: time.Nanosecond}, options...)
			c.SetViewportWidth(10)
			c.SetContentWidth(20)
			c.Mount()
			clock.Advance(1000 * time.Hour)

			result := make(chan Frame, 1)
			go func() { result <- c.Sample() }()
			var f Frame
			select {
			case f = <-result:
			case <-time.After(timeout):
				t.Fatalf("Sample didn't return after %v", timeout)
			}

			want := int(1000 * time.Hour / time.Nanosecond)
			if f.Lap != want {
				t.Errorf("want lap %d, got %d", want, f.Lap)
			}
			if tc.hooks && !reflect.DeepEqual(laps, []int{want}) {
				t.Errorf("want single notification %v, got %v", []int{want}, laps)
			}
			c.Sample()
			if len(laps) > 1 {
				t.Errorf("same lap notified again: %v", laps)
			}
		})
	}
}
