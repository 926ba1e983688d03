package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/vbauerster/marquee"
	"github.com/vbauerster/marquee/internal/config"
	"github.com/vbauerster/marquee/internal/logging"
	"github.com/vbauerster/marquee/tcellview"
)

func main() {
	fs := config.Flags()
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	settings, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, ok := logging.New(settings.LogLevel, os.Stderr)
	if !ok {
		logger.Warn().Str("logLevel", settings.LogLevel).Msg("unknown log level, using info")
	}

	conf, err := settings.MarqueeConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if settings.RunFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.RunFor)
		defer cancel()
	}

	if settings.Screen {
		err = runScreen(ctx, settings, conf, logger)
	} else {
		err = runLine(ctx, settings, conf, logger)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("marquee")
	}
}

func runLine(ctx context.Context, settings *config.Settings, conf marquee.Config, logger zerolog.Logger) error {
	text := settings.Text
	m := marquee.NewWithContext(ctx, func() string { return text },
		marquee.WithConfig(conf),
		marquee.WithWidth(settings.Width),
		marquee.WithRefreshRate(settings.RefreshRate),
		marquee.WithMarqueeLogger(logger),
		marquee.WithControllerOptions(marquee.WithLapHook(func(lap int) {
			logger.Debug().Int("lap", lap).Msg("lap completed")
		})),
	)
	<-m.Done()
	logger.Info().Float64("fps", m.FrameRate()).Msg("done")
	return nil
}

type row struct {
	label string
	view  *tcellview.View
}

func runScreen(ctx context.Context, settings *config.Settings, conf marquee.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	text := settings.Text
	bold := tcell.StyleDefault.Bold(true)
	newRow := func(label string, conf marquee.Config, content string) row {
		c := marquee.NewController(conf, marquee.WithLogger(logger))
		c.Mount()
		return row{
			label: label,
			view:  tcellview.NewView(c, func() string { return content }, bold),
		}
	}

	reversed := conf
	reversed.Direction = conf.Direction.Reverse()
	bouncing := conf
	bouncing.Autoreverses = !conf.Autoreverses
	fitting := conf
	fitting.StopWhenNotOverflowing = true
	fitting.IdleAlignment = marquee.Center

	rows := []row{
		newRow("configured", conf, text),
		newRow("reversed", reversed, text),
		newRow("autoreverse", bouncing, text),
		newRow("fits", fitting, "fits"),
	}
	primary := rows[0].view.Controller

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(settings.RefreshRate)
	defer ticker.Stop()

	const labelWidth = 14
	draw := func() {
		screen.Clear()
		w, _ := screen.Size()
		width := w - labelWidth
		if settings.Width > 0 && settings.Width < width {
			width = settings.Width
		}
		for i, r := range rows {
			drawString(screen, 0, i*2, r.label, tcell.StyleDefault.Dim(true))
			r.view.Draw(screen, labelWidth, i*2, width)
		}
		frame := primary.Sample()
		mc := primary.Config()
		status := fmt.Sprintf("%s lap:%d dur:%v dir:%s autoreverse:%t mounted:%t  [d]irection [a]utoreverse [+/-] speed [space] mount [q]uit",
			frame.State, frame.Lap, mc.Duration, mc.Direction, mc.Autoreverses, frame.Mounted)
		drawString(screen, 0, len(rows)*2, status, tcell.StyleDefault)
		screen.Show()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'd':
					primary.SetDirection(primary.Config().Direction.Reverse())
				case ev.Rune() == 'a':
					primary.SetAutoreverses(!primary.Config().Autoreverses)
				case ev.Rune() == '+':
					if d := primary.Config().Duration; d > time.Second && d != marquee.Infinite {
						primary.SetDuration(d - time.Second)
					}
				case ev.Rune() == '-':
					d := primary.Config().Duration
					if d == marquee.Infinite || d <= 0 {
						d = 0
					}
					primary.SetDuration(d + time.Second)
				case ev.Rune() == ' ':
					if primary.Mounted() {
						primary.Unmount()
					} else {
						primary.Mount()
					}
				}
			}
		}
	}
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
