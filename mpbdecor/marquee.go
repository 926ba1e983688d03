// Package mpbdecor adapts marquee.Controller to a decorator of
// "github.com/vbauerster/mpb/v8" bars.
//
// Every decorator returned owns its controller, don't share one among
// multiple *mpb.Bar instances.
package mpbdecor

import (
	"strings"

	"github.com/vbauerster/marquee"
	"github.com/vbauerster/mpb/v8/decor"
)

// Marquee returns marquee decorator that will scroll text through a window
// of ws cells, according to conf.
//
//	`text` is the scrolling message
//
//	`ws` controls the showing window size
//
//	`conf` marquee config, see marquee.DefaultConfig
//
//	`wcc` optional WC config
func Marquee(text string, ws uint, conf marquee.Config, wcc ...decor.WC) decor.Decorator {
	return New(marquee.NewController(conf), text, ws, wcc...)
}

// New returns marquee decorator driven by provided controller. Controller
// is mounted on first render, on complete or abort event it's stopped and
// text rests at its idle alignment.
func New(c *marquee.Controller, text string, ws uint, wcc ...decor.WC) decor.Decorator {
	f := func(st decor.Statistics) string {
		return frameText(c, text, int(ws), st.Completed || st.Aborted)
	}
	return decor.Any(f, wcc...)
}

func frameText(c *marquee.Controller, text string, ws int, stop bool) string {
	if float64(ws) != c.ViewportWidth() {
		c.SetViewportWidth(float64(ws))
	}
	if !c.Mounted() {
		c.SetContentWidth(marquee.Width(text))
		c.Mount()
	}
	if stop && c.Config().Animates() {
		c.SetDuration(0)
	}
	var sb strings.Builder
	_ = marquee.RenderLine(&sb, text, c.Sample().Offset, ws)
	return sb.String()
}
