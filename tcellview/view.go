// Package tcellview draws marquee frames into a tcell.Screen.
package tcellview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vbauerster/marquee"
)

// Draw renders content of frame into row y of s, columns [x, x+width).
// Cells outside of content are filled with blanks of style, so the region
// is cleared whether content is mounted or not.
func Draw(s tcell.Screen, x, y, width int, content string, frame marquee.Frame, style tcell.Style) {
	if !frame.Mounted {
		content = ""
	}
	for i, r := range marquee.Layout(content, frame.Offset, width) {
		if r == 0 {
			continue
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}

// View binds a controller to a screen region.
type View struct {
	Controller *marquee.Controller
	Content    func() string
	Style      tcell.Style

	measurer marquee.Measurer
}

// NewView returns view of c, content is measured on each Draw.
func NewView(c *marquee.Controller, content func() string, style tcell.Style) *View {
	return &View{
		Controller: c,
		Content:    content,
		Style:      style,
	}
}

// Draw measures content, updates viewport width, samples controller and
// draws resulting frame. It returns sampled frame.
func (v *View) Draw(s tcell.Screen, x, y, width int) marquee.Frame {
	var text string
	if v.Content != nil {
		text = v.Content()
	}
	v.Controller.SetViewportWidth(float64(width))
	if w, changed := v.measurer.Update(text); changed {
		v.Controller.SetContentWidth(w)
	}
	frame := v.Controller.Sample()
	Draw(s, x, y, width, text, frame, v.Style)
	return frame
}
