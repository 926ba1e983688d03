package marquee

import (
	"io"
	"math"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// Layout places content at offset within a viewport of width cells and
// clips the rest. Returned slice has exactly width elements, trailing cells
// of a wide rune are 0. A wide rune crossing either edge is blanked.
func Layout(content string, offset float64, width int) []rune {
	if width <= 0 {
		return nil
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}
	if math.IsNaN(offset) || offset >= float64(width) {
		return cells
	}
	// clamp far left offsets, content never spans that much
	x := int(math.Round(math.Max(offset, math.MinInt32)))
	for _, r := range stripansi.Strip(content) {
		if x >= width {
			break
		}
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= width {
			cells[x] = r
			for i := 1; i < rw; i++ {
				cells[x+i] = 0
			}
		}
		x += rw
	}
	return cells
}

// RenderLine writes content laid out by Layout.
func RenderLine(w io.Writer, content string, offset float64, width int) error {
	var sb strings.Builder
	for _, r := range Layout(content, offset, width) {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
