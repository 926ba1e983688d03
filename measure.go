package marquee

import (
	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// Width returns number of terminal cells s occupies, ANSI escape sequences
// excluded.
func Width(s string) float64 {
	return float64(runewidth.StringWidth(stripansi.Strip(s)))
}

// Measurer tracks content width between renders.
type Measurer struct {
	width    float64
	measured bool
}

// Update measures content. Changed is true on first call and whenever width
// differs from the previous one.
func (m *Measurer) Update(content string) (width float64, changed bool) {
	width = Width(content)
	changed = !m.measured || width != m.width
	m.width, m.measured = width, true
	return width, changed
}
