package marquee

import "math"

// Offset returns horizontal offset of content's left edge relative to the
// viewport's left edge, for the given state.
//
//	Idle:      Leading 0, Center (vw-cw)/2, Trailing vw-cw
//	Ready:     RightToLeft vw, LeftToRight -cw
//	Animating: RightToLeft -cw, LeftToRight vw
//
// Negative and non finite widths are treated as zero.
func Offset(state State, direction Direction, idleAlignment Alignment, contentWidth, viewportWidth float64) float64 {
	cw, vw := sanitize(contentWidth), sanitize(viewportWidth)
	switch state {
	case Ready:
		if direction == RightToLeft {
			return vw
		}
		return -cw
	case Animating:
		if direction == RightToLeft {
			return -cw
		}
		return vw
	default:
		switch idleAlignment {
		case Center:
			return 0.5 * (vw - cw)
		case Trailing:
			return vw - cw
		default:
			return 0
		}
	}
}

// fits reports whether content fits the viewport. Empty content or an
// empty viewport always fits.
func fits(contentWidth, viewportWidth float64) bool {
	cw, vw := sanitize(contentWidth), sanitize(viewportWidth)
	if cw == 0 || vw == 0 {
		return true
	}
	return cw < vw
}

func sanitize(w float64) float64 {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}
