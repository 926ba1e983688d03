package marquee

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate stringer -type=Direction
//go:generate stringer -type=Alignment

// Direction is the sweep direction of the content.
type Direction uint8

const (
	// RightToLeft enters at the right edge and exits at the left one.
	RightToLeft Direction = iota
	// LeftToRight enters at the left edge and exits at the right one.
	LeftToRight
)

// Alignment is the resting position of idle content.
type Alignment uint8

const (
	Leading Alignment = iota
	Center
	Trailing
)

var (
	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrUnknownAlignment is returned by ParseAlignment.
	ErrUnknownAlignment = errors.New("unknown alignment")
)

// ParseDirection parses direction name, case insensitive.
// Empty string yields RightToLeft.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rtl", "right2left", "right-to-left", "righttoleft":
		return RightToLeft, nil
	case "ltr", "left2right", "left-to-right", "lefttoright":
		return LeftToRight, nil
	}
	return RightToLeft, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ParseAlignment parses alignment name, case insensitive.
// Empty string yields Leading.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "leading", "left":
		return Leading, nil
	case "center", "centre":
		return Center, nil
	case "trailing", "right":
		return Trailing, nil
	}
	return Leading, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == LeftToRight {
		return RightToLeft
	}
	return LeftToRight
}
