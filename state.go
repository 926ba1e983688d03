package marquee

//go:generate stringer -type=State

// State is the position class of the content within its viewport.
type State uint8

const (
	// Idle rests the content at its idle alignment.
	Idle State = iota
	// Ready places the content just outside the entering edge.
	Ready
	// Animating is the interpolation target, just outside the exiting edge.
	Animating
)

// validTransition reports whether from -> to is allowed. Starting goes
// Idle -> Ready -> Animating, stopping may happen from anywhere.
func validTransition(from, to State) bool {
	switch to {
	case Idle:
		return true
	case Ready:
		return from == Idle
	case Animating:
		return from == Ready
	}
	return false
}
