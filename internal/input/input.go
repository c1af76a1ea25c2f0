// Package input turns raw key state into per-tick intents.
package input

// Direction is a movement direction on the grid.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid step for d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent is everything the player asked for during one tick. Confirm and
// Cancel are edge-triggered; Dir is the held direction. Pressed is the
// direction whose key went down this tick, or None.
type Intent struct {
	Dir     Direction
	Pressed Direction
	Confirm bool
	Cancel  bool
}

// DirectionTracker tracks held direction keys so the most recently pressed
// one wins. Releasing it hands control back to the newest key still held.
type DirectionTracker struct {
	held []Direction
}

// Press marks d as held and makes it current.
func (t *DirectionTracker) Press(d Direction) {
	if d == None {
		return
	}
	t.Release(d)
	t.held = append(t.held, d)
}

// Release marks d as no longer held.
func (t *DirectionTracker) Release(d Direction) {
	for i, h := range t.held {
		if h == d {
			t.held = append(t.held[:i], t.held[i+1:]...)
			return
		}
	}
}

// Current returns the winning direction, or None when nothing is held.
func (t *DirectionTracker) Current() Direction {
	if len(t.held) == 0 {
		return None
	}
	return t.held[len(t.held)-1]
}
