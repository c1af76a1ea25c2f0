package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/questfield/internal/input"
)

// holdWindow is how long a direction counts as held after its last key
// event. Terminals send repeats while a key is down but never a release.
const holdWindow = 250 * time.Millisecond

// Keys collects key events between ticks and produces one Intent per tick.
type Keys struct {
	tracker  input.DirectionTracker
	lastSeen map[input.Direction]time.Time
	pressed  input.Direction
	confirm  bool
	cancel   bool
	quit     bool
}

// NewKeys returns a Keys with nothing held.
func NewKeys() *Keys {
	return &Keys{lastSeen: make(map[input.Direction]time.Time)}
}

// Handle records a key event received at now.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyEnter:
		k.confirm = true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		k.cancel = true
	case tcell.KeyUp:
		k.press(input.Up, now)
	case tcell.KeyDown:
		k.press(input.Down, now)
	case tcell.KeyLeft:
		k.press(input.Left, now)
	case tcell.KeyRight:
		k.press(input.Right, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'z', 'Z':
			k.confirm = true
		case 'x', 'X':
			k.cancel = true
		case 'q', 'Q':
			k.quit = true
		case 'w', 'k':
			k.press(input.Up, now)
		case 's', 'j':
			k.press(input.Down, now)
		case 'a', 'h':
			k.press(input.Left, now)
		case 'd', 'l':
			k.press(input.Right, now)
		}
	}
}

func (k *Keys) press(d input.Direction, now time.Time) {
	if _, held := k.lastSeen[d]; !held {
		k.tracker.Press(d)
		k.pressed = d
	}
	k.lastSeen[d] = now
}

// Intent releases directions not repeated within the hold window and
// returns the intent for this tick. Confirm, Cancel and Pressed are
// reported once.
func (k *Keys) Intent(now time.Time) input.Intent {
	for d, seen := range k.lastSeen {
		if now.Sub(seen) > holdWindow {
			k.tracker.Release(d)
			delete(k.lastSeen, d)
		}
	}
	in := input.Intent{
		Dir:     k.tracker.Current(),
		Pressed: k.pressed,
		Confirm: k.confirm,
		Cancel:  k.cancel,
	}
	k.pressed = input.None
	k.confirm = false
	k.cancel = false
	return in
}

// Quit reports whether a hard quit key was pressed.
func (k *Keys) Quit() bool {
	return k.quit
}
