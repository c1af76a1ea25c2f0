package input

import "testing"

func TestDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
		{None, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestLastDirectionWins(t *testing.T) {
	var tr DirectionTracker
	if tr.Current() != None {
		t.Fatalf("Current() = %s, want none", tr.Current())
	}

	tr.Press(Up)
	tr.Press(Right)
	if tr.Current() != Right {
		t.Errorf("Current() = %s, want right", tr.Current())
	}

	tr.Release(Right)
	if tr.Current() != Up {
		t.Errorf("after releasing right Current() = %s, want up", tr.Current())
	}

	tr.Press(Left)
	tr.Release(Up)
	if tr.Current() != Left {
		t.Errorf("releasing an older key changed Current() to %s", tr.Current())
	}

	tr.Press(Up)
	tr.Press(Left)
	if tr.Current() != Left {
		t.Errorf("re-pressing left should make it current, got %s", tr.Current())
	}

	tr.Release(Left)
	tr.Release(Up)
	if tr.Current() != None {
		t.Errorf("after releasing everything Current() = %s, want none", tr.Current())
	}
}
