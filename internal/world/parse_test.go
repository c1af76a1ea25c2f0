package world

import (
	"testing"

	"github.com/samdwyer/questfield/internal/gamedata"
)

func TestParse(t *testing.T) {
	items := []gamedata.Item{
		gamedata.Equipment(gamedata.IronBody),
		gamedata.Spell(gamedata.SpellHeal, 1),
	}
	m, err := Parse([]string{
		".T&^",
		"~~.C",
		"T...",
	}, items)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Width != 4 || m.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", m.Width, m.Height)
	}
	if f := m.At(Coord{1, 0}); f.Kind != Town || f.Item != items[0] {
		t.Errorf("(1,0) = %+v, want town with %s", f, items[0])
	}
	if f := m.At(Coord{0, 2}); f.Item != items[1] {
		t.Errorf("(0,2) item = %s, want %s", f.Item, items[1])
	}
	if m.Castle() != (Coord{3, 1}) {
		t.Errorf("Castle() = %v, want (3,1)", m.Castle())
	}
	if len(m.CollisionSet()) != 2 || !m.Collides(Coord{0, 1}) {
		t.Errorf("collision set = %v, want the two water cells", m.CollisionSet())
	}
	if len(m.BlinkSet()) != 3 {
		t.Errorf("blink set has %d cells, want 3", len(m.BlinkSet()))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"...", ".."}},
		{"unknown rune", []string{".x."}},
		{"town without item", []string{"TT"}},
		{"two castles", []string{"C.C"}},
	}
	items := []gamedata.Item{gamedata.Equipment(gamedata.IronArm)}
	for _, tt := range tests {
		if _, err := Parse(tt.rows, items); err == nil {
			t.Errorf("%s: Parse() should fail", tt.name)
		}
	}
}
