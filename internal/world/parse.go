package world

import (
	"fmt"

	"github.com/samdwyer/questfield/internal/gamedata"
)

// Parse builds a map from rows of field runes as returned by
// FieldKind.Rune. Towns take items in reading order. It is meant for
// hand-made maps such as test fixtures; the usual source of maps is
// Generate.
func Parse(rows []string, items []gamedata.Item) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map")
	}
	width := len([]rune(rows[0]))
	m := NewMap(width, len(rows))
	next := 0
	castles := 0
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			c := Coord{X: x, Y: y}
			kind, ok := kindForRune(r)
			if !ok {
				return nil, fmt.Errorf("unknown field %q at (%d,%d)", r, x, y)
			}
			switch kind {
			case Town:
				if next >= len(items) {
					return nil, fmt.Errorf("town at (%d,%d) has no item", x, y)
				}
				m.set(c, NewTown(items[next]))
				m.towns = append(m.towns, c)
				next++
				continue
			case Castle:
				m.castle = c
				castles++
			}
			m.set(c, Field{Kind: kind})
		}
	}
	if castles > 1 {
		return nil, fmt.Errorf("%d castles, want at most 1", castles)
	}
	m.derive()
	return m, nil
}

func kindForRune(r rune) (FieldKind, bool) {
	for _, k := range []FieldKind{Grass, Forest, Mountain, Water, Town, Castle} {
		if k.Rune() == r {
			return k, true
		}
	}
	return 0, false
}
