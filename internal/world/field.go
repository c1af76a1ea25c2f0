// Package world provides the overworld map and its generator.
package world

import "github.com/samdwyer/questfield/internal/gamedata"

// FieldKind is the terrain tag of a map cell.
type FieldKind int

const (
	Grass FieldKind = iota
	Forest
	Mountain
	Water
	Town
	Castle
)

// String returns the field kind name.
func (k FieldKind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Water:
		return "water"
	case Town:
		return "town"
	case Castle:
		return "castle"
	default:
		return "unknown"
	}
}

// Rune returns the field's display character.
func (k FieldKind) Rune() rune {
	switch k {
	case Grass:
		return '.'
	case Forest:
		return '&'
	case Mountain:
		return '^'
	case Water:
		return '~'
	case Town:
		return 'T'
	case Castle:
		return 'C'
	default:
		return '?'
	}
}

// Enemy returns the enemy living on this field kind. Water and towns have
// none.
func (k FieldKind) Enemy() (gamedata.EnemyKind, bool) {
	switch k {
	case Grass:
		return gamedata.EnemySlime, true
	case Forest:
		return gamedata.EnemyElf, true
	case Mountain:
		return gamedata.EnemyHarpy, true
	case Castle:
		return gamedata.EnemyDarkLord, true
	default:
		return 0, false
	}
}

// Field is the content of one map cell. Item and Visited are only
// meaningful for towns.
type Field struct {
	Kind    FieldKind
	Item    gamedata.Item
	Visited bool
}

// NewTown returns an unvisited town holding item.
func NewTown(item gamedata.Item) Field {
	return Field{Kind: Town, Item: item}
}

// IsPassable returns true if the field can be walked on.
func (f Field) IsPassable() bool {
	return f.Kind != Water
}

// Blinks returns true for fields flashed on the minimap.
func (f Field) Blinks() bool {
	return f.Kind == Town || f.Kind == Castle
}
