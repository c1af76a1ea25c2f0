package gamedata

import "fmt"

// ItemKind identifies an item found in towns.
type ItemKind int

const (
	// Spells carry a level and become battle skills.
	SpellHeal ItemKind = iota
	SpellFire
	SpellIce

	// Equipment boosts stats at every level recomputation.
	IronBody
	IronArm
	IronLeg
	IronHead
	HeroSword
	WisdomRing
	FairyShield
)

// MaxSpellLevel is the highest level a spell item can have.
const MaxSpellLevel = 3

// String returns the item kind name.
func (k ItemKind) String() string {
	switch k {
	case SpellHeal:
		return "Heal"
	case SpellFire:
		return "Fire"
	case SpellIce:
		return "Ice"
	case IronBody:
		return "Iron Body"
	case IronArm:
		return "Iron Arm"
	case IronLeg:
		return "Iron Leg"
	case IronHead:
		return "Iron Head"
	case HeroSword:
		return "Hero Sword"
	case WisdomRing:
		return "Wisdom Ring"
	case FairyShield:
		return "Fairy Shield"
	default:
		return "Unknown"
	}
}

// IsSpell reports whether the kind is a levelled spell.
func (k ItemKind) IsSpell() bool {
	return k == SpellHeal || k == SpellFire || k == SpellIce
}

// Item is a single town reward. Level is 1..MaxSpellLevel for spells
// and 0 for equipment.
type Item struct {
	Kind  ItemKind
	Level int
}

// Spell returns a spell item of the given kind and level.
func Spell(kind ItemKind, level int) Item {
	return Item{Kind: kind, Level: level}
}

// Equipment returns an equipment item.
func Equipment(kind ItemKind) Item {
	return Item{Kind: kind}
}

// CanUse reports whether the item grants a battle skill.
func (i Item) CanUse() bool {
	return i.Kind.IsSpell()
}

// String returns a display name such as "Fire Lv2" or "Hero Sword".
func (i Item) String() string {
	if i.Kind.IsSpell() {
		return fmt.Sprintf("%s Lv%d", i.Kind, i.Level)
	}
	return i.Kind.String()
}

// Catalog returns every item that can appear in a town, in placement
// order: each spell at levels 1..3 followed by the equipment.
func Catalog() []Item {
	items := make([]Item, 0, 16)
	for _, kind := range []ItemKind{SpellHeal, SpellFire, SpellIce} {
		for lv := 1; lv <= MaxSpellLevel; lv++ {
			items = append(items, Spell(kind, lv))
		}
	}
	for _, kind := range []ItemKind{IronBody, IronArm, IronLeg, IronHead, HeroSword, WisdomRing, FairyShield} {
		items = append(items, Equipment(kind))
	}
	return items
}
