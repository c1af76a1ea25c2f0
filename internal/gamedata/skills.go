package gamedata

// SkillKind identifies a battle action.
type SkillKind int

const (
	SkillSword SkillKind = iota
	SkillArrow
	SkillWind
	SkillDeath
	SkillSpell
)

// String returns the skill kind name.
func (k SkillKind) String() string {
	switch k {
	case SkillSword:
		return "Sword"
	case SkillArrow:
		return "Arrow"
	case SkillWind:
		return "Wind"
	case SkillDeath:
		return "Death"
	case SkillSpell:
		return "Spell"
	default:
		return "Unknown"
	}
}

// Skill is a usable battle action. Spell is set only for SkillSpell.
type Skill struct {
	Kind  SkillKind
	Spell Item
}

// Sword is the innate skill every player starts with.
var Sword = Skill{Kind: SkillSword}

// SpellSkill wraps a spell item as a skill.
func SpellSkill(item Item) Skill {
	return Skill{Kind: SkillSpell, Spell: item}
}

// String returns the skill's display name.
func (s Skill) String() string {
	if s.Kind == SkillSpell {
		return s.Spell.String()
	}
	return s.Kind.String()
}

// parseSkillKind maps the YAML name of a skill to its kind.
func parseSkillKind(name string) (SkillKind, bool) {
	switch name {
	case "sword":
		return SkillSword, true
	case "arrow":
		return SkillArrow, true
	case "wind":
		return SkillWind, true
	case "death":
		return SkillDeath, true
	default:
		return 0, false
	}
}
