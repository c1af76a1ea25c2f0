// Package combat resolves battle actions between two characters.
package combat

import (
	"fmt"

	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/gamedata"
	"github.com/samdwyer/questfield/internal/rng"
)

// spellPower scales fire and ice damage by spell level.
var spellPower = [gamedata.MaxSpellLevel + 1]int{0, 1, 3, 6}

// Params are the numbers an action resolves with.
type Params struct {
	Power   int // base damage
	Defence int // upper bound of the defence roll
	Heal    int // HP restored to the attacker; non-zero means a heal
	Cost    int // MP spent
}

// ParamsFor maps a skill to its parameters for this attacker and defender.
func ParamsFor(attacker, defender *entity.CharacterStatus, skill gamedata.Skill) Params {
	switch skill.Kind {
	case gamedata.SkillSword, gamedata.SkillDeath:
		return Params{Power: attacker.Attack / 2, Defence: defender.Defence}
	case gamedata.SkillArrow:
		return Params{Power: attacker.Attack / 2, Defence: defender.Defence / 4}
	case gamedata.SkillWind:
		return Params{Power: attacker.Attack / 2, Defence: defender.Defence / 2}
	case gamedata.SkillSpell:
		return spellParams(defender, skill.Spell)
	default:
		panic(fmt.Sprintf("combat: unknown skill kind %v", skill.Kind))
	}
}

func spellParams(defender *entity.CharacterStatus, spell gamedata.Item) Params {
	lv := spell.Level
	if lv < 0 {
		lv = 0
	}
	if lv > gamedata.MaxSpellLevel {
		lv = gamedata.MaxSpellLevel
	}
	switch spell.Kind {
	case gamedata.SpellHeal:
		return Params{Heal: lv * lv * 50, Cost: 10 * lv}
	case gamedata.SpellFire:
		return Params{Power: spellPower[lv] * 20, Defence: defender.Defence, Cost: 25 * lv}
	case gamedata.SpellIce:
		// ice ignores the target's defence
		return Params{Power: spellPower[lv] * 15, Defence: 1, Cost: 25 * lv}
	default:
		panic(fmt.Sprintf("combat: %v is not a spell", spell.Kind))
	}
}

// Result is the outcome of one action.
type Result struct {
	Amount  int  // damage dealt or HP healed
	Healed  bool // Amount is healing on the attacker
	NoMP    bool // the attacker could not pay the MP cost; nothing happened
	MPSpent int
}

// Resolve applies skill from attacker to defender.
//
// Lacking MP is a silent no-op. Healing raises the attacker's HP within
// [1, MaxHP]. Damage is power + rand[0,power) - rand[0,defence), clamped to
// [1, 999], and lowers the defender's HP to no less than 0.
func Resolve(attacker, defender *entity.CharacterStatus, skill gamedata.Skill, src rng.Source) Result {
	p := ParamsFor(attacker, defender, skill)

	if attacker.MP < p.Cost {
		return Result{NoMP: true}
	}
	attacker.MP = max(attacker.MP-p.Cost, 0)

	if p.Heal > 0 {
		attacker.HP = clamp(attacker.HP+p.Heal, 1, attacker.MaxHP)
		return Result{Amount: p.Heal, Healed: true, MPSpent: p.Cost}
	}

	damage := p.Power + rng.Intn(src, p.Power) - rng.Intn(src, p.Defence)
	damage = clamp(damage, 1, entity.MaxStat)
	defender.HP = clamp(defender.HP-damage, 0, entity.MaxStat)

	return Result{Amount: damage, MPSpent: p.Cost}
}

// Attack applies skill and returns the damage or healing done, or 0 when
// the attacker lacked MP.
func Attack(attacker, defender *entity.CharacterStatus, skill gamedata.Skill, src rng.Source) int {
	return Resolve(attacker, defender, skill, src).Amount
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
