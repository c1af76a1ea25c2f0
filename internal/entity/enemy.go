package entity

import "github.com/samdwyer/questfield/internal/gamedata"

// Enemy is the opponent of a single battle, created fresh per encounter.
type Enemy struct {
	Def    *gamedata.EnemyDef
	Status *CharacterStatus
}

// NewEnemy instantiates def at level.
func NewEnemy(def *gamedata.EnemyDef, level int) *Enemy {
	return &Enemy{
		Def:    def,
		Status: NewEnemyStatus(def, level),
	}
}

// NewEnemyStatus scales a template to level: each stat is its base value
// plus (level-1) times its growth, clamped, at full HP/MP.
func NewEnemyStatus(def *gamedata.EnemyDef, level int) *CharacterStatus {
	lv := clamp(level, 1, MaxLevel)
	steps := lv - 1
	s := &CharacterStatus{
		Name:    def.Name,
		Level:   lv,
		MaxHP:   clampStat(def.HP + steps*def.Growth.HP),
		MaxMP:   clampStat(def.MP + steps*def.Growth.MP),
		Attack:  clampStat(def.Attack + steps*def.Growth.Attack),
		Defence: clampStat(def.Defence + steps*def.Growth.Defence),
	}
	s.Heal2Max()
	return s
}

// Skill returns the enemy's battle action.
func (e *Enemy) Skill() gamedata.Skill {
	return e.Def.Skill
}

// IsBoss reports whether defeating this enemy ends the game.
func (e *Enemy) IsBoss() bool {
	return e.Def.Boss
}

// ExpReward is the exp granted for defeating a non-boss enemy.
func (e *Enemy) ExpReward() int {
	return e.Status.MaxHP / 10
}
