// Package entity provides the player and enemy character records.
package entity

import "github.com/samdwyer/questfield/internal/gamedata"

const (
	// MinStat and MaxStat bound every stat. Current HP/MP may drop to 0
	// to signal defeat.
	MinStat = 1
	MaxStat = 999

	// MaxLevel is the number of entries in the level table.
	MaxLevel = 32
)

// levelTable holds the exp needed to reach each level; level N needs
// levelTable[N-1].
var levelTable = [MaxLevel]int{
	0, 10, 20, 30, 45, 60, 80, 100,
	125, 150, 180, 210, 245, 280, 320, 360,
	405, 450, 500, 550, 605, 660, 720, 780,
	845, 910, 930, 950, 965, 980, 990, 999,
}

// LevelFor returns the level reached with exp: the number of table entries
// not above exp.
func LevelFor(exp int) int {
	level := 0
	for _, need := range levelTable {
		if need <= exp {
			level++
		}
	}
	if level < 1 {
		level = 1
	}
	return level
}

// CharacterStatus is the stat block of the player or the active enemy.
type CharacterStatus struct {
	Name    string
	Level   int
	Exp     int
	HP      int
	MaxHP   int
	MP      int
	MaxMP   int
	Attack  int
	Defence int
}

// NewPlayer creates a level 1 player at full health.
func NewPlayer(name string) *CharacterStatus {
	s := &CharacterStatus{Name: name}
	s.LevelUp(1, nil)
	s.Heal2Max()
	return s
}

// IsAlive returns true if the character has HP remaining.
func (s *CharacterStatus) IsAlive() bool {
	return s.HP > 0
}

// LevelUp recomputes the stats for level from the base curve, applies the
// equipment in inv in order, then clamps everything to [MinStat, MaxStat].
// Current HP/MP are kept but never exceed the new maxima.
func (s *CharacterStatus) LevelUp(level int, inv *Inventory) {
	s.Level = clampStat(level)
	s.Attack = 10 + (s.Level-1)*5
	s.Defence = 10 + (s.Level-1)*5
	s.MaxHP = 100 + (s.Level-1)*25
	s.MaxMP = 100 + (s.Level-1)*25

	if inv != nil {
		for _, item := range inv.items {
			s.applyEquipment(item.Kind)
		}
	}

	s.Attack = clampStat(s.Attack)
	s.Defence = clampStat(s.Defence)
	s.MaxHP = clampStat(s.MaxHP)
	s.MaxMP = clampStat(s.MaxMP)
	s.HP = min(s.HP, s.MaxHP)
	s.MP = min(s.MP, s.MaxMP)
}

func (s *CharacterStatus) applyEquipment(kind gamedata.ItemKind) {
	switch kind {
	case gamedata.IronBody, gamedata.IronArm, gamedata.IronLeg, gamedata.IronHead:
		s.MaxHP = s.MaxHP * 13 / 10
	case gamedata.HeroSword:
		s.Attack = s.Attack * 5 / 2
	case gamedata.WisdomRing:
		s.MaxMP = s.MaxMP * 5 / 2
	case gamedata.FairyShield:
		s.Defence = s.Defence * 5 / 2
	}
}

// AddExp sets exp to exp+delta clamped to [MinStat, MaxStat] and
// recomputes the level. On a level change the stats are rebuilt and the
// character is fully healed; the return value reports that change.
func (s *CharacterStatus) AddExp(delta int, inv *Inventory) bool {
	s.Exp = clampStat(s.Exp + delta)
	level := LevelFor(s.Exp)
	if level == s.Level {
		return false
	}
	s.LevelUp(level, inv)
	s.Heal2Max()
	return true
}

// Heal2Max restores HP and MP to their maxima.
func (s *CharacterStatus) Heal2Max() {
	s.HP = s.MaxHP
	s.MP = s.MaxMP
}

func clampStat(v int) int {
	return clamp(v, MinStat, MaxStat)
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
