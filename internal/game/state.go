// Package game provides the run state and the tick-driven state machine
// that moves a run between the title, the overworld, battles and events.
package game

// AppState is the top-level mode of the game.
type AppState int

const (
	// StateTitle waits for the player to start a run. No run exists.
	StateTitle AppState = iota
	// StateExplore is the overworld, where the player walks cell by cell.
	StateExplore
	// StateBattle is a fight against the run's single active enemy.
	StateBattle
	// StateEvent shows the pending event until the player acknowledges it.
	StateEvent
)

// String returns a human-readable state name.
func (s AppState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateExplore:
		return "explore"
	case StateBattle:
		return "battle"
	case StateEvent:
		return "event"
	default:
		return "unknown"
	}
}

// BattleState is the player's phase within a battle round.
type BattleState int

const (
	// BattleSelect - waiting for the player to pick a skill
	BattleSelect BattleState = iota
	// BattleAttack - the player's skill has resolved and is playing out
	BattleAttack
	// BattleDefense - the enemy answers, unless it was defeated
	BattleDefense
)

// String returns a human-readable phase name.
func (b BattleState) String() string {
	switch b {
	case BattleSelect:
		return "select"
	case BattleAttack:
		return "attack"
	case BattleDefense:
		return "defense"
	default:
		return "unknown"
	}
}
