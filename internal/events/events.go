// Package events defines the game events raised by state transitions and a
// small bus that fans them out to observers.
package events

import (
	"fmt"

	"github.com/samdwyer/questfield/internal/gamedata"
)

// GameEvent is the payload shown on the event screen. The set of events is
// closed: every implementation lives in this package and is dispatched
// through Visitor, so adding one breaks every visitor at compile time.
type GameEvent interface {
	Accept(v Visitor)
	Text() string
	isGameEvent()
}

// Visitor handles each kind of GameEvent.
type Visitor interface {
	EnemyEncountered(e EnemyEncountered)
	TownArrived(e TownArrived)
	Win(e Win)
	Lose(e Lose)
	WinLast(e WinLast)
}

// EnemyEncountered starts a battle once acknowledged. The enemy is built
// from Kind at Level when the battle begins.
type EnemyEncountered struct {
	Kind  gamedata.EnemyKind
	Name  string
	Level int
	Boss  bool
}

// TownArrived reports a town visit. AlreadyVisited towns grant nothing.
type TownArrived struct {
	Item           gamedata.Item
	AlreadyVisited bool
}

// Win ends a battle against a field enemy.
type Win struct {
	LeveledUp bool
	Exp       int
}

// Lose ends the run.
type Lose struct{}

// WinLast ends the run after defeating the boss.
type WinLast struct{}

func (e EnemyEncountered) Accept(v Visitor) { v.EnemyEncountered(e) }
func (e TownArrived) Accept(v Visitor)      { v.TownArrived(e) }
func (e Win) Accept(v Visitor)              { v.Win(e) }
func (e Lose) Accept(v Visitor)             { v.Lose(e) }
func (e WinLast) Accept(v Visitor)          { v.WinLast(e) }

func (EnemyEncountered) isGameEvent() {}
func (TownArrived) isGameEvent()      {}
func (Win) isGameEvent()              {}
func (Lose) isGameEvent()             {}
func (WinLast) isGameEvent()          {}

func (e EnemyEncountered) Text() string {
	switch {
	case e.Name == "":
		return "An enemy appears!"
	case e.Boss:
		return fmt.Sprintf("%s blocks the castle gate!", e.Name)
	}
	return fmt.Sprintf("A %s (Lv%d) appears!", e.Name, e.Level)
}

func (e TownArrived) Text() string {
	if e.AlreadyVisited {
		return "Welcome back. You rest and recover."
	}
	return fmt.Sprintf("The townsfolk give you %s. You rest and recover.", e.Item)
}

func (e Win) Text() string {
	if e.LeveledUp {
		return fmt.Sprintf("Victory! Gained %d exp. Level up!", e.Exp)
	}
	return fmt.Sprintf("Victory! Gained %d exp.", e.Exp)
}

func (Lose) Text() string    { return "You have fallen..." }
func (WinLast) Text() string { return "The Dark Lord is vanquished. Peace returns." }

// Name returns a short identifier for logs and span attributes.
func Name(e GameEvent) string {
	n := namer{}
	e.Accept(&n)
	return n.name
}

type namer struct{ name string }

func (n *namer) EnemyEncountered(EnemyEncountered) { n.name = "enemy_encountered" }
func (n *namer) TownArrived(TownArrived)           { n.name = "town_arrived" }
func (n *namer) Win(Win)                           { n.name = "win" }
func (n *namer) Lose(Lose)                         { n.name = "lose" }
func (n *namer) WinLast(WinLast)                   { n.name = "win_last" }
