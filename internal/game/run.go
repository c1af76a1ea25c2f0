package game

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/events"
	"github.com/samdwyer/questfield/internal/world"
)

// RunState is everything that lives for one playthrough. It is created when
// a run starts on the title screen and dropped when the run ends.
type RunState struct {
	ID        string
	Map       *world.Map
	Player    *entity.CharacterStatus
	Inventory *entity.Inventory
	Pos       world.Coord

	// Enemy is the active opponent, nil outside battles.
	Enemy *entity.Enemy
	// Pending is the event shown on the event screen.
	Pending events.GameEvent

	Battle BattleState
	// LastAction describes the most recent battle action.
	LastAction string

	Stats Stats

	walk        *walk
	battleTimer time.Duration
}

// Stats counts progress through a run.
type Stats struct {
	Steps      int
	BattlesWon int
}

type walk struct {
	to      world.Coord
	elapsed time.Duration
}

// MapFunc builds the overworld for a new run.
type MapFunc func(ctx context.Context, cfg Config) *world.Map

func newRun(m *world.Map, playerName string) *RunState {
	return &RunState{
		ID:        uuid.NewString(),
		Map:       m,
		Player:    entity.NewPlayer(playerName),
		Inventory: entity.NewInventory(),
		Pos:       world.Start,
	}
}

// Walking reports the destination and progress in [0,1) of an unfinished
// step.
func (r *RunState) Walking(step time.Duration) (to world.Coord, progress float64, ok bool) {
	if r.walk == nil {
		return world.Coord{}, 0, false
	}
	if step <= 0 {
		return r.walk.to, 0, true
	}
	return r.walk.to, float64(r.walk.elapsed) / float64(step), true
}
