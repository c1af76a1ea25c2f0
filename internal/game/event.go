package game

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/events"
)

// acknowledge consumes the pending event and moves to the state it leads
// to.
func (g *Game) acknowledge(ctx context.Context) {
	e := g.run.Pending
	if e == nil {
		return
	}
	g.run.Pending = nil
	e.Accept(&eventAck{ctx: ctx, g: g})
}

// eventAck applies an acknowledged event. Being a Visitor, it must handle
// every event kind.
type eventAck struct {
	ctx context.Context
	g   *Game
}

func (a *eventAck) EnemyEncountered(e events.EnemyEncountered) {
	r := a.g.run
	r.Enemy = entity.NewEnemy(a.g.enemies.Get(e.Kind), e.Level)
	r.Battle = BattleSelect
	r.battleTimer = 0
	r.LastAction = e.Text()
	a.g.transition(a.ctx, StateBattle)
}

func (a *eventAck) TownArrived(e events.TownArrived) {
	r := a.g.run
	if !e.AlreadyVisited && r.Map.MarkVisited(r.Pos) {
		r.Inventory.Add(e.Item)
		r.Player.LevelUp(r.Player.Level, r.Inventory)
		a.g.audio.Play(audio.SEItem)
		a.g.log().WithFields(logrus.Fields{
			"item":  e.Item.String(),
			"items": len(r.Inventory.Items()),
		}).Info("item received")
	}
	r.Player.Heal2Max()
	a.g.audio.Play(audio.SEHeal)
	a.g.transition(a.ctx, StateExplore)
}

func (a *eventAck) Win(events.Win) {
	a.g.run.Enemy = nil
	a.g.run.LastAction = ""
	a.g.transition(a.ctx, StateExplore)
}

func (a *eventAck) Lose(events.Lose) {
	a.g.endRun(a.ctx, "lose")
}

func (a *eventAck) WinLast(events.WinLast) {
	a.g.endRun(a.ctx, "clear")
}
