package game

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/combat"
	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/events"
	"github.com/samdwyer/questfield/internal/gamedata"
	"github.com/samdwyer/questfield/internal/input"
)

// updateBattle runs the Select -> Attack -> Defense round. pressed is the
// direction that went down this tick, if any.
func (g *Game) updateBattle(ctx context.Context, pressed input.Direction, confirm bool, dt time.Duration) {
	r := g.run

	switch r.Battle {
	case BattleSelect:
		if !r.Player.IsAlive() {
			g.audio.Play(audio.SELose)
			g.raise(ctx, events.Lose{})
			return
		}
		switch pressed {
		case input.Up:
			r.Inventory.MoveCursor(-1)
		case input.Down:
			r.Inventory.MoveCursor(1)
		}
		if confirm {
			g.enterBattleState(BattleAttack)
			g.turn(ctx, r.Player, r.Enemy.Status, r.Inventory.Selected())
		}

	case BattleAttack:
		r.battleTimer += dt
		if r.battleTimer < g.cfg.AttackDuration {
			return
		}
		g.enterBattleState(BattleDefense)
		g.defend(ctx)

	case BattleDefense:
		r.battleTimer += dt
		if r.battleTimer < g.cfg.AttackDuration {
			return
		}
		g.enterBattleState(BattleSelect)
	}
}

func (g *Game) enterBattleState(b BattleState) {
	g.run.Battle = b
	g.run.battleTimer = 0
}

// defend settles the player's attack. A defeated enemy ends the battle,
// otherwise the enemy strikes back.
func (g *Game) defend(ctx context.Context) {
	r := g.run
	enemy := r.Enemy

	if enemy.Status.IsAlive() {
		g.turn(ctx, enemy.Status, r.Player, enemy.Skill())
		return
	}

	r.Stats.BattlesWon++
	g.audio.Play(audio.SEWin)
	if enemy.IsBoss() {
		g.log().WithField("enemy", enemy.Def.ID).Info("boss defeated")
		g.playMusic(audio.BGMClear)
		g.raise(ctx, events.WinLast{})
		return
	}

	exp := enemy.ExpReward()
	leveled := r.Player.AddExp(exp, r.Inventory)
	g.log().WithFields(logrus.Fields{
		"enemy":      enemy.Def.ID,
		"exp":        exp,
		"leveled_up": leveled,
		"level":      r.Player.Level,
	}).Info("battle won")
	g.raise(ctx, events.Win{LeveledUp: leveled, Exp: exp})
}

// turn resolves one skill use and records it in the battle log line.
func (g *Game) turn(ctx context.Context, attacker, defender *entity.CharacterStatus, skill gamedata.Skill) {
	_, span := g.tracer.Start(ctx, "combat.turn")
	defer span.End()

	res := combat.Resolve(attacker, defender, skill, g.rng)

	span.SetAttributes(
		attribute.String("actor", attacker.Name),
		attribute.String("target", defender.Name),
		attribute.String("skill", skill.String()),
		attribute.Int("amount", res.Amount),
		attribute.Int("mp_spent", res.MPSpent),
		attribute.Int("target_hp", defender.HP),
	)

	switch {
	case res.NoMP:
		span.SetAttributes(attribute.Bool("failed", true))
		g.audio.Play(audio.SEMiss)
		g.run.LastAction = fmt.Sprintf("%s tries %s, but lacks MP!", attacker.Name, skill)
	case res.Healed:
		g.audio.Play(audio.SEHeal)
		g.run.LastAction = fmt.Sprintf("%s casts %s and recovers %d HP.", attacker.Name, skill, res.Amount)
	default:
		g.audio.Play(audio.SEAttack)
		g.run.LastAction = fmt.Sprintf("%s uses %s! %s takes %d damage.", attacker.Name, skill, defender.Name, res.Amount)
	}

	g.log().WithFields(logrus.Fields{
		"actor":  attacker.Name,
		"skill":  skill.String(),
		"amount": res.Amount,
		"no_mp":  res.NoMP,
	}).Debug("combat turn")
}
