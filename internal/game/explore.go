package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/events"
	"github.com/samdwyer/questfield/internal/input"
	"github.com/samdwyer/questfield/internal/rng"
	"github.com/samdwyer/questfield/internal/world"
)

// updateExplore starts or continues a one-cell walk. Steps into water are
// ignored; steps off an edge wrap around.
func (g *Game) updateExplore(ctx context.Context, dir input.Direction, dt time.Duration) {
	r := g.run
	if r.walk == nil {
		if dir == input.None {
			return
		}
		dx, dy := dir.Delta()
		to := r.Map.Wrap(r.Pos.Add(dx, dy))
		if r.Map.Collides(to) {
			return
		}
		r.walk = &walk{to: to}
		g.audio.Play(audio.SEWalk)
	}

	r.walk.elapsed += dt
	if r.walk.elapsed < g.cfg.WalkDuration {
		return
	}
	r.Pos = r.walk.to
	r.walk = nil
	r.Stats.Steps++
	g.arrive(ctx, r.Pos)
}

// arrive resolves the field the player just stepped on.
func (g *Game) arrive(ctx context.Context, c world.Coord) {
	r := g.run
	f := r.Map.At(c)

	switch f.Kind {
	case world.Town:
		g.raise(ctx, events.TownArrived{Item: f.Item, AlreadyVisited: f.Visited})
	case world.Grass, world.Forest, world.Mountain, world.Castle:
		kind, _ := f.Kind.Enemy()
		def := g.enemies.Get(kind)
		if !def.Boss && !rng.OneIn(g.rng, def.EncounterRate) {
			return
		}
		level := def.LevelFor(r.Player.Level, entity.MaxLevel)
		g.log().WithFields(logrus.Fields{
			"enemy": def.ID,
			"level": level,
			"x":     c.X,
			"y":     c.Y,
		}).Info("enemy encountered")
		g.audio.Play(audio.SEEncounter)
		g.raise(ctx, events.EnemyEncountered{
			Kind:  kind,
			Name:  def.Name,
			Level: level,
			Boss:  def.Boss,
		})
	case world.Water:
		// unreachable, water is in the collision set
	}
}
