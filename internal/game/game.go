package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/events"
	"github.com/samdwyer/questfield/internal/gamedata"
	"github.com/samdwyer/questfield/internal/input"
	"github.com/samdwyer/questfield/internal/logger"
	"github.com/samdwyer/questfield/internal/rng"
	"github.com/samdwyer/questfield/internal/telemetry"
	"github.com/samdwyer/questfield/internal/world"
)

// Deps are the collaborators of a Game. Zero values get defaults.
type Deps struct {
	Enemies *gamedata.EnemyRegistry
	Audio   audio.Sink
	Bus     *events.Bus
	RNG     rng.Source
	// NewMap replaces the map generator, e.g. with a fixed test map.
	NewMap MapFunc
}

// Game is the state machine. It is driven by Update from a single
// goroutine and only read by renderers between ticks.
type Game struct {
	cfg     Config
	enemies *gamedata.EnemyRegistry
	audio   audio.Sink
	bus     *events.Bus
	rng     rng.Source
	newMap  MapFunc
	tracer  trace.Tracer

	state   AppState
	run     *RunState
	music   audio.Kind
	playing bool
	done    bool
}

// New creates a game on the title screen.
func New(cfg Config, deps Deps) *Game {
	g := &Game{
		cfg:     cfg,
		enemies: deps.Enemies,
		audio:   deps.Audio,
		bus:     deps.Bus,
		rng:     deps.RNG,
		newMap:  deps.NewMap,
		tracer:  telemetry.Tracer("game"),
		state:   StateTitle,
	}
	if g.enemies == nil {
		g.enemies = gamedata.MustLoadEnemyRegistry()
	}
	if g.audio == nil {
		g.audio = audio.Nop{}
	}
	if g.bus == nil {
		g.bus = events.NewBus()
	}
	if g.rng == nil {
		g.rng = rng.New(cfg.Seed)
	}
	if g.newMap == nil {
		g.newMap = func(ctx context.Context, cfg Config) *world.Map {
			return world.Generate(ctx, cfg.Width, cfg.Height, gamedata.Catalog(), g.rng)
		}
	}
	g.playMusic(audio.BGMTitle)
	return g
}

// State returns the current top-level state.
func (g *Game) State() AppState { return g.state }

// Run returns the current run, or nil on the title screen.
func (g *Game) Run() *RunState { return g.run }

// Config returns the settings the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Bus returns the event bus.
func (g *Game) Bus() *events.Bus { return g.bus }

// Quit asks the shell to stop.
func (g *Game) Quit() { g.done = true }

// Done reports whether Quit was requested.
func (g *Game) Done() bool { return g.done }

// Update advances the game by one tick of length dt. Within a tick input
// and movement come first, then arrival checks and event emission, then
// combat and the win/lose checks.
func (g *Game) Update(ctx context.Context, in input.Intent, dt time.Duration) {
	switch g.state {
	case StateTitle:
		if in.Confirm {
			g.startRun(ctx)
		} else if in.Cancel {
			g.Quit()
		}
	case StateExplore:
		g.updateExplore(ctx, in.Dir, dt)
	case StateEvent:
		if in.Confirm {
			g.acknowledge(ctx)
		}
	case StateBattle:
		g.updateBattle(ctx, in.Pressed, in.Confirm, dt)
	}
}

func (g *Game) startRun(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "game.start_run")
	defer span.End()

	g.run = newRun(g.newMap(ctx, g.cfg), g.cfg.PlayerName)
	span.SetAttributes(
		attribute.String("run_id", g.run.ID),
		attribute.Int("map.towns", len(g.run.Map.Towns())),
	)
	g.log().WithFields(logrus.Fields{
		"width":  g.run.Map.Width,
		"height": g.run.Map.Height,
	}).Info("run started")

	g.transition(ctx, StateExplore)
}

// endRun discards the run and returns to the title.
func (g *Game) endRun(ctx context.Context, outcome string) {
	r := g.run
	g.log().WithFields(logrus.Fields{
		"outcome":     outcome,
		"level":       r.Player.Level,
		"steps":       r.Stats.Steps,
		"battles_won": r.Stats.BattlesWon,
	}).Info("run ended")

	g.transition(ctx, StateTitle)
	g.run = nil
}

// raise makes e the pending event and shows it.
func (g *Game) raise(ctx context.Context, e events.GameEvent) {
	g.run.Pending = e
	g.log().WithField("event", events.Name(e)).Debug("event raised")
	g.bus.Publish(e)
	g.transition(ctx, StateEvent)
}

func (g *Game) transition(ctx context.Context, to AppState) {
	_, span := g.tracer.Start(ctx, "game.transition")
	defer span.End()

	from := g.state
	g.state = to
	span.SetAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	)
	if g.run != nil {
		span.SetAttributes(attribute.String("run_id", g.run.ID))
	}
	g.log().WithFields(logrus.Fields{"from": from, "to": to}).Debug("state changed")

	switch to {
	case StateTitle:
		g.playMusic(audio.BGMTitle)
	case StateExplore:
		g.playMusic(audio.BGMField)
	case StateBattle:
		if g.run.Enemy != nil && g.run.Enemy.IsBoss() {
			g.playMusic(audio.BGMBoss)
		} else {
			g.playMusic(audio.BGMBattle)
		}
	case StateEvent:
		// the current track carries over
	}
}

func (g *Game) playMusic(k audio.Kind) {
	if g.playing && g.music == k {
		return
	}
	if g.playing {
		g.audio.Stop(g.music)
	}
	g.music = k
	g.playing = true
	g.audio.Play(k)
}

func (g *Game) log() *logrus.Entry {
	entry := logger.Component("game").WithField("state", g.state)
	if g.run != nil {
		entry = entry.WithField("run_id", g.run.ID)
	}
	return entry
}
