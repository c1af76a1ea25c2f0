package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/questfield/internal/audio"
	"github.com/samdwyer/questfield/internal/game"
	"github.com/samdwyer/questfield/internal/input"
	"github.com/samdwyer/questfield/internal/rng"
	"github.com/samdwyer/questfield/internal/world"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error = %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(s.Close)
	return s, sim
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		} else {
			b.WriteByte(' ')
		}
		if (i+1)%w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestKeysIntent(t *testing.T) {
	k := NewKeys()
	now := time.Now()

	k.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)

	in := k.Intent(now)
	if in.Dir != input.Right || !in.Confirm {
		t.Errorf("Intent() = %+v, want right with confirm", in)
	}
	if in = k.Intent(now); in.Confirm {
		t.Error("confirm should be reported once")
	}

	// right stops repeating, up keeps repeating
	later := now.Add(holdWindow + time.Millisecond)
	k.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), later)
	if in = k.Intent(later); in.Dir != input.Up {
		t.Errorf("Dir = %s, want up after right was released", in.Dir)
	}

	if in = k.Intent(later.Add(time.Second)); in.Dir != input.None {
		t.Errorf("Dir = %s, want none once all keys lapse", in.Dir)
	}
}

func TestKeysPressedEdge(t *testing.T) {
	k := NewKeys()
	now := time.Now()
	down := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)

	k.Handle(down, now)
	if in := k.Intent(now); in.Pressed != input.Down {
		t.Errorf("Pressed = %s, want down on the first key event", in.Pressed)
	}

	// a terminal repeat is not a new press
	k.Handle(down, now.Add(50*time.Millisecond))
	if in := k.Intent(now.Add(50 * time.Millisecond)); in.Pressed != input.None || in.Dir != input.Down {
		t.Errorf("Intent() = %+v, want down held with no press", in)
	}

	k.Handle(up, now.Add(100*time.Millisecond))
	if in := k.Intent(now.Add(100 * time.Millisecond)); in.Pressed != input.Up || in.Dir != input.Up {
		t.Errorf("Intent() = %+v, want up pressed", in)
	}

	// up lapses while down keeps repeating: the held direction falls back
	// to down without reporting a press
	later := now.Add(100*time.Millisecond + holdWindow + time.Millisecond)
	k.Handle(down, later)
	in := k.Intent(later)
	if in.Dir != input.Down {
		t.Errorf("Dir = %s, want down after up was released", in.Dir)
	}
	if in.Pressed != input.None {
		t.Errorf("Pressed = %s, want none on release", in.Pressed)
	}
}

func TestKeysQuitAndCancel(t *testing.T) {
	k := NewKeys()
	now := time.Now()
	k.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if in := k.Intent(now); !in.Cancel {
		t.Error("Escape should cancel")
	}
	if k.Quit() {
		t.Error("Escape alone should not hard quit")
	}
	k.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now)
	if !k.Quit() {
		t.Error("q should quit")
	}
}

func TestBell(t *testing.T) {
	rings := 0
	b := &Bell{ring: func() { rings++ }}
	var sink audio.Sink = b

	sink.Play(audio.SEWalk)
	sink.Play(audio.BGMField)
	sink.Stop(audio.BGMField)
	sink.Play(audio.SEEncounter)
	sink.Play(audio.SEWin)

	if rings != 2 {
		t.Errorf("rings = %d, want 2", rings)
	}

	rings = 0
	for _, k := range []audio.Kind{audio.BGMTitle, audio.BGMField, audio.BGMBattle, audio.BGMBoss, audio.BGMClear} {
		sink.Play(k)
	}
	if rings != 0 {
		t.Errorf("music rang the bell %d times", rings)
	}
}

func TestRenderStates(t *testing.T) {
	s, sim := newSimScreen(t)
	r := NewRenderer(s)
	cfg := game.DefaultConfig()
	cfg.Seed = 99
	g := game.New(cfg, game.Deps{RNG: rng.New(cfg.Seed)})

	r.Render(g, true)
	if text := screenText(sim); !strings.Contains(text, "Q U E S T F I E L D") {
		t.Errorf("title screen missing title:\n%s", text)
	}

	g.Update(context.Background(), input.Intent{Confirm: true}, 0)
	r.Render(g, true)
	text := screenText(sim)
	if !strings.Contains(text, "@") {
		t.Errorf("overworld should show the player:\n%s", text)
	}
	if !strings.Contains(text, "Hero Lv1") || !strings.Contains(text, "Seed 99") {
		t.Errorf("status line missing:\n%s", text)
	}
}

func TestViewFollowsStep(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 7
	g := game.New(cfg, game.Deps{RNG: rng.New(cfg.Seed)})
	ctx := context.Background()
	g.Update(ctx, input.Intent{Confirm: true}, 0)
	run := g.Run()
	start := run.Pos

	var to world.Coord
	walking := false
	for _, d := range []input.Direction{input.Up, input.Down, input.Left, input.Right} {
		g.Update(ctx, input.Intent{Dir: d}, cfg.WalkDuration/4)
		if to, _, walking = run.Walking(cfg.WalkDuration); walking {
			break
		}
	}
	if !walking {
		t.Skip("start is boxed in on this map")
	}

	if got := viewCenter(g, run); got != start {
		t.Errorf("early in the step viewCenter() = %v, want %v", got, start)
	}
	g.Update(ctx, input.Intent{}, cfg.WalkDuration/2)
	if run.Pos != start {
		t.Fatalf("arrived early at %v", run.Pos)
	}
	if got := viewCenter(g, run); got != to {
		t.Errorf("past halfway viewCenter() = %v, want %v", got, to)
	}
}
