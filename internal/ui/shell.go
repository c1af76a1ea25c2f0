package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/questfield/internal/game"
	"github.com/samdwyer/questfield/internal/logger"
)

const (
	tickRate     = time.Second / 30
	blinkPeriod  = 400 * time.Millisecond
	eventBacklog = 64
)

// Shell drives a Game from terminal input at a fixed tick rate.
type Shell struct {
	screen   *Screen
	renderer *Renderer
	keys     *Keys
}

// NewShell creates a shell drawing to screen.
func NewShell(screen *Screen) *Shell {
	return &Shell{
		screen:   screen,
		renderer: NewRenderer(screen),
		keys:     NewKeys(),
	}
}

// Run executes the main loop until the game quits, a quit key is pressed
// or ctx is cancelled.
func (s *Shell) Run(ctx context.Context, g *game.Game) error {
	log := logger.Component("ui")

	evCh := make(chan tcell.Event, eventBacklog)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(evCh)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	start := time.Now()
	last := start
	for !g.Done() && !s.keys.Quit() {
		select {
		case <-ctx.Done():
			log.Info("context cancelled")
			return ctx.Err()

		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.keys.Handle(ev, time.Now())
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case now := <-ticker.C:
			g.Update(ctx, s.keys.Intent(now), now.Sub(last))
			last = now
			blinkOn := (now.Sub(start)/blinkPeriod)%2 == 0
			s.renderer.Render(g, blinkOn)
		}
	}
	log.Info("quit requested")
	return nil
}
