package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/questfield/internal/entity"
	"github.com/samdwyer/questfield/internal/game"
	"github.com/samdwyer/questfield/internal/world"
)

const (
	// Overworld viewport in cells, centered on the player
	viewWidth  = 33
	viewHeight = 15

	// Map cells per minimap cell
	miniScaleX = 2
	miniScaleY = 3
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// Renderer handles drawing the game to the screen. It only reads game
// state.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current state. blinkOn toggles the minimap markers.
func (r *Renderer) Render(g *game.Game, blinkOn bool) {
	r.screen.Clear()

	run := g.Run()
	switch g.State() {
	case game.StateTitle:
		r.renderTitle()
	case game.StateExplore:
		r.renderOverworld(g, run, blinkOn)
	case game.StateEvent:
		r.renderOverworld(g, run, blinkOn)
		if run.Pending != nil {
			r.renderDialog(run.Pending.Text(), "[Enter] continue")
		}
	case game.StateBattle:
		r.renderBattle(run)
	}

	r.screen.Show()
}

func (r *Renderer) renderTitle() {
	w, h := r.screen.Size()
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{"Q U E S T F I E L D", titleStyle},
		{"", textStyle},
		{"Find the sixteen towns. Defeat the Dark Lord.", textStyle},
		{"", textStyle},
		{"[Enter] start    [Esc] quit", dimStyle},
	}
	top := h/2 - len(lines)/2
	for i, l := range lines {
		r.screen.DrawText((w-len(l.text))/2, top+i, l.text, l.style)
	}
}

func (r *Renderer) renderOverworld(g *game.Game, run *game.RunState, blinkOn bool) {
	m := run.Map
	center := viewCenter(g, run)

	// Viewport around the player; the map wraps so every cell exists
	for vy := 0; vy < viewHeight; vy++ {
		for vx := 0; vx < viewWidth; vx++ {
			c := center.Add(vx-viewWidth/2, vy-viewHeight/2)
			f := m.At(c)
			r.screen.SetContent(vx, vy, f.Kind.Rune(), fieldStyle(f))
		}
	}
	r.screen.SetContent(viewWidth/2, viewHeight/2, '@', playerStyle)

	r.renderMinimap(m, center, viewWidth+2, 0, blinkOn)
	r.renderStatus(g, run, viewHeight+1)
}

// viewCenter is the cell the player is drawn on. Past the halfway point
// of a step the player is shown on the destination.
func viewCenter(g *game.Game, run *game.RunState) world.Coord {
	if to, progress, ok := run.Walking(g.Config().WalkDuration); ok && progress >= 0.5 {
		return to
	}
	return run.Pos
}

// renderMinimap draws the whole map scaled down. Towns and the castle
// flash with blinkOn.
func (r *Renderer) renderMinimap(m *world.Map, pos world.Coord, left, top int, blinkOn bool) {
	cols := (m.Width + miniScaleX - 1) / miniScaleX
	rows := (m.Height + miniScaleY - 1) / miniScaleY
	for my := 0; my < rows; my++ {
		for mx := 0; mx < cols; mx++ {
			ch, style := minimapCell(m, mx*miniScaleX, my*miniScaleY, blinkOn)
			r.screen.SetContent(left+mx, top+my, ch, style)
		}
	}
	r.screen.SetContent(left+pos.X/miniScaleX, top+pos.Y/miniScaleY, '@', playerStyle)
}

// minimapCell summarizes one block of the map: a blinking field wins,
// otherwise the block's first cell is shown.
func minimapCell(m *world.Map, x0, y0 int, blinkOn bool) (rune, tcell.Style) {
	for y := y0; y < y0+miniScaleY && y < m.Height; y++ {
		for x := x0; x < x0+miniScaleX && x < m.Width; x++ {
			c := world.Coord{X: x, Y: y}
			if !m.Blinks(c) {
				continue
			}
			f := m.At(c)
			if !blinkOn {
				return ' ', textStyle
			}
			return f.Kind.Rune(), fieldStyle(f).Bold(true)
		}
	}
	f := m.At(world.Coord{X: x0, Y: y0})
	return f.Kind.Rune(), fieldStyle(f)
}

func (r *Renderer) renderStatus(g *game.Game, run *game.RunState, y int) {
	p := run.Player
	r.screen.DrawText(0, y, statusLine(p), textStyle)
	r.screen.DrawText(0, y+1, fmt.Sprintf("Items %d/16  Steps %d  Won %d  (%d,%d)",
		len(run.Inventory.Items()), run.Stats.Steps, run.Stats.BattlesWon, run.Pos.X, run.Pos.Y), dimStyle)
	if g.Config().Seed != 0 {
		r.screen.DrawText(0, y+2, fmt.Sprintf("Seed %d", g.Config().Seed), dimStyle)
	}
}

func statusLine(s *entity.CharacterStatus) string {
	return fmt.Sprintf("%s Lv%d  HP %d/%d  MP %d/%d  ATK %d  DEF %d  EXP %d",
		s.Name, s.Level, s.HP, s.MaxHP, s.MP, s.MaxMP, s.Attack, s.Defence, s.Exp)
}

func (r *Renderer) renderDialog(text, hint string) {
	w, h := r.screen.Size()
	width := max(len(text), len(hint)) + 4
	left := max((w-width)/2, 0)
	top := max(h/2-2, 0)

	border := "+" + strings.Repeat("-", width-2) + "+"
	blank := "|" + strings.Repeat(" ", width-2) + "|"
	r.screen.DrawText(left, top, border, textStyle)
	for i := 1; i <= 3; i++ {
		r.screen.DrawText(left, top+i, blank, textStyle)
	}
	r.screen.DrawText(left, top+4, border, textStyle)
	r.screen.DrawText(left+2, top+1, text, titleStyle)
	r.screen.DrawText(left+2, top+3, hint, dimStyle)
}

func (r *Renderer) renderBattle(run *game.RunState) {
	enemy := run.Enemy
	if enemy == nil {
		return
	}

	enemyStyle := tcell.StyleDefault.Foreground(tcell.GetColor(enemy.Def.Color)).Bold(true)
	x := r.screen.DrawText(2, 1, string(enemy.Def.GlyphRune()), enemyStyle)
	r.screen.DrawText(x+1, 1, fmt.Sprintf("%s Lv%d", enemy.Status.Name, enemy.Status.Level), enemyStyle)
	r.drawBar(2, 2, "HP", enemy.Status.HP, enemy.Status.MaxHP, tcell.ColorRed)

	r.screen.DrawText(2, 5, statusLine(run.Player), textStyle)
	r.drawBar(2, 6, "HP", run.Player.HP, run.Player.MaxHP, tcell.ColorGreen)
	r.drawBar(2, 7, "MP", run.Player.MP, run.Player.MaxMP, tcell.ColorBlue)

	for i, line := range strings.Split(run.Inventory.SkillList(), "\n") {
		style := textStyle
		if i == run.Inventory.Cursor() && run.Battle == game.BattleSelect {
			style = cursorStyle
		}
		r.screen.DrawText(2, 9+i, line, style)
	}

	_, h := r.screen.Size()
	r.screen.DrawText(2, h-3, run.LastAction, textStyle)
	hint := "[Up/Down] choose  [Enter] act"
	if run.Battle != game.BattleSelect {
		hint = "..."
	}
	r.screen.DrawText(2, h-2, hint, dimStyle)
}

// drawBar draws a 20-cell gauge.
func (r *Renderer) drawBar(x, y int, label string, cur, maxVal int, color tcell.Color) {
	const cells = 20
	filled := 0
	if maxVal > 0 {
		filled = cur * cells / maxVal
	}
	x = r.screen.DrawText(x, y, label+" ", textStyle)
	for i := 0; i < cells; i++ {
		style := dimStyle
		ch := '-'
		if i < filled {
			style = tcell.StyleDefault.Foreground(color)
			ch = '#'
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// fieldStyle returns the appropriate style for a field.
func fieldStyle(f world.Field) tcell.Style {
	switch f.Kind {
	case world.Grass:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.Forest:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	case world.Mountain:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.Water:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case world.Town:
		if f.Visited {
			return tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.Castle:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}
