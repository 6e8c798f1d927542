package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

const (
	hudHeight = 2 // title line + separator
	cellW     = 2 // terminal columns per grid cell
)

// scene mirrors what the session reported through its sinks. Render draws
// from it, never from the session's entities directly.
type scene struct {
	body       []grid.Cell
	style      Style
	food       Item
	powerUp    Item
	score      int
	finalScore int
	events     []core.Event
}

func newScene() *scene {
	return &scene{}
}

func (sc *scene) SnakeChanged(cells []grid.Cell, style Style) {
	sc.body = cells
	sc.style = style
}

func (sc *scene) FoodPlaced(c grid.Cell)    { sc.food = Item{Cell: c, Present: true} }
func (sc *scene) PowerUpPlaced(c grid.Cell) { sc.powerUp = Item{Cell: c, Present: true} }
func (sc *scene) PowerUpCleared()           { sc.powerUp = Item{} }
func (sc *scene) ScoreChanged(score int)    { sc.score = score }

func (sc *scene) FoodEaten()    { sc.events = append(sc.events, core.EventFoodEaten) }
func (sc *scene) PowerUpEaten() { sc.events = append(sc.events, core.EventPowerUpEaten) }

func (sc *scene) RoundOver(finalScore int) {
	sc.finalScore = finalScore
	sc.events = append(sc.events, core.EventGameOver)
}

// drainEvents returns and clears the cues collected since the last call.
func (sc *scene) drainEvents() []core.Event {
	ev := sc.events
	sc.events = nil
	return ev
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	gr := g.session.Grid()
	fieldW := gr.Width*cellW + 2
	fieldH := gr.Height + 2
	if dst.Width() < fieldW || dst.Height() < fieldH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", fieldW, fieldH+hudHeight))
		return
	}

	field := core.NewRect((dst.Width()-fieldW)/2, hudHeight, fieldW, fieldH)
	dst.DrawBox(field, core.ColorGray)

	switch g.session.State() {
	case StateSplash:
		g.renderSplash(dst)
		return
	case StateGameOver:
		g.renderEntities(dst, field)
		g.renderOverlay(dst, "Game Over!", fmt.Sprintf("Score: %d", g.scene.finalScore))
		return
	}

	g.renderEntities(dst, field)
	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Best: %d", g.scene.score, g.session.BestScore())
	dst.DrawText(0, 0, hud)

	if g.session.State() == StatePlaying && g.session.WallInvincible() {
		left := (g.session.Timer().InvincibleUntil() - g.clock.Now()).Seconds()
		label := fmt.Sprintf("  INVINCIBLE %.0fs", left)
		x := len([]rune(hud))
		for i, r := range label {
			dst.SetColored(x+i, 0, r, core.RainbowAt(i+int(g.tick/4)))
		}
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

// renderEntities draws food, power-up and snake inside the field box.
func (g *Game) renderEntities(dst *core.Screen, field core.Rect) {
	sc := g.scene
	if sc.food.Present {
		drawCell(dst, field, sc.food.Cell, "()", core.ColorBrightRed)
	}
	if sc.powerUp.Present {
		drawCell(dst, field, sc.powerUp.Cell, "<>", core.ColorGreen)
	}

	// Draw tail first so the head wins if cells ever overlap
	for i := len(sc.body) - 1; i >= 0; i-- {
		color := core.ColorBrightGreen
		if sc.style == StyleRainbow {
			color = core.RainbowAt(i + int(g.tick/4))
		}
		glyph := "[]"
		if i == 0 {
			glyph = "██"
		}
		drawCell(dst, field, sc.body[i], glyph, color)
	}
}

// renderSplash draws the start screen inside the field.
func (g *Game) renderSplash(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-3, "S N A K E", core.ColorBrightGreen)
	dst.DrawTextCentered(cy-1, "Eat the red apples, grab the green one", core.ColorDefault)
	dst.DrawTextCentered(cy, "to pass through walls for a while.", core.ColorDefault)
	if g.session.Rounds() > 0 {
		dst.DrawTextCentered(cy+2, fmt.Sprintf("Last: %d   Best: %d", g.session.LastScore(), g.session.BestScore()), core.ColorYellow)
	}
	dst.DrawTextCentered(cy+4, "Press Enter or Space to start", core.ColorBrightWhite)
}

// drawCell paints one grid cell, which is cellW terminal columns wide.
func drawCell(dst *core.Screen, field core.Rect, c grid.Cell, glyph string, color core.Color) {
	x := field.X + 1 + c.Col*cellW
	y := field.Y + 1 + c.Row
	if !field.Contains(x, y) {
		return
	}
	dst.DrawTextColored(x, y, glyph, color)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((w-(maxLen+4))/2, (h-5)/2, maxLen+4, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
