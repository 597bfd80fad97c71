package hacker

import (
	"fmt"

	"github.com/nlopatin/hackergrid/internal/core"
	"github.com/nlopatin/hackergrid/internal/games/hacker/engine"
)

// kindGlyph maps an entity kind to its screen rune and color.
func kindGlyph(k engine.Kind) (rune, core.Color) {
	switch k {
	case engine.KindDestroyable:
		return DestroyableChar, core.ColorBrightRed
	case engine.KindCollectable:
		return CollectableChar, core.ColorBrightYellow
	case engine.KindBlocker:
		return BlockerChar, core.ColorGray
	case engine.KindBomb:
		return BombChar, core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	size := g.eng.Size()

	// Cells are two columns apart so the square grid reads square in a
	// terminal. The top engine row is drawn first; the player row last.
	innerW := size*2 - 1
	offsetX := (dst.Width() - innerW) / 2
	offsetY := (dst.Height() - size) / 2
	if offsetX < 1 {
		offsetX = 1
	}
	if offsetY < 2 {
		offsetY = 2
	}

	dst.DrawBox(core.NewRect(offsetX-1, offsetY-1, innerW+2, size+2))

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			sx := offsetX + x*2
			sy := offsetY + (size - 1 - y)
			dst.SetColored(sx, sy, EmptyChar, core.ColorGray)
		}
	}

	for pos, kind := range g.eng.Entities() {
		r, color := kindGlyph(kind)
		sx := offsetX + pos.X*2
		sy := offsetY + (size - 1 - pos.Y)
		dst.SetColored(sx, sy, r, color)
	}

	player := g.eng.PlayerPosition()
	dst.SetColored(offsetX+player.X*2, offsetY+size-1, PlayerChar, core.ColorBrightGreen)

	g.drawHUD(dst)

	if g.statusLeft > 0 && g.status != "" {
		dst.DrawTextColored(offsetX-1, offsetY+size+1, " "+g.status+" ", core.ColorBrightCyan)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	switch g.eng.Outcome() {
	case engine.OutcomeWon:
		g.drawCenteredMessage(dst, "ACCESS GRANTED",
			fmt.Sprintf("Collected %d in %ds  |  Press R to restart", g.eng.Collected(), g.Seconds()))
	case engine.OutcomeLost:
		g.drawCenteredMessage(dst, "ACCESS DENIED",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// drawHUD renders the counters along the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Data: %d/%d  Kills: %d  Shots: %d ",
		g.eng.Collected(), g.cfg.Grid.CollectionTarget, g.eng.Destroyed(), g.eng.ShotsFired())
	dst.DrawTextColored(2, 0, left, core.ColorBrightCyan)

	seconds := g.Seconds()
	right := fmt.Sprintf(" Life: %d  Time: %02d:%02d ", g.eng.Life(), seconds/60, seconds%60)
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorBrightGreen)
}

// drawCenteredMessage draws a boxed two-line overlay in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := len(subtitle) + 6
	if len(title)+6 > boxW {
		boxW = len(title) + 6
	}
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
