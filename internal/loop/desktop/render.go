package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/loop"
	"github.com/bomma/arcade/internal/loop/config"
)

var (
	backgroundColor = color.RGBA{0xf5, 0xf1, 0xe6, 0xff}
	inkColor        = color.RGBA{0x22, 0x22, 0x22, 0xff}
	playerColor     = color.RGBA{0x1e, 0x6f, 0xd9, 0xff}
	projectileColor = color.RGBA{0xe0, 0x8a, 0x00, 0xff}
	healthColor     = color.RGBA{0x3c, 0xb3, 0x4a, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

var enemyColors = map[string]color.RGBA{
	"ufo":    {0x7b, 0x3f, 0xbf, 0xff},
	"dragon": {0xc0, 0x39, 0x2b, 0xff},
	"zombie": {0x4e, 0x8f, 0x3a, 0xff},
	"shark":  {0x2c, 0x6e, 0x8f, 0xff},
	"robot":  {0x7f, 0x8c, 0x8d, 0xff},
	"monkey": {0x8e, 0x5b, 0x2c, 0xff},
}

func enemyColor(enemyType string) color.RGBA {
	if c, ok := enemyColors[enemyType]; ok {
		return c
	}
	return inkColor
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.session.Snapshot()

	if snap.Phase == loop.PhaseIdle {
		ebitenutil.DebugPrint(screen, titleText(g.selected, g.best))
		return
	}

	for _, e := range snap.Enemies {
		x, y := playfieldToScreen(e.X, e.Y)
		r := playfieldLength(e.Size / 2)
		c := enemyColor(e.Type)
		if e.HealthFraction >= 1 {
			vector.DrawFilledCircle(screen, x, y, r, c, true)
			continue
		}
		// Damaged enemies are drawn hollow with a health bar.
		vector.StrokeCircle(screen, x, y, r, 3, c, true)
		vector.DrawFilledRect(screen, x-r, y-r-8, 2*r, 4, inkColor, false)
		vector.DrawFilledRect(screen, x-r, y-r-8, 2*r*float32(e.HealthFraction), 4, healthColor, false)
	}

	px, py := playfieldToScreen(snap.Player.X, snap.Player.Y)
	for _, p := range snap.Projectiles {
		x, y := playfieldToScreen(p.X, p.Y)
		vector.StrokeLine(screen, px, py, x, y, 1, color.RGBA{0xe0, 0x8a, 0x00, 0x40}, true)
		vector.DrawFilledCircle(screen, x, y, 4, projectileColor, true)
	}

	for _, p := range g.particles.Particles() {
		if !p.Visible() {
			continue
		}
		x, y := playfieldToScreen(p.X, p.Y)
		vector.DrawFilledRect(screen, x-1.5, y-1.5, 3, 3, inkColor, false)
	}

	vector.DrawFilledRect(screen, px-8, py-8, 16, 16, playerColor, true)

	ebitenutil.DebugPrint(screen, hudText(snap))

	if snap.Phase == loop.PhaseGameOver {
		vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, gameOverText(snap, g.best), ScreenWidth/2-110, ScreenHeight/2-40)
	}
}

// titleText lists the catalog with the selection marked.
func titleText(selected, best int) string {
	var b strings.Builder
	b.WriteString("BOMMA - Doodle Arcade\n\n")
	for i, game := range catalog.Games {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%d. %s (%s)\n", marker, i+1, game.Title, game.Config.Difficulty)
	}
	if game, ok := catalog.At(selected); ok {
		fmt.Fprintf(&b, "\n%s\n", game.Description)
	}
	b.WriteString("\n1-9 select, Enter start, WASD move, Space/click fire, Esc menu, Q quit\n")
	if best > 0 {
		fmt.Fprintf(&b, "\nBest score: %d\n", best)
	}
	return b.String()
}

// hudText is the status line shown while a game is on screen.
func hudText(snap loop.Snapshot) string {
	text := fmt.Sprintf("HP %d/%d  Score %d  Wave %d  FPS %.0f",
		snap.Player.Health, snap.Player.MaxHealth, snap.Score, snap.Wave, ebiten.ActualFPS())
	if snap.Message != "" && snap.MessageAge < config.MessageDisplayTicks {
		text += "\n" + snap.Message
	}
	return text
}

func gameOverText(snap loop.Snapshot, best int) string {
	return fmt.Sprintf("GAME OVER\n\nScore %d  Kills %d  Wave %d\nBest  %d\n\nEnter to play again, Esc for menu",
		snap.Score, snap.Kills, snap.Wave, max(best, snap.Score))
}
