package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/draw"
	"github.com/bomma/arcade/internal/loop"
	"github.com/bomma/arcade/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(snapshot loop.Snapshot) error {
	cw := c.chunkWriter

	// Empty cells are never overwritten, so every frame starts from a clear screen.
	cw.WriteString("\033[H\033[2J")
	c.state.prevPhase = snapshot.Phase

	c.canvas.Clear()
	if snapshot.Phase != loop.PhaseIdle {
		c.drawPlayfield(snapshot)
	}
	if err := c.canvas.Render(cw); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(cw); err != nil {
		return err
	}

	c.drawUI(snapshot)
	return cw.Flush()
}

// drawPlayfield draws enemies, projectiles, kill bursts and the player onto the canvas.
func (c *Client) drawPlayfield(snapshot loop.Snapshot) {
	for _, e := range snapshot.Enemies {
		// Damaged enemies are drawn hollow.
		c.canvas.DrawCircle(e.X, e.Y, e.Size/2, e.HealthFraction >= 1)
	}

	for _, p := range snapshot.Projectiles {
		c.canvas.SetFloat(p.X, p.Y)
		c.canvas.SetFloat(p.X, p.Y+1)
	}

	for _, p := range c.particles.Particles() {
		if p.Visible() {
			c.canvas.SetFloat(p.X, p.Y)
		}
	}

	px, py := snapshot.Player.X, snapshot.Player.Y
	c.canvas.DrawPolygon([]draw.Point{
		{X: px, Y: py - 3},
		{X: px - 2, Y: py + 1},
		{X: px + 2, Y: py + 1},
	}, true)
}

// drawUI draws the text overlay for the current phase.
func (c *Client) drawUI(snapshot loop.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snapshot.Phase {
	case loop.PhaseIdle:
		c.drawTitleScreen(centerX, centerY)
	case loop.PhaseRunning, loop.PhaseSpawning:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case loop.PhaseGameOver:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
		c.drawGameOverScreen(centerX, centerY, snapshot)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	cw := c.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "INACTIVITY WARNING")
	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	cw.WriteCentered(centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", remaining))
	cw.WriteCentered(centerX, centerY+2, "Press any key to continue")
}

// drawTitleScreen draws the title and the game catalog.
func (c *Client) drawTitleScreen(centerX, centerY int) {
	titleArt := []string{
		` ___  ___  __  __ __  __   _   `,
		`| _ )/ _ \|  \/  |  \/  | /_\  `,
		`| _ \ (_) | |\/| | |\/| |/ _ \ `,
		`|___/\___/|_|  |_|_|  |_/_/ \_\`,
	}

	cw := c.chunkWriter
	row := centerY - len(catalog.Games) - len(titleArt) - 2
	for _, line := range titleArt {
		cw.WriteCentered(centerX, row, line)
		row++
	}
	row++
	cw.WriteCentered(centerX, row, "~ Doodle Arcade ~")
	row += 2

	for i, g := range catalog.Games {
		marker := "  "
		if i == c.state.Selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %-22s %-6s", marker, i+1, g.Title, g.Config.Difficulty)
		cw.WriteCentered(centerX, row, line)
		row++
	}

	if g, ok := catalog.At(c.state.Selected); ok {
		row++
		cw.WriteCentered(centerX, row, g.Description)
	}
	row += 2

	controls := []string{
		"1-9 / Up-Down  Select game",
		"Enter          Start",
		"WASD / Arrows  Move",
		"Space          Fire at nearest",
		"Esc            Back to menu",
		"Q              Quit",
	}
	for _, line := range controls {
		cw.WriteCentered(centerX, row, line)
		row++
	}

	if c.state.BestScore > 0 {
		cw.WriteCentered(centerX, row+1, fmt.Sprintf("Best score: %d", c.state.BestScore))
	}
}

// drawPlayingHUD draws health, score, wave and the latest score message.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot loop.Snapshot) {
	cw := c.chunkWriter

	health := 0.0
	if snapshot.Player.MaxHealth > 0 {
		health = float64(snapshot.Player.Health) / float64(snapshot.Player.MaxHealth)
	}
	cw.WriteAt(2, 1, fmt.Sprintf("HP %s %3d", draw.Bar(health, 10), snapshot.Player.Health))

	right := fmt.Sprintf("Score %d  Wave %d", snapshot.Score, snapshot.Wave)
	cw.WriteAt(termWidth-len(right), 1, right)

	if snapshot.Message != "" && snapshot.MessageAge < config.MessageDisplayTicks {
		cw.WriteCentered(termWidth/2, 2, snapshot.Message)
	}

	for _, e := range snapshot.Enemies {
		if e.HealthFraction >= 1 {
			continue
		}
		col, row := c.canvas.LogicalToTerminal(e.X, e.Y-e.Size/2-2)
		cw.WriteAt(col-2, row, draw.Bar(e.HealthFraction, 4))
	}

	hint := "Space fire  Esc menu  Q quit"
	cw.WriteAt(2, termHeight, hint)
}

// drawGameOverScreen draws the game over box.
func (c *Client) drawGameOverScreen(centerX, centerY int, snapshot loop.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d   Kills: %d   Wave: %d", snapshot.Score, snapshot.Kills, snapshot.Wave),
		fmt.Sprintf("Best:  %d", max(c.state.BestScore, snapshot.Score)),
		"",
		"Enter to play again, Esc for menu",
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4

	cw := c.chunkWriter
	top := centerY - len(lines)/2 - 1
	cw.WriteCentered(centerX, top, "┌"+strings.Repeat("─", width)+"┐")
	for i, l := range lines {
		pad := width - len(l)
		cw.WriteCentered(centerX, top+1+i, "│"+strings.Repeat(" ", pad/2)+l+strings.Repeat(" ", pad-pad/2)+"│")
	}
	cw.WriteCentered(centerX, top+1+len(lines), "└"+strings.Repeat("─", width)+"┘")
}
