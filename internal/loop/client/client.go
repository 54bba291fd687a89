// Package client runs the arcade in a terminal: title screen, game, and game
// over screen, for one connection.
package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/draw"
	"github.com/bomma/arcade/internal/input"
	"github.com/bomma/arcade/internal/loop"
	"github.com/bomma/arcade/internal/loop/config"
	"github.com/bomma/arcade/internal/object"
)

// Client handles rendering and input for a single connection. Every client
// owns its own Session; nothing is shared between connections.
type Client struct {
	session      *loop.Session
	logger       *log.Logger
	state        *ClientState
	canvas       *draw.Canvas
	particles    *object.ParticleSystem
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	interval     time.Duration
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger
	Rand         *rand.Rand    // Spawn randomness; time-seeded when nil
	DefaultGame  string        // Catalog id highlighted on the title screen
	Interval     time.Duration // Tick interval; config.TickTime when zero
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	selected := 0
	for i, g := range catalog.Games {
		if g.ID == opts.DefaultGame {
			selected = i
		}
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, object.PlayfieldMax, object.PlayfieldMax)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		session: loop.NewSession(loop.SessionOptions{
			Rand:   opts.Rand,
			Logger: logger,
		}),
		logger:       logger,
		state:        NewClientState(selected),
		canvas:       canvas,
		particles:    object.NewParticleSystem(nil, config.ParticleDrag),
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		interval:     opts.Interval,
	}
}

// Run starts the client loop. Blocks until the player quits, the input
// closes, or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	err := loop.Run(ctx, c.session, c.interval, c.frame)
	draw.ClearScreen(c.writer)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// frame runs once per tick: input is applied for the next tick, then the
// current state is drawn.
func (c *Client) frame(f loop.Frame) error {
	if f.Snapshot.Phase == loop.PhaseGameOver && c.state.prevPhase == loop.PhaseRunning {
		if f.Snapshot.Score > c.state.BestScore {
			c.state.BestScore = f.Snapshot.Score
		}
	}

	c.updateParticles(f)

	c.processInput(f.Snapshot.Phase)
	if !c.state.Running {
		return loop.ErrStop
	}

	c.updateScreen()
	return c.drawFrame(c.session.Snapshot())
}

// updateParticles bursts destroyed enemies and ages existing particles.
func (c *Client) updateParticles(f loop.Frame) {
	if f.Snapshot.Phase == loop.PhaseIdle {
		c.particles.Clear()
		return
	}
	for _, e := range f.Result.Destroyed {
		c.particles.Explode(e.X, e.Y, config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime)
	}
	c.particles.Update(config.TickTime.Seconds())
}

// processInput reads keys and turns them into session commands.
func (c *Client) processInput(phase loop.Phase) {
	c.state.Input = input.ReadInput(c.inputStream)
	in := c.state.Input

	if c.inputStream.Closed() {
		c.state.Running = false
		return
	}

	if in.Any {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive player")
		c.state.Running = false
		return
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if in.Quit {
		c.state.Running = false
		return
	}

	switch phase {
	case loop.PhaseIdle:
		c.updateTitleState(in)
	case loop.PhaseRunning:
		c.updatePlayingState(in)
	case loop.PhaseGameOver:
		c.updateGameOverState(in)
	}
}

// updateTitleState handles game selection on the title screen.
func (c *Client) updateTitleState(in input.Input) {
	if in.Number >= 1 {
		if _, ok := catalog.At(in.Number - 1); ok {
			c.state.Selected = in.Number - 1
		}
	}
	if in.Up && c.state.Selected > 0 {
		c.state.Selected--
		input.ResetKeyInput(c.inputStream)
	}
	if in.Down && c.state.Selected < len(catalog.Games)-1 {
		c.state.Selected++
		input.ResetKeyInput(c.inputStream)
	}
	if in.Enter || in.Fire {
		c.startGame()
	}
}

// updatePlayingState steers and fires.
func (c *Client) updatePlayingState(in input.Input) {
	if in.Escape {
		c.session.End()
		return
	}
	dx, dy := in.Direction()
	if dx != 0 || dy != 0 {
		speed := c.session.Tuning().PlayerSpeed
		c.session.Move(dx*speed, dy*speed)
	}
	if in.Fire {
		c.session.FireAtNearest()
	}
}

// updateGameOverState offers a restart or a return to the title screen.
func (c *Client) updateGameOverState(in input.Input) {
	switch {
	case in.Escape:
		c.session.End()
	case in.Enter:
		c.startGame()
	}
}

// startGame starts the highlighted catalog game.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)

	game, ok := catalog.At(c.state.Selected)
	if !ok {
		game = catalog.Games[0]
	}
	c.logger.Debug("starting game", "game", game.ID)
	c.session.Start(game.Config)
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
