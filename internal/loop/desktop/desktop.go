// Package desktop runs the arcade in a window using ebiten.
package desktop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/loop"
	"github.com/bomma/arcade/internal/loop/config"
	"github.com/bomma/arcade/internal/object"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 640
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Options configures the desktop game.
type Options struct {
	Logger      *log.Logger
	Rand        *rand.Rand
	DefaultGame string // Catalog id highlighted on the title screen
}

// Game implements ebiten.Game. Every Update is one session tick, so the
// tick rate is ebiten's TPS.
type Game struct {
	session   *loop.Session
	particles *object.ParticleSystem
	logger    *log.Logger
	selected  int
	best      int
}

// New creates a desktop game on its title screen.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		session:   loop.NewSession(loop.SessionOptions{Rand: opts.Rand, Logger: logger}),
		particles: object.NewParticleSystem(nil, config.ParticleDrag),
		logger:    logger,
	}
	for i, game := range catalog.Games {
		if game.ID == opts.DefaultGame {
			g.selected = i
		}
	}
	return g
}

// Update handles input for the current phase and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.session.End()
		return ebiten.Termination
	}

	switch g.session.Phase() {
	case loop.PhaseIdle:
		g.updateTitle()
	case loop.PhaseRunning:
		g.updatePlaying()
	case loop.PhaseGameOver:
		g.updateGameOver()
	}

	res := g.session.Tick()
	if res.GameOver {
		g.best = max(g.best, g.session.Snapshot().Score)
	}
	g.updateParticles(res)
	return nil
}

// updateParticles bursts destroyed enemies and ages existing particles.
func (g *Game) updateParticles(res loop.TickResult) {
	if g.session.Phase() == loop.PhaseIdle {
		g.particles.Clear()
		return
	}
	for _, e := range res.Destroyed {
		g.particles.Explode(e.X, e.Y, config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime)
	}
	g.particles.Update(1 / float64(ebiten.TPS()))
}

func (g *Game) updateTitle() {
	for i, key := range digitKeys {
		if i < len(catalog.Games) && inpututil.IsKeyJustPressed(key) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.selected = max(g.selected-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.selected = min(g.selected+1, len(catalog.Games)-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.start()
	}
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.End()
		return
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		speed := g.session.Tuning().PlayerSpeed
		g.session.Move(dx*speed, dy*speed)
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.session.FireAtNearest()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.FireAt(screenToPlayfield(x, y))
	}
}

func (g *Game) updateGameOver() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.End()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.start()
	}
}

func (g *Game) start() {
	game, ok := catalog.At(g.selected)
	if !ok {
		game = catalog.Games[0]
	}
	g.logger.Debug("starting game", "game", game.ID)
	g.session.Start(game.Config)
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// screenToPlayfield converts a cursor position to playfield units.
func screenToPlayfield(x, y int) object.Point {
	return object.Point{
		X: float64(x) / ScreenWidth * object.PlayfieldMax,
		Y: float64(y) / ScreenHeight * object.PlayfieldMax,
	}
}

// playfieldToScreen converts playfield units to screen pixels.
func playfieldToScreen(x, y float64) (float32, float32) {
	return float32(x / object.PlayfieldMax * ScreenWidth), float32(y / object.PlayfieldMax * ScreenHeight)
}

// playfieldLength converts a playfield distance to pixels.
func playfieldLength(d float64) float32 {
	return float32(d / object.PlayfieldMax * ScreenWidth)
}
