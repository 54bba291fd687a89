package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/config"
	"github.com/bomma/arcade/internal/loop/desktop"
	loopconfig "github.com/bomma/arcade/internal/loop/config"
)

func main() {
	logger := config.NewStderrLogger("arcade-desktop")

	defaultGame := config.GetEnv("ARCADE_GAME", catalog.Games[0].ID)
	if _, err := catalog.Lookup(defaultGame); err != nil {
		logger.Warn("ignoring ARCADE_GAME", "err", err)
	}

	game := desktop.New(desktop.Options{
		Logger:      logger,
		Rand:        config.NewRand(),
		DefaultGame: defaultGame,
	})

	ebiten.SetTPS(loopconfig.TickRate)
	ebiten.SetWindowSize(desktop.ScreenWidth, desktop.ScreenHeight)
	ebiten.SetWindowTitle("Bomma Doodle Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
