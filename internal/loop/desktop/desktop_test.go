package desktop

import (
	"strings"
	"testing"

	"github.com/bomma/arcade/internal/loop"
	"github.com/bomma/arcade/internal/object"
)

func TestScreenToPlayfield(t *testing.T) {
	tests := []struct {
		x, y int
		want object.Point
	}{
		{0, 0, object.Point{X: 0, Y: 0}},
		{ScreenWidth / 2, ScreenHeight / 4, object.Point{X: 50, Y: 25}},
		{ScreenWidth, ScreenHeight, object.Point{X: 100, Y: 100}},
	}
	for _, tt := range tests {
		if got := screenToPlayfield(tt.x, tt.y); got != tt.want {
			t.Errorf("screenToPlayfield(%d, %d): expected %+v, got %+v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestPlayfieldToScreenRoundTrip(t *testing.T) {
	x, y := playfieldToScreen(25, 75)
	if x != ScreenWidth/4 || y != ScreenHeight*3/4 {
		t.Errorf("expected (%d, %d), got (%v, %v)", ScreenWidth/4, ScreenHeight*3/4, x, y)
	}
}

func TestNewSelectsDefaultGame(t *testing.T) {
	g := New(Options{DefaultGame: "robo-rumble"})
	if g.selected != 4 {
		t.Errorf("expected robo-rumble (index 4), got %d", g.selected)
	}
	if g.session.Phase() != loop.PhaseIdle {
		t.Errorf("expected idle, got %v", g.session.Phase())
	}
}

func TestTitleText(t *testing.T) {
	text := titleText(1, 0)
	if !strings.Contains(text, "> 2. Sketchy Seas (medium)") {
		t.Errorf("expected marked selection, got %q", text)
	}
	if strings.Contains(text, "Best score") {
		t.Error("expected no best score before any game")
	}
	if !strings.Contains(titleText(0, 40), "Best score: 40") {
		t.Error("expected best score line")
	}
}

func TestGameOverText(t *testing.T) {
	text := gameOverText(loop.Snapshot{Score: 25, Kills: 3, Wave: 2}, 10)
	if !strings.Contains(text, "Score 25  Kills 3  Wave 2") || !strings.Contains(text, "Best  25") {
		t.Errorf("unexpected game over text %q", text)
	}
}

func TestEnemyColorFallback(t *testing.T) {
	if enemyColor("blob") != inkColor {
		t.Error("expected unknown type to use ink color")
	}
	if enemyColor("shark") == inkColor {
		t.Error("expected shark to have its own color")
	}
}
