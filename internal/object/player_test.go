package object

import "testing"

func TestPlayerApplyDamage(t *testing.T) {
	p := NewPlayer(50, 50, 100)

	health, defeated := p.ApplyDamage(30)
	if health != 70 || defeated {
		t.Errorf("expected (70, false), got (%d, %v)", health, defeated)
	}

	health, defeated = p.ApplyDamage(0)
	if health != 70 || defeated {
		t.Errorf("expected zero damage to be a no-op, got (%d, %v)", health, defeated)
	}

	health, defeated = p.ApplyDamage(-10)
	if health != 70 || defeated {
		t.Errorf("expected negative damage to be ignored, got (%d, %v)", health, defeated)
	}
}

func TestPlayerHealthFloorsAtZero(t *testing.T) {
	p := NewPlayer(50, 50, 100)
	p.ApplyDamage(90)

	health, defeated := p.ApplyDamage(15)
	if health != 0 {
		t.Errorf("expected health clamped to 0, got %d", health)
	}
	if !defeated {
		t.Error("expected defeated once health reaches 0")
	}

	for i := 0; i < 5; i++ {
		health, defeated = p.ApplyDamage(15)
		if health != 0 || !defeated {
			t.Errorf("call %d at zero health: expected (0, true), got (%d, %v)", i, health, defeated)
		}
	}
	if !p.IsDefeated() {
		t.Error("expected IsDefeated after reaching 0")
	}
}

func TestPlayerMoveClampsToPlayfield(t *testing.T) {
	p := NewPlayer(95, 5, 100)
	p.Move(20, -20)

	pos := p.Position()
	if pos.X != PlayfieldMax || pos.Y != PlayfieldMin {
		t.Errorf("expected (%v, %v), got (%v, %v)", PlayfieldMax, PlayfieldMin, pos.X, pos.Y)
	}

	p.Move(-10, 10)
	pos = p.Position()
	if pos.X != 90 || pos.Y != 10 {
		t.Errorf("expected (90, 10), got (%v, %v)", pos.X, pos.Y)
	}
}

func TestNewPlayerClampsStart(t *testing.T) {
	p := NewPlayer(-5, 150, 0)
	if p.X != 0 || p.Y != 100 {
		t.Errorf("expected start clamped to (0, 100), got (%v, %v)", p.X, p.Y)
	}
	if p.MaxHealth() != 1 || p.Health() != 1 {
		t.Errorf("expected max health floored at 1, got %d/%d", p.Health(), p.MaxHealth())
	}
}
