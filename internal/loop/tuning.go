package loop

import "github.com/bomma/arcade/internal/loop/config"

// Tuning holds the per-session simulation constants.
type Tuning struct {
	PlayerMaxHealth   int
	PlayerStartX      float64
	PlayerStartY      float64
	PlayerSpeed       float64
	ProjectileStep    float64
	ProjectileDamage  int
	HitRadius         float64
	FireCooldownTicks uint64
	PointerSnapRadius float64
	EnemySpeed        float64
	MeleeRadius       float64
	MeleeDamage       int
}

// DefaultTuning returns the values from the config package.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerMaxHealth:   config.PlayerMaxHealth,
		PlayerStartX:      config.PlayerStartX,
		PlayerStartY:      config.PlayerStartY,
		PlayerSpeed:       config.PlayerSpeed,
		ProjectileStep:    config.ProjectileStep,
		ProjectileDamage:  config.ProjectileDamage,
		HitRadius:         config.HitRadius,
		FireCooldownTicks: config.FireCooldownTicks,
		PointerSnapRadius: config.PointerSnapRadius,
		EnemySpeed:        config.EnemySpeed,
		MeleeRadius:       config.MeleeRadius,
		MeleeDamage:       config.MeleeDamage,
	}
}
