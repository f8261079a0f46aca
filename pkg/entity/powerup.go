// pkg/entity/powerup.go
package entity

import (
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// PowerupKind selects the effect a powerup applies to the player.
type PowerupKind int

const (
	PowerupHealth PowerupKind = iota
	PowerupShield
	PowerupWeapon
	PowerupSpeed
	PowerupDamage
)

// String returns a human-readable kind name for logging.
func (k PowerupKind) String() string {
	switch k {
	case PowerupHealth:
		return "health"
	case PowerupShield:
		return "shield"
	case PowerupWeapon:
		return "weapon"
	case PowerupSpeed:
		return "speed"
	case PowerupDamage:
		return "damage"
	}
	return "unknown"
}

// PowerupStats contains the effect magnitudes and lifetime a powerup is
// created with.
type PowerupStats struct {
	Width        int
	Height       int
	HealAmount   int
	EffectWindow time.Duration
	Lifetime     time.Duration
}

// DefaultPowerupStats returns the stock powerup attributes.
func DefaultPowerupStats() PowerupStats {
	return PowerupStats{
		Width:        20,
		Height:       20,
		HealAmount:   20,
		EffectWindow: 5 * time.Second,
		Lifetime:     10 * time.Second,
	}
}

// Powerup is a two-state collectible: Active until collected or expired
// by lifetime, then permanently Inactive. Once inactive it never appears
// in collision results again; removing the entity is the caller's
// concern.
type Powerup struct {
	BaseEntity
	Kind  PowerupKind
	Stats PowerupStats

	spawnedAt time.Time
}

// NewPowerup creates an active powerup centered at the given position.
func NewPowerup(position physics.Vector2D, kind PowerupKind, now time.Time, stats PowerupStats) *Powerup {
	return &Powerup{
		BaseEntity: NewBaseEntity(position, stats.Width, stats.Height),
		Kind:       kind,
		Stats:      stats,
		spawnedAt:  now,
	}
}

// Category identifies powerups for query filtering.
func (p *Powerup) Category() Category {
	return CategoryPowerup
}

// Apply applies the kind-specific effect to the player and deactivates
// the powerup. It returns false only when the powerup was already
// inactive.
func (p *Powerup) Apply(player *Player, now time.Time) bool {
	if !p.Active {
		return false
	}

	switch p.Kind {
	case PowerupHealth:
		player.Heal(p.Stats.HealAmount)
	case PowerupShield:
		player.ActivateShield(now, p.Stats.EffectWindow)
	case PowerupWeapon:
		player.ActivateWeaponBoost(now, p.Stats.EffectWindow)
	case PowerupSpeed:
		player.ActivateSpeedBoost(now, p.Stats.EffectWindow)
	case PowerupDamage:
		player.ActivateDamageBoost(now, p.Stats.EffectWindow)
	}

	p.Deactivate()
	return true
}

// Update expires the powerup once its lifetime has passed uncollected.
func (p *Powerup) Update(now time.Time) {
	if p.Active && p.Stats.Lifetime > 0 && now.Sub(p.spawnedAt) > p.Stats.Lifetime {
		p.Deactivate()
	}
}
