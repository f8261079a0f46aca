// pkg/entity/player.go
package entity

import (
	"math/rand"
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// flashInterval is the cadence of the hit flash: while the post-hit
// invincibility window is open, the player's footprint blinks at this
// rate.
const flashInterval = 100 * time.Millisecond

// PlayerStats contains the base attributes a player is created with.
type PlayerStats struct {
	Width               int
	Height              int
	MaxHealth           int
	MovementSpeed       float64
	InvincibilityWindow time.Duration
	ShotCooldown        time.Duration
	ShootingRange       float64
	ProjectileSpeed     float64
	ProjectileDamage    int
	CritChance          float64
	CritMultiplier      int
}

// DefaultPlayerStats returns the stock player attributes.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Width:               50,
		Height:              50,
		MaxHealth:           100,
		MovementSpeed:       5,
		InvincibilityWindow: time.Second,
		ShotCooldown:        500 * time.Millisecond,
		ShootingRange:       250,
		ProjectileSpeed:     10,
		ProjectileDamage:    10,
		CritChance:          0.05,
		CritMultiplier:      2,
	}
}

// Player is the singleton player entity.
type Player struct {
	BaseEntity
	Stats         PlayerStats
	MaxHealth     int
	CurrentHealth int

	// Invincible covers both the post-hit grace window and an active
	// shield powerup. While set, enemy contact and enemy projectiles
	// are filtered out before the narrow phase runs.
	Invincible      bool
	invincibleUntil time.Time

	MovementSpeed float64
	ShotCooldown  time.Duration
	lastShot      time.Time

	weaponBoostUntil time.Time
	speedBoostUntil  time.Time
	damageBoostUntil time.Time
	damageBoosted    bool

	// Hit flash state. While hidden, the real mask is parked in
	// visibleMask and the footprint is the transparent placeholder.
	flashHidden bool
	nextFlash   time.Time
	visibleMask *physics.Mask
}

// NewPlayer creates a player centered at the given position.
func NewPlayer(position physics.Vector2D, stats PlayerStats) *Player {
	return &Player{
		BaseEntity:    NewBaseEntity(position, stats.Width, stats.Height),
		Stats:         stats,
		MaxHealth:     stats.MaxHealth,
		CurrentHealth: stats.MaxHealth,
		MovementSpeed: stats.MovementSpeed,
		ShotCooldown:  stats.ShotCooldown,
	}
}

// Category identifies the player for query filtering.
func (p *Player) Category() Category {
	return CategoryPlayer
}

// TakeDamage applies damage unless the player is invincible, then opens
// the post-hit invincibility window. It returns true when this hit
// dropped the player to zero health.
func (p *Player) TakeDamage(amount int, now time.Time) bool {
	if p.Invincible {
		return false
	}
	p.CurrentHealth -= amount
	p.Invincible = true
	p.invincibleUntil = now.Add(p.Stats.InvincibilityWindow)
	p.nextFlash = now.Add(flashInterval)
	return p.CurrentHealth <= 0
}

// Heal restores health, clamped at the maximum.
func (p *Player) Heal(amount int) {
	p.CurrentHealth += amount
	if p.CurrentHealth > p.MaxHealth {
		p.CurrentHealth = p.MaxHealth
	}
}

// ActivateShield grants timed invincibility.
func (p *Player) ActivateShield(now time.Time, duration time.Duration) {
	p.Invincible = true
	until := now.Add(duration)
	if until.After(p.invincibleUntil) {
		p.invincibleUntil = until
	}
}

// ActivateWeaponBoost halves the shot cooldown for the given duration.
// Reapplying refreshes the timer without stacking.
func (p *Player) ActivateWeaponBoost(now time.Time, duration time.Duration) {
	p.ShotCooldown = p.Stats.ShotCooldown / 2
	p.weaponBoostUntil = now.Add(duration)
}

// ActivateSpeedBoost raises movement speed by half for the given
// duration. Reapplying refreshes the timer without stacking.
func (p *Player) ActivateSpeedBoost(now time.Time, duration time.Duration) {
	p.MovementSpeed = p.Stats.MovementSpeed * 1.5
	p.speedBoostUntil = now.Add(duration)
}

// ActivateDamageBoost doubles projectile damage for the given duration.
func (p *Player) ActivateDamageBoost(now time.Time, duration time.Duration) {
	p.damageBoosted = true
	p.damageBoostUntil = now.Add(duration)
}

// Update expires timed effects. Call once per frame before collision
// queries so Invincible reflects the current frame.
func (p *Player) Update(now time.Time) {
	if p.Invincible && now.After(p.invincibleUntil) {
		p.Invincible = false
	}
	if p.Invincible && !p.nextFlash.IsZero() && now.After(p.nextFlash) {
		p.setFlashHidden(!p.flashHidden)
		p.nextFlash = now.Add(flashInterval)
	}
	if !p.Invincible && !p.nextFlash.IsZero() {
		p.setFlashHidden(false)
		p.nextFlash = time.Time{}
	}
	if !p.weaponBoostUntil.IsZero() && now.After(p.weaponBoostUntil) {
		p.ShotCooldown = p.Stats.ShotCooldown
		p.weaponBoostUntil = time.Time{}
	}
	if !p.speedBoostUntil.IsZero() && now.After(p.speedBoostUntil) {
		p.MovementSpeed = p.Stats.MovementSpeed
		p.speedBoostUntil = time.Time{}
	}
	if p.damageBoosted && now.After(p.damageBoostUntil) {
		p.damageBoosted = false
	}
}

// Visible reports whether the hit flash currently shows the player.
// Renderers draw nothing while it is false.
func (p *Player) Visible() bool {
	return !p.flashHidden
}

// setFlashHidden swaps the footprint between the real mask and the
// transparent placeholder.
func (p *Player) setFlashHidden(hidden bool) {
	if hidden == p.flashHidden {
		return
	}
	p.flashHidden = hidden
	if hidden {
		p.visibleMask = p.Mask()
		p.SetMask(physics.PlaceholderMask())
	} else {
		p.SetMask(p.visibleMask)
		p.visibleMask = nil
	}
}

// ShootAt fires a projectile toward the target if the shot cooldown has
// elapsed and the target is within shooting range. Returns nil when no
// shot was taken.
func (p *Player) ShootAt(target physics.Vector2D, now time.Time) *Projectile {
	if now.Sub(p.lastShot) < p.ShotCooldown {
		return nil
	}

	direction := target.Sub(p.Position)
	distance := direction.Length()
	if distance == 0 || distance > p.Stats.ShootingRange {
		return nil
	}

	damage := p.Stats.ProjectileDamage
	if rand.Float64() < p.Stats.CritChance {
		damage *= p.Stats.CritMultiplier
	}
	if p.damageBoosted {
		damage *= 2
	}

	velocity := direction.Normalize().Scale(p.Stats.ProjectileSpeed)
	p.lastShot = now
	return NewProjectile(p.Position, velocity, damage, false)
}
