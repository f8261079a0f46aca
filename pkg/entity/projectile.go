// pkg/entity/projectile.go
package entity

import (
	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// Projectile dimensions match the original footprint: small enough that
// the broad phase dominates the cost of tracking them.
const (
	projectileWidth  = 10
	projectileHeight = 10
)

// Projectile is a single-use bullet owned by either side. Ownership
// decides its category: player projectiles only ever hit enemies, enemy
// projectiles only ever hit the player.
type Projectile struct {
	BaseEntity
	Damage    int
	Velocity  physics.Vector2D
	FromEnemy bool
}

// NewProjectile creates a projectile at the given position moving with
// the given per-frame velocity.
func NewProjectile(position, velocity physics.Vector2D, damage int, fromEnemy bool) *Projectile {
	return &Projectile{
		BaseEntity: NewBaseEntity(position, projectileWidth, projectileHeight),
		Damage:     damage,
		Velocity:   velocity,
		FromEnemy:  fromEnemy,
	}
}

// Category identifies the projectile's owning side.
func (p *Projectile) Category() Category {
	if p.FromEnemy {
		return CategoryEnemyProjectile
	}
	return CategoryPlayerProjectile
}

// Update advances the projectile by its velocity.
func (p *Projectile) Update() {
	p.Position = p.Position.Add(p.Velocity)
}

// OutOfBounds reports whether the projectile has fully left the given
// area. Callers deactivate and remove such projectiles.
func (p *Projectile) OutOfBounds(area physics.Rect) bool {
	return !p.Bounds().Intersects(area)
}
