// pkg/entity/enemy.go
package entity

import (
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// EnemyStats contains the base attributes an enemy is created with.
type EnemyStats struct {
	Width           int
	Height          int
	MaxHealth       int
	Damage          int
	Speed           float64
	ContactCooldown time.Duration
}

// DefaultEnemyStats returns the stock enemy attributes.
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
		Width:           30,
		Height:          30,
		MaxHealth:       30,
		Damage:          10,
		Speed:           2,
		ContactCooldown: time.Second,
	}
}

// Enemy is a hostile entity that pursues the player and deals repeatable
// contact damage gated by its own per-entity cooldown.
type Enemy struct {
	BaseEntity
	Stats         EnemyStats
	MaxHealth     int
	CurrentHealth int
	Damage        int

	lastContact time.Time
}

// NewEnemy creates an enemy centered at the given position.
func NewEnemy(position physics.Vector2D, stats EnemyStats) *Enemy {
	return &Enemy{
		BaseEntity:    NewBaseEntity(position, stats.Width, stats.Height),
		Stats:         stats,
		MaxHealth:     stats.MaxHealth,
		CurrentHealth: stats.MaxHealth,
		Damage:        stats.Damage,
	}
}

// Category identifies enemies for query filtering.
func (e *Enemy) Category() Category {
	return CategoryEnemy
}

// TakeDamage applies damage and returns true when it dropped the enemy
// to zero health.
func (e *Enemy) TakeDamage(amount int) bool {
	e.CurrentHealth -= amount
	return e.CurrentHealth <= 0
}

// CanCollide reports whether the enemy's contact-damage cooldown has
// elapsed. Contact damage is repeatable; this gate is the only limiter.
func (e *Enemy) CanCollide(now time.Time) bool {
	return e.lastContact.IsZero() || now.Sub(e.lastContact) >= e.Stats.ContactCooldown
}

// RecordCollision starts the contact-damage cooldown.
func (e *Enemy) RecordCollision(now time.Time) {
	e.lastContact = now
}

// Update moves the enemy one step toward the target position.
func (e *Enemy) Update(target physics.Vector2D) {
	direction := target.Sub(e.Position)
	if direction.Length() == 0 {
		return
	}
	e.Position = e.Position.Add(direction.Normalize().Scale(e.Stats.Speed))
}

// ClosestEnemy returns the active enemy nearest to the given position, or
// nil when none qualifies.
func ClosestEnemy(pos physics.Vector2D, enemies []*Enemy) *Enemy {
	var closest *Enemy
	best := 0.0
	for _, enemy := range enemies {
		if !enemy.IsActive() {
			continue
		}
		d := pos.Distance(enemy.Position)
		if closest == nil || d < best {
			closest = enemy
			best = d
		}
	}
	return closest
}
