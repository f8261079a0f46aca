// pkg/entity/entity.go
package entity

import (
	"image"

	"github.com/EngoEngine/ecs"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// Category classifies a collidable for query filtering. The spatial index
// itself is category-agnostic; only the collision engine's queries use it.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryPlayerProjectile
	CategoryEnemyProjectile
	CategoryPowerup
)

// String returns a human-readable category name for logging.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayerProjectile:
		return "player_projectile"
	case CategoryEnemyProjectile:
		return "enemy_projectile"
	case CategoryPowerup:
		return "powerup"
	}
	return "unknown"
}

// Collidable is the capability every object participating in collision
// detection must provide. The engine never inspects concrete types to
// decide behavior; everything it needs is here.
type Collidable interface {
	ecs.Identifier
	Bounds() physics.Rect
	Mask() *physics.Mask
	Category() Category
	IsActive() bool
}

// BaseEntity contains the state common to all game objects: identity,
// position, footprint size, active flag, and a lazily built opacity mask.
type BaseEntity struct {
	ecs.BasicEntity
	// Position is the precise center of the entity. Bounds truncates it
	// to integers, so sub-pixel movement accumulates here.
	Position physics.Vector2D
	Width    int
	Height   int
	Active   bool

	sprite image.Image
	mask   *physics.Mask
}

// NewBaseEntity creates an active entity centered at the given position
// with a fully opaque rectangular footprint.
func NewBaseEntity(position physics.Vector2D, width, height int) BaseEntity {
	return BaseEntity{
		BasicEntity: ecs.NewBasic(),
		Position:    position,
		Width:       width,
		Height:      height,
		Active:      true,
		mask:        physics.NewMask(width, height, true),
	}
}

// Bounds returns the entity's current integer bounding box, centered on
// its position.
func (e *BaseEntity) Bounds() physics.Rect {
	return physics.NewRect(0, 0, e.Width, e.Height).
		CenteredAt(int(e.Position.X), int(e.Position.Y))
}

// Mask returns the entity's opacity mask, rebuilding it from the current
// sprite if the cached one was invalidated. An entity with no sprite and
// no explicit mask degrades to the transparent placeholder and never
// collides.
func (e *BaseEntity) Mask() *physics.Mask {
	if e.mask == nil {
		e.mask = physics.MaskFromImage(e.sprite, physics.DefaultAlphaThreshold)
	}
	return e.mask
}

// SetSprite replaces the entity's visual footprint and invalidates the
// cached mask, which is rebuilt from the sprite's alpha channel on the
// next Mask call.
func (e *BaseEntity) SetSprite(img image.Image) {
	e.sprite = img
	e.mask = nil
}

// SetMask installs an explicit opacity mask, bypassing sprite derivation.
func (e *BaseEntity) SetMask(m *physics.Mask) {
	e.mask = m
}

// IsActive reports whether the entity still participates in collisions.
func (e *BaseEntity) IsActive() bool {
	return e.Active
}

// Deactivate permanently removes the entity from collision consideration.
// Removal from the owning collections is the caller's concern.
func (e *BaseEntity) Deactivate() {
	e.Active = false
}

// MoveTo places the entity's center at the given position.
func (e *BaseEntity) MoveTo(position physics.Vector2D) {
	e.Position = position
}
