// pkg/collision/engine.go

// Package collision combines broad-phase spatial culling with mask-based
// narrow-phase confirmation. The engine is rebuilt from the live object
// collections once per frame and then queried once per collision
// category; it only observes entities and never mutates collection
// membership.
package collision

import (
	"context"
	"fmt"

	"github.com/raythurman2386/draugrs-descent/pkg/entity"
	"github.com/raythurman2386/draugrs-descent/pkg/event"
	"github.com/raythurman2386/draugrs-descent/pkg/logging"
	"github.com/raythurman2386/draugrs-descent/pkg/physics"
	"github.com/raythurman2386/draugrs-descent/pkg/spatial"
)

// Algorithm selects the broad-phase structure. The choice is fixed at
// construction; both satisfy the same contract so the engine is agnostic.
type Algorithm string

const (
	// AlgorithmUniformGrid is the default: O(1) amortized insert and
	// retrieve for uniformly distributed small objects.
	AlgorithmUniformGrid Algorithm = "uniform_grid"
	// AlgorithmQuadTree adapts better to clustered or very sparse
	// distributions at a higher constant cost.
	AlgorithmQuadTree Algorithm = "quadtree"
)

// Config contains the construction-time options for an Engine.
type Config struct {
	ScreenWidth  int       `json:"screenWidth"`
	ScreenHeight int       `json:"screenHeight"`
	Algorithm    Algorithm `json:"algorithm"`
	// CellSize is the grid cell edge length; only meaningful for the
	// uniform grid.
	CellSize int `json:"cellSize"`
	// MaxObjectsPerNode and MaxLevels bound quadtree subdivision; only
	// meaningful for the quadtree.
	MaxObjectsPerNode int `json:"maxObjectsPerNode"`
	MaxLevels         int `json:"maxLevels"`
}

// DefaultConfig returns the stock engine options: the uniform grid with
// 64-pixel cells over an 800x600 region.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		Algorithm:         AlgorithmUniformGrid,
		CellSize:          64,
		MaxObjectsPerNode: 10,
		MaxLevels:         5,
	}
}

// Validate rejects configurations that are programmer errors. Invalid
// values fail fast here rather than being silently clamped.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d",
			c.ScreenWidth, c.ScreenHeight)
	}
	switch c.Algorithm {
	case AlgorithmUniformGrid:
		if c.CellSize <= 0 {
			return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
		}
	case AlgorithmQuadTree:
		if c.MaxObjectsPerNode <= 0 {
			return fmt.Errorf("max objects per node must be positive, got %d", c.MaxObjectsPerNode)
		}
		if c.MaxLevels <= 0 {
			return fmt.Errorf("max levels must be positive, got %d", c.MaxLevels)
		}
	default:
		return fmt.Errorf("unknown collision algorithm %q", c.Algorithm)
	}
	return nil
}

// Engine owns the per-frame spatial index and the category-specific
// collision queries. Collaborators arrive by injection; the engine holds
// no ambient global state.
type Engine struct {
	config  Config
	index   spatial.Index
	bus     *event.Bus
	log     *logging.Logger
	rebuilt bool
}

// NewEngine creates an engine from a validated configuration. The event
// bus is optional: when nil no collision events are published. A nil
// logger falls back to the default.
func NewEngine(cfg Config, bus *event.Bus, logger *logging.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collision config: %w", err)
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	var index spatial.Index
	var err error
	switch cfg.Algorithm {
	case AlgorithmUniformGrid:
		index, err = spatial.NewUniformGrid(cfg.CellSize)
	case AlgorithmQuadTree:
		bounds := physics.NewRect(0, 0, cfg.ScreenWidth, cfg.ScreenHeight)
		index, err = spatial.NewQuadTree(bounds, cfg.MaxObjectsPerNode, cfg.MaxLevels)
	}
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg,
		index:  index,
		bus:    bus,
		log:    logger,
	}, nil
}

// Rebuild clears the spatial index and reinserts every active member of
// the four live collections plus the player. Call once per frame after
// entities have moved; calling again in the same frame simply replaces
// the snapshot.
func (e *Engine) Rebuild(projectiles []*entity.Projectile, enemies []*entity.Enemy, player *entity.Player, powerups []*entity.Powerup) {
	e.index.Clear()

	inserted := 0
	for _, p := range projectiles {
		if p.IsActive() {
			e.index.Insert(p)
			inserted++
		}
	}
	for _, enemy := range enemies {
		if enemy.IsActive() {
			e.index.Insert(enemy)
			inserted++
		}
	}
	for _, powerup := range powerups {
		if powerup.IsActive() {
			e.index.Insert(powerup)
			inserted++
		}
	}
	if player != nil && player.IsActive() {
		e.index.Insert(player)
		inserted++
	}

	e.rebuilt = true
	e.log.Debug(context.Background(), "spatial index rebuilt",
		"algorithm", string(e.config.Algorithm),
		"objects", inserted,
	)
}

// ProjectileEnemyHits returns, for each player-owned projectile, the
// enemies it currently overlaps. Projectiles with no confirmed hits are
// absent from the map. Enemy-owned projectiles never hit enemies.
func (e *Engine) ProjectileEnemyHits(projectiles []*entity.Projectile, enemies []*entity.Enemy) map[*entity.Projectile][]*entity.Enemy {
	if !e.rebuilt {
		return nil
	}

	hits := make(map[*entity.Projectile][]*entity.Enemy)
	for _, p := range projectiles {
		if !p.IsActive() || p.Category() != entity.CategoryPlayerProjectile {
			continue
		}

		candidates := e.candidateIDs(p)
		var confirmed []*entity.Enemy
		for _, enemy := range enemies {
			if !enemy.IsActive() {
				continue
			}
			if _, ok := candidates[enemy.ID()]; !ok {
				continue
			}
			if physics.MasksOverlap(p, enemy) {
				confirmed = append(confirmed, enemy)
				e.publishCollision(p, enemy)
			}
		}
		if len(confirmed) > 0 {
			hits[p] = confirmed
		}
	}
	return hits
}

// EnemyProjectilePlayerHits returns the enemy-owned projectiles that
// currently overlap the player. The check is skipped entirely while the
// player is invincible.
func (e *Engine) EnemyProjectilePlayerHits(player *entity.Player, projectiles []*entity.Projectile) []*entity.Projectile {
	if !e.rebuilt || player == nil || !player.IsActive() || player.Invincible {
		return nil
	}

	candidates := e.candidateIDs(player)
	var confirmed []*entity.Projectile
	for _, p := range projectiles {
		if !p.IsActive() || p.Category() != entity.CategoryEnemyProjectile {
			continue
		}
		if _, ok := candidates[p.ID()]; !ok {
			continue
		}
		if physics.MasksOverlap(player, p) {
			confirmed = append(confirmed, p)
			e.publishCollision(p, player)
		}
	}
	return confirmed
}

// PlayerEnemyHits returns the enemies currently overlapping the player.
// The check is skipped entirely while the player is invincible.
func (e *Engine) PlayerEnemyHits(player *entity.Player, enemies []*entity.Enemy) []*entity.Enemy {
	if !e.rebuilt || player == nil || !player.IsActive() || player.Invincible {
		return nil
	}

	candidates := e.candidateIDs(player)
	var confirmed []*entity.Enemy
	for _, enemy := range enemies {
		if !enemy.IsActive() {
			continue
		}
		if _, ok := candidates[enemy.ID()]; !ok {
			continue
		}
		if physics.MasksOverlap(player, enemy) {
			confirmed = append(confirmed, enemy)
			e.publishCollision(player, enemy)
		}
	}
	return confirmed
}

// PlayerPowerupHits returns the active powerups currently overlapping the
// player. Consumed powerups that are still present in the collection are
// never reported again.
func (e *Engine) PlayerPowerupHits(player *entity.Player, powerups []*entity.Powerup) []*entity.Powerup {
	if !e.rebuilt || player == nil || !player.IsActive() {
		return nil
	}

	candidates := e.candidateIDs(player)
	var confirmed []*entity.Powerup
	for _, powerup := range powerups {
		if !powerup.IsActive() {
			continue
		}
		if _, ok := candidates[powerup.ID()]; !ok {
			continue
		}
		if physics.MasksOverlap(player, powerup) {
			confirmed = append(confirmed, powerup)
			e.publishCollision(player, powerup)
		}
	}
	return confirmed
}

// candidateIDs runs the broad phase for one object and returns the
// identities of everything that could overlap it. Results are then
// re-walked in collection order so query output is deterministic.
func (e *Engine) candidateIDs(item spatial.Item) map[uint64]struct{} {
	candidates := e.index.Retrieve(item)
	ids := make(map[uint64]struct{}, len(candidates))
	for _, c := range candidates {
		ids[c.ID()] = struct{}{}
	}
	return ids
}

func (e *Engine) publishCollision(a, b entity.Collidable) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(event.NewCollisionEvent(e, a.ID(), b.ID(),
		a.Category().String(), b.Category().String()))
}
