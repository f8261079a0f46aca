// cmd/sim/main.go
//
// sim runs a headless draugrs-descent session: enemies spawn at the
// playfield edges and pursue the player, the player auto-fires at the
// closest enemy, and the collision engine resolves every frame. It
// exists to exercise the full collision pipeline end to end and to
// compare broad-phase algorithms under identical load.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/collision"
	"github.com/raythurman2386/draugrs-descent/pkg/config"
	"github.com/raythurman2386/draugrs-descent/pkg/entity"
	"github.com/raythurman2386/draugrs-descent/pkg/event"
	"github.com/raythurman2386/draugrs-descent/pkg/logging"
	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

const (
	frameDuration  = 16 * time.Millisecond
	enemyShotSpeed = 6
	enemyShotRange = 300.0
	enemyShotEvery = 45 // frames
	pointsPerKill  = 10
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	frames := flag.Int("frames", 600, "Number of frames to simulate")
	algorithm := flag.String("algorithm", "", "Override the broad-phase algorithm (uniform_grid or quadtree)")
	seed := flag.Int64("seed", 1, "Random seed for spawning")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}
	if *algorithm != "" {
		gameConfig.Collision.Algorithm = *algorithm
	}

	bus := event.NewEventBus()
	engine, err := collision.NewEngine(gameConfig.EngineConfig(), bus, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create collision engine", err)
		os.Exit(1)
	}

	sim := &simulation{
		config: gameConfig,
		engine: engine,
		bus:    bus,
		logger: logger,
		rng:    rand.New(rand.NewSource(*seed)),
		area:   physics.NewRect(0, 0, gameConfig.Screen.Width, gameConfig.Screen.Height),
	}
	sim.subscribe()

	logger.Info(ctx, "Starting simulation",
		"algorithm", gameConfig.Collision.Algorithm,
		"frames", *frames,
		"screen_width", gameConfig.Screen.Width,
		"screen_height", gameConfig.Screen.Height,
	)

	sim.run(ctx, *frames)

	logger.Info(ctx, "Simulation finished",
		"frames_run", sim.frame,
		"enemies_destroyed", sim.kills,
		"powerups_collected", sim.powerupsCollected,
		"score", sim.score,
		"player_health", sim.player.CurrentHealth,
		"player_alive", sim.player.IsActive(),
	)
}

// simulation owns the live collections and the per-frame loop.
type simulation struct {
	config *config.GameConfig
	engine *collision.Engine
	bus    *event.Bus
	logger *logging.Logger
	rng    *rand.Rand
	area   physics.Rect

	player      *entity.Player
	enemies     []*entity.Enemy
	projectiles []*entity.Projectile
	powerups    []*entity.Powerup

	frame             int
	kills             int
	powerupsCollected int
	score             int
}

// subscribe wires the event bus counters. The collision engine and the
// resolution loop publish; nothing in the pipeline reads these back.
func (s *simulation) subscribe() {
	s.bus.Subscribe(event.EnemyDestroyed, func(event.Event) {
		s.kills++
		s.score += pointsPerKill
	})
	s.bus.Subscribe(event.PowerupCollected, func(event.Event) {
		s.powerupsCollected++
	})
}

func (s *simulation) run(ctx context.Context, frames int) {
	center := physics.Vector2D{
		X: float64(s.config.Screen.Width) / 2,
		Y: float64(s.config.Screen.Height) / 2,
	}
	s.player = entity.NewPlayer(center, entity.DefaultPlayerStats())

	start := time.Now()
	for s.frame = 0; s.frame < frames; s.frame++ {
		now := start.Add(time.Duration(s.frame) * frameDuration)
		s.step(ctx, now)
		if !s.player.IsActive() {
			return
		}
	}
}

// step advances the world one frame: move everything, rebuild the
// spatial index, run the four category queries against a snapshot, then
// resolve.
func (s *simulation) step(ctx context.Context, now time.Time) {
	s.spawnEnemies(now)

	s.player.Update(now)
	if target := entity.ClosestEnemy(s.player.Position, s.enemies); target != nil {
		if shot := s.player.ShootAt(target.Position, now); shot != nil {
			s.projectiles = append(s.projectiles, shot)
			s.bus.Publish(event.NewEntityEvent(event.ProjectileFired, s, shot.ID()))
		}
	}
	for _, enemy := range s.enemies {
		enemy.Update(s.player.Position)
	}
	s.enemyFire()

	for _, p := range s.projectiles {
		p.Update()
		if p.OutOfBounds(s.area) {
			p.Deactivate()
		}
	}
	for _, powerup := range s.powerups {
		if !powerup.IsActive() {
			continue
		}
		powerup.Update(now)
		if !powerup.IsActive() {
			s.bus.Publish(event.NewPowerupEvent(event.PowerupExpired, s, powerup.ID(), powerup.Kind.String()))
		}
	}

	s.engine.Rebuild(s.projectiles, s.enemies, s.player, s.powerups)

	// Snapshot all four queries before any resolution mutates state.
	projectileEnemy := s.engine.ProjectileEnemyHits(s.projectiles, s.enemies)
	enemyShots := s.engine.EnemyProjectilePlayerHits(s.player, s.projectiles)
	contacts := s.engine.PlayerEnemyHits(s.player, s.enemies)
	pickups := s.engine.PlayerPowerupHits(s.player, s.powerups)

	for _, shot := range s.projectiles {
		confirmed, ok := projectileEnemy[shot]
		if !ok {
			continue
		}
		for _, enemy := range confirmed {
			outcome := collision.ResolveProjectileEnemy(shot, enemy)
			if outcome.TargetDestroyed {
				enemy.Deactivate()
				s.bus.Publish(event.NewEntityEvent(event.EnemyDestroyed, s, enemy.ID()))
				s.maybeDropPowerup(enemy.Position, now)
			}
			if !shot.IsActive() {
				break
			}
		}
	}

	for _, shot := range enemyShots {
		outcome := collision.ResolveEnemyProjectilePlayer(s.player, shot, now)
		s.reportPlayerHit(ctx, outcome, now)
	}
	for _, enemy := range contacts {
		outcome := collision.ResolvePlayerEnemy(s.player, enemy, now)
		s.reportPlayerHit(ctx, outcome, now)
	}
	for _, powerup := range pickups {
		if outcome := collision.ResolvePlayerPowerup(s.player, powerup, now); outcome.Collided {
			s.bus.Publish(event.NewPowerupEvent(event.PowerupCollected, s, powerup.ID(), powerup.Kind.String()))
		}
	}

	s.compact()
}

func (s *simulation) reportPlayerHit(ctx context.Context, outcome collision.Outcome, now time.Time) {
	if !outcome.Collided {
		return
	}
	s.bus.Publish(event.NewEntityEvent(event.PlayerDamaged, s, s.player.ID()))
	if outcome.TargetDestroyed {
		s.player.Deactivate()
		s.bus.Publish(event.NewEntityEvent(event.PlayerDied, s, s.player.ID()))
		s.logger.Info(ctx, "Player died", "frame", s.frame)
	}
}

// spawnEnemies adds one enemy on a random playfield edge at the
// configured interval, up to the population cap.
func (s *simulation) spawnEnemies(now time.Time) {
	if s.frame%s.config.Spawn.EnemySpawnInterval != 0 {
		return
	}
	if s.aliveEnemies() >= s.config.Spawn.MaxEnemies {
		return
	}

	w := float64(s.config.Screen.Width)
	h := float64(s.config.Screen.Height)
	var pos physics.Vector2D
	switch s.rng.Intn(4) {
	case 0:
		pos = physics.Vector2D{X: s.rng.Float64() * w, Y: 0}
	case 1:
		pos = physics.Vector2D{X: s.rng.Float64() * w, Y: h}
	case 2:
		pos = physics.Vector2D{X: 0, Y: s.rng.Float64() * h}
	default:
		pos = physics.Vector2D{X: w, Y: s.rng.Float64() * h}
	}

	enemy := entity.NewEnemy(pos, entity.DefaultEnemyStats())
	s.enemies = append(s.enemies, enemy)
	s.bus.Publish(event.NewEntityEvent(event.EnemySpawned, s, enemy.ID()))
}

func (s *simulation) aliveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.IsActive() {
			n++
		}
	}
	return n
}

// enemyFire has the enemy nearest the player take a ranged shot on a
// fixed cadence, so the enemy-projectile query path sees real traffic.
func (s *simulation) enemyFire() {
	if s.frame == 0 || s.frame%enemyShotEvery != 0 {
		return
	}
	shooter := entity.ClosestEnemy(s.player.Position, s.enemies)
	if shooter == nil {
		return
	}
	if shooter.Position.Distance(s.player.Position) > enemyShotRange {
		return
	}

	direction := s.player.Position.Sub(shooter.Position).Normalize()
	shot := entity.NewProjectile(shooter.Position, direction.Scale(enemyShotSpeed), shooter.Damage, true)
	s.projectiles = append(s.projectiles, shot)
}

func (s *simulation) maybeDropPowerup(pos physics.Vector2D, now time.Time) {
	if s.rng.Float64() >= s.config.Spawn.PowerupDropChance {
		return
	}
	kind := entity.PowerupKind(s.rng.Intn(5))
	s.powerups = append(s.powerups, entity.NewPowerup(pos, kind, now, entity.DefaultPowerupStats()))
}

// compact drops deactivated entities from the live collections. The
// spatial index never sees them again after the next rebuild.
func (s *simulation) compact() {
	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.IsActive() {
			projectiles = append(projectiles, p)
		}
	}
	s.projectiles = projectiles

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsActive() {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies

	powerups := s.powerups[:0]
	for _, p := range s.powerups {
		if p.IsActive() {
			powerups = append(powerups, p)
		}
	}
	s.powerups = powerups
}
