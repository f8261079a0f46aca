// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/raythurman2386/draugrs-descent/pkg/collision"
)

// GameConfig contains configuration for a draugrs-descent run.
type GameConfig struct {
	Screen    ScreenConfig    `json:"screen"`
	Collision CollisionConfig `json:"collision"`
	Spawn     SpawnConfig     `json:"spawn"`
}

// ScreenConfig describes the playfield dimensions in pixels.
type ScreenConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CollisionConfig selects and tunes the broad-phase structure.
type CollisionConfig struct {
	Algorithm         string `json:"algorithm"`
	CellSize          int    `json:"cellSize"`
	MaxObjectsPerNode int    `json:"maxObjectsPerNode"`
	MaxLevels         int    `json:"maxLevels"`
}

// SpawnConfig tunes the simulation's entity churn.
type SpawnConfig struct {
	MaxEnemies         int     `json:"maxEnemies"`
	EnemySpawnInterval int     `json:"enemySpawnInterval"`
	PowerupDropChance  float64 `json:"powerupDropChance"`
}

// LoadConfig loads a configuration from a file and applies any
// environment overrides on top of it.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves a configuration to a file.
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock run configuration: the uniform grid
// over an 800x600 playfield.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Collision: CollisionConfig{
			Algorithm:         string(collision.AlgorithmUniformGrid),
			CellSize:          64,
			MaxObjectsPerNode: 10,
			MaxLevels:         5,
		},
		Spawn: SpawnConfig{
			MaxEnemies:         40,
			EnemySpawnInterval: 30,
			PowerupDropChance:  0.25,
		},
	}
}

// Validate checks the configuration for values that would only fail
// later and deeper in the stack.
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d",
			c.Screen.Width, c.Screen.Height)
	}
	if c.Spawn.MaxEnemies < 0 {
		return fmt.Errorf("max enemies must not be negative, got %d", c.Spawn.MaxEnemies)
	}
	if c.Spawn.EnemySpawnInterval <= 0 {
		return fmt.Errorf("enemy spawn interval must be positive, got %d", c.Spawn.EnemySpawnInterval)
	}
	if c.Spawn.PowerupDropChance < 0 || c.Spawn.PowerupDropChance > 1 {
		return fmt.Errorf("powerup drop chance must be in [0, 1], got %g", c.Spawn.PowerupDropChance)
	}
	return c.EngineConfig().Validate()
}

// EngineConfig converts the screen and collision sections into the
// collision engine's construction options.
func (c *GameConfig) EngineConfig() collision.Config {
	return collision.Config{
		ScreenWidth:       c.Screen.Width,
		ScreenHeight:      c.Screen.Height,
		Algorithm:         collision.Algorithm(c.Collision.Algorithm),
		CellSize:          c.Collision.CellSize,
		MaxObjectsPerNode: c.Collision.MaxObjectsPerNode,
		MaxLevels:         c.Collision.MaxLevels,
	}
}

// applyEnvOverrides lets deployment environments switch collision
// parameters without editing the config file.
func (c *GameConfig) applyEnvOverrides() {
	if v := os.Getenv("DRAUGRS_COLLISION_ALGORITHM"); v != "" {
		c.Collision.Algorithm = v
	}
	if v := os.Getenv("DRAUGRS_CELL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Collision.CellSize = n
		}
	}
}
