// pkg/entity/player_test.go
package entity

import (
	"testing"
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

func TestNewPlayer(t *testing.T) {
	stats := DefaultPlayerStats()
	player := NewPlayer(physics.Vector2D{X: 400, Y: 300}, stats)

	if player.CurrentHealth != stats.MaxHealth {
		t.Errorf("new player health = %d, expected %d", player.CurrentHealth, stats.MaxHealth)
	}
	if player.Invincible {
		t.Error("new player must not start invincible")
	}
	if !player.IsActive() {
		t.Error("new player must start active")
	}
	if player.Category() != CategoryPlayer {
		t.Errorf("player category = %v, expected %v", player.Category(), CategoryPlayer)
	}

	bounds := player.Bounds()
	if bounds.Width != stats.Width || bounds.Height != stats.Height {
		t.Errorf("player bounds %v do not match stats size %dx%d", bounds, stats.Width, stats.Height)
	}
}

func TestPlayer_TakeDamage(t *testing.T) {
	now := time.Now()

	t.Run("applies_damage_and_opens_grace_window", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())

		died := player.TakeDamage(30, now)

		if died {
			t.Error("player should survive 30 damage at full health")
		}
		if player.CurrentHealth != 70 {
			t.Errorf("player health = %d, expected 70", player.CurrentHealth)
		}
		if !player.Invincible {
			t.Error("taking damage must open the invincibility window")
		}
	})

	t.Run("no_damage_while_invincible", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())
		player.TakeDamage(30, now)

		died := player.TakeDamage(30, now)

		if died || player.CurrentHealth != 70 {
			t.Errorf("invincible player took damage, health = %d", player.CurrentHealth)
		}
	})

	t.Run("window_expires", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())
		player.TakeDamage(30, now)

		player.Update(now.Add(player.Stats.InvincibilityWindow + time.Millisecond))

		if player.Invincible {
			t.Error("invincibility window did not expire")
		}
	})

	t.Run("lethal_hit", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())

		died := player.TakeDamage(player.MaxHealth, now)

		if !died {
			t.Error("damage equal to max health must kill")
		}
	})
}

func TestPlayer_Heal(t *testing.T) {
	player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())
	player.CurrentHealth = 50

	player.Heal(30)
	if player.CurrentHealth != 80 {
		t.Errorf("player health = %d, expected 80", player.CurrentHealth)
	}

	// Clamped at max
	player.Heal(100)
	if player.CurrentHealth != player.MaxHealth {
		t.Errorf("player health = %d, expected clamp at %d", player.CurrentHealth, player.MaxHealth)
	}
}

func TestPlayer_Shield(t *testing.T) {
	now := time.Now()
	player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())

	player.ActivateShield(now, 5*time.Second)

	if !player.Invincible {
		t.Error("shield must make the player invincible")
	}

	player.Update(now.Add(4 * time.Second))
	if !player.Invincible {
		t.Error("shield expired early")
	}

	player.Update(now.Add(5*time.Second + time.Millisecond))
	if player.Invincible {
		t.Error("shield did not expire")
	}
}

func TestPlayer_WeaponBoost(t *testing.T) {
	now := time.Now()
	player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())
	base := player.Stats.ShotCooldown

	player.ActivateWeaponBoost(now, 5*time.Second)

	if player.ShotCooldown != base/2 {
		t.Errorf("boosted cooldown = %v, expected %v", player.ShotCooldown, base/2)
	}

	// Reapplying must not stack below half
	player.ActivateWeaponBoost(now.Add(time.Second), 5*time.Second)
	if player.ShotCooldown != base/2 {
		t.Errorf("stacked cooldown = %v, expected %v", player.ShotCooldown, base/2)
	}

	player.Update(now.Add(7 * time.Second))
	if player.ShotCooldown != base {
		t.Errorf("cooldown after boost = %v, expected %v", player.ShotCooldown, base)
	}
}

func TestPlayer_SpeedBoost(t *testing.T) {
	now := time.Now()
	player := NewPlayer(physics.Vector2D{}, DefaultPlayerStats())
	base := player.Stats.MovementSpeed

	player.ActivateSpeedBoost(now, 5*time.Second)
	if player.MovementSpeed != base*1.5 {
		t.Errorf("boosted speed = %v, expected %v", player.MovementSpeed, base*1.5)
	}

	player.Update(now.Add(6 * time.Second))
	if player.MovementSpeed != base {
		t.Errorf("speed after boost = %v, expected %v", player.MovementSpeed, base)
	}
}

func TestPlayer_ShootAt(t *testing.T) {
	now := time.Now()

	t.Run("fires_within_range", func(t *testing.T) {
		stats := DefaultPlayerStats()
		stats.CritChance = 0 // deterministic damage
		player := NewPlayer(physics.Vector2D{X: 100, Y: 100}, stats)

		projectile := player.ShootAt(physics.Vector2D{X: 200, Y: 100}, now)

		if projectile == nil {
			t.Fatal("expected a projectile within shooting range")
		}
		if projectile.FromEnemy {
			t.Error("player projectile marked as enemy-owned")
		}
		if projectile.Damage != stats.ProjectileDamage {
			t.Errorf("projectile damage = %d, expected %d", projectile.Damage, stats.ProjectileDamage)
		}
		if projectile.Velocity.X <= 0 || projectile.Velocity.Y != 0 {
			t.Errorf("projectile velocity %v not aimed at target", projectile.Velocity)
		}
	})

	t.Run("respects_cooldown", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{X: 100, Y: 100}, DefaultPlayerStats())
		target := physics.Vector2D{X: 200, Y: 100}

		if player.ShootAt(target, now) == nil {
			t.Fatal("first shot should fire")
		}
		if player.ShootAt(target, now.Add(time.Millisecond)) != nil {
			t.Error("second shot inside cooldown should not fire")
		}
		if player.ShootAt(target, now.Add(player.ShotCooldown+time.Millisecond)) == nil {
			t.Error("shot after cooldown should fire")
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		player := NewPlayer(physics.Vector2D{X: 0, Y: 0}, DefaultPlayerStats())

		if player.ShootAt(physics.Vector2D{X: 10000, Y: 0}, now) != nil {
			t.Error("shot at out-of-range target should not fire")
		}
	})

	t.Run("damage_boost_doubles", func(t *testing.T) {
		stats := DefaultPlayerStats()
		stats.CritChance = 0
		player := NewPlayer(physics.Vector2D{X: 0, Y: 0}, stats)
		player.ActivateDamageBoost(now, 5*time.Second)

		projectile := player.ShootAt(physics.Vector2D{X: 50, Y: 0}, now)

		if projectile == nil {
			t.Fatal("expected a projectile")
		}
		if projectile.Damage != stats.ProjectileDamage*2 {
			t.Errorf("boosted damage = %d, expected %d", projectile.Damage, stats.ProjectileDamage*2)
		}
	})
}

func TestPlayer_HitFlash(t *testing.T) {
	now := time.Now()
	player := NewPlayer(physics.Vector2D{X: 100, Y: 100}, DefaultPlayerStats())

	player.TakeDamage(10, now)
	if !player.Visible() {
		t.Error("flash should start in the visible phase")
	}

	player.Update(now.Add(150 * time.Millisecond))
	if player.Visible() {
		t.Error("player should be hidden after the first flash interval")
	}
	if !player.Mask().Empty() {
		t.Error("hidden phase should leave a transparent footprint")
	}

	player.Update(now.Add(301 * time.Millisecond))
	if !player.Visible() {
		t.Error("player should reappear on the next flash interval")
	}
	if player.Mask().Empty() {
		t.Error("visible phase should restore the opaque footprint")
	}
}

func TestPlayer_HitFlashEndsWithInvincibility(t *testing.T) {
	now := time.Now()
	player := NewPlayer(physics.Vector2D{X: 100, Y: 100}, DefaultPlayerStats())

	player.TakeDamage(10, now)
	player.Update(now.Add(150 * time.Millisecond))
	if player.Visible() {
		t.Fatal("expected the hidden flash phase")
	}

	// The window closes while the flash is mid-hidden; the footprint
	// must come back with it.
	player.Update(now.Add(player.Stats.InvincibilityWindow + 200*time.Millisecond))
	if player.Invincible {
		t.Error("invincibility should have expired")
	}
	if !player.Visible() {
		t.Error("flash should end with the invincibility window")
	}
	if player.Mask().Empty() {
		t.Error("footprint should be opaque again after the flash ends")
	}
}
