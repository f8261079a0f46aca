// pkg/collision/resolve.go
package collision

import (
	"time"

	"github.com/raythurman2386/draugrs-descent/pkg/entity"
)

// Outcome reports what a resolution handler did. Collided is false only
// when the handler decided the pair does not interact this frame;
// TargetDestroyed means the hit entity died or, for powerups, was
// consumed.
type Outcome struct {
	Collided        bool
	TargetDestroyed bool
}

// ResolveProjectileEnemy applies a player projectile hit to an enemy.
// The projectile is spent whether or not the enemy survives.
func ResolveProjectileEnemy(projectile *entity.Projectile, enemy *entity.Enemy) Outcome {
	projectile.Deactivate()
	destroyed := enemy.TakeDamage(projectile.Damage)
	return Outcome{Collided: true, TargetDestroyed: destroyed}
}

// ResolveEnemyProjectilePlayer applies an enemy projectile hit to the
// player. TakeDamage opens the player's invincibility window, so follow-up
// hits in the same burst are ignored until it closes.
func ResolveEnemyProjectilePlayer(player *entity.Player, projectile *entity.Projectile, now time.Time) Outcome {
	projectile.Deactivate()
	died := player.TakeDamage(projectile.Damage, now)
	return Outcome{Collided: true, TargetDestroyed: died}
}

// ResolvePlayerEnemy applies enemy contact damage to the player. An enemy
// still inside its contact cooldown deals no damage and the pair is
// treated as not colliding; otherwise the contact is recorded and the
// enemy's damage applied.
func ResolvePlayerEnemy(player *entity.Player, enemy *entity.Enemy, now time.Time) Outcome {
	if !enemy.CanCollide(now) {
		return Outcome{}
	}
	enemy.RecordCollision(now)
	died := player.TakeDamage(enemy.Damage, now)
	return Outcome{Collided: true, TargetDestroyed: died}
}

// ResolvePlayerPowerup applies a powerup to the player and consumes it.
// The query layer only reports active powerups, so this effectively
// always collides; TargetDestroyed mirrors the consumption.
func ResolvePlayerPowerup(player *entity.Player, powerup *entity.Powerup, now time.Time) Outcome {
	applied := powerup.Apply(player, now)
	return Outcome{Collided: applied, TargetDestroyed: applied}
}
