package entity

import (
	"testing"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

func TestProjectile_Category(t *testing.T) {
	tests := []struct {
		name      string
		fromEnemy bool
		want      Category
	}{
		{"player owned", false, CategoryPlayerProjectile},
		{"enemy owned", true, CategoryEnemyProjectile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(physics.Vector2D{X: 100, Y: 100}, physics.Vector2D{}, 10, tt.fromEnemy)
			if got := p.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectile_Update(t *testing.T) {
	p := NewProjectile(physics.Vector2D{X: 100, Y: 100}, physics.Vector2D{X: 5, Y: -3}, 10, false)

	p.Update()
	p.Update()

	if p.Position.X != 110 || p.Position.Y != 94 {
		t.Errorf("Position after two updates = (%g, %g), want (110, 94)", p.Position.X, p.Position.Y)
	}

	// Bounds must track the new position.
	center := p.Bounds().Center()
	if center.X != 110 || center.Y != 94 {
		t.Errorf("Bounds center = (%g, %g), want (110, 94)", center.X, center.Y)
	}
}

func TestProjectile_SubPixelMovement(t *testing.T) {
	p := NewProjectile(physics.Vector2D{}, physics.Vector2D{X: 2.5, Y: 0}, 10, false)

	// Sub-pixel movement accumulates across frames.
	p.Update()
	p.Update()

	if p.Position.X != 5 {
		t.Errorf("Position X after two updates = %g, want 5", p.Position.X)
	}
}

func TestProjectile_OutOfBounds(t *testing.T) {
	area := physics.NewRect(0, 0, 800, 600)

	tests := []struct {
		name string
		pos  physics.Vector2D
		want bool
	}{
		{"center of area", physics.Vector2D{X: 400, Y: 300}, false},
		{"just inside edge", physics.Vector2D{X: 6, Y: 300}, false},
		{"left of area", physics.Vector2D{X: -20, Y: 300}, true},
		{"below area", physics.Vector2D{X: 400, Y: 650}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.pos, physics.Vector2D{}, 10, false)
			if got := p.OutOfBounds(area); got != tt.want {
				t.Errorf("OutOfBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}
