package engo

import (
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestBarLength(t *testing.T) {
	tests := []struct {
		fraction float64
		expected float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 75},
		{1, 150},
		{1.5, 150},
	}

	for _, tt := range tests {
		if got := barLength(tt.fraction, hudBarWidth); got != tt.expected {
			t.Errorf("barLength(%v) = %v, expected %v", tt.fraction, got, tt.expected)
		}
	}
}

func TestGaugeFractions(t *testing.T) {
	t.Run("no_ship", func(t *testing.T) {
		fuel, lives := gaugeFractions(nil)
		if fuel != 0 || lives != 0 {
			t.Errorf("gaugeFractions(nil) = (%v, %v), expected (0, 0)", fuel, lives)
		}
	})

	t.Run("new_ship", func(t *testing.T) {
		fuel, lives := gaugeFractions(entity.NewSpaceship(physics.Vector2D{}))
		if fuel != 1 || lives != 1 {
			t.Errorf("gaugeFractions() = (%v, %v), expected full gauges", fuel, lives)
		}
	})
}
