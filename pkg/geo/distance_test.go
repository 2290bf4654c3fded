package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceKm(23.9769, 121.6044, 23.9769, 121.6044))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		assert.InDelta(t, 111.19, DistanceKm(23, 121, 24, 121), 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := DistanceKm(23.9769, 121.6044, 25.0330, 121.5654)
		b := DistanceKm(25.0330, 121.5654, 23.9769, 121.6044)
		assert.InDelta(t, a, b, 1e-9)
		// Хуалянь - Тайбэй, около 117 км по прямой
		assert.InDelta(t, 117.5, a, 1.5)
	})
}
