package geo

import (
	"math"
	"testing"

	"fire-monitor/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles(t *testing.T) {
	tests := []struct {
		name      string
		a         types.Coords
		b         types.Coords
		want      float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.NewCoords(39.11539, -107.6584),
			b:         types.NewCoords(39.11539, -107.6584),
			want:      0,
			tolerance: 0,
		},
		{
			name:      "one degree of latitude at the equator",
			a:         types.NewCoords(0, 0),
			b:         types.NewCoords(1, 0),
			want:      69.1,
			tolerance: 0.5,
		},
		{
			name:      "antipodal points",
			a:         types.NewCoords(0, 0),
			b:         types.NewCoords(0, 180),
			want:      math.Pi * EarthRadiusMiles,
			tolerance: 1e-6,
		},
		{
			name:      "pole to pole",
			a:         types.NewCoords(90, 0),
			b:         types.NewCoords(-90, 0),
			want:      math.Pi * EarthRadiusMiles,
			tolerance: 1e-6,
		},
		{
			name:      "Denver to Boulder",
			a:         types.NewCoords(39.7392, -104.9903),
			b:         types.NewCoords(40.0150, -105.2705),
			want:      24.0,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tolerance)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	points := []types.Coords{
		types.NewCoords(0, 0),
		types.NewCoords(40.0, -105.0),
		types.NewCoords(-33.8688, 151.2093),
		types.NewCoords(64.2008, -149.4937),
		types.NewCoords(-89.9, 179.9),
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, DistanceMiles(a, b), DistanceMiles(b, a), "a=%v b=%v", a, b)
		}
		assert.Equal(t, 0.0, DistanceMiles(a, a), "a=%v", a)
	}
}

func TestDistanceMiles_Antipodes(t *testing.T) {
	halfCircumference := math.Pi * EarthRadiusMiles

	for lat := -89.0; lat <= 89.0; lat += 0.37 {
		for lon := -180.0; lon < 0; lon += 1.0 {
			a := types.NewCoords(lat, lon)
			b := types.NewCoords(-lat, lon+180)

			got := DistanceMiles(a, b)
			if math.IsNaN(got) {
				t.Fatalf("DistanceMiles(%v, %v) = NaN", a, b)
			}
			assert.InDelta(t, halfCircumference, got, 1e-3, "a=%v b=%v", a, b)
		}
	}

	got := DistanceMiles(types.NewCoords(-86.78, -179), types.NewCoords(86.78, 1))
	assert.False(t, math.IsNaN(got))
	assert.InDelta(t, halfCircumference, got, 1e-3)
}
