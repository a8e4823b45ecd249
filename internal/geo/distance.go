package geo

import (
	"math"

	"fire-monitor/internal/types"
)

// EarthRadiusMiles is the mean Earth radius used for all distance calculations.
const EarthRadiusMiles = 3958.8

// DistanceMiles returns the haversine great-circle distance between a and b in statute miles.
func DistanceMiles(a, b types.Coords) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h just past 1 near antipodes.
	h = math.Max(0, math.Min(1, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}
