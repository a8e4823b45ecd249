package fire

import (
	"cmp"
	"math"
	"slices"

	"fire-monitor/internal/geo"
	"fire-monitor/internal/types"
)

// Resolve finds the eligible incident nearest to caller and derives its metrics.
// Every eligible incident within NearbyRadiusMiles is counted, not only the closest.
// Ties keep the incident seen first. With no eligible incident the zero result is returned.
func Resolve(caller types.Coords, incidents []Incident) ProximityResult {
	var (
		closest         *Incident
		closestDistance = math.Inf(1)
		nearby          int
	)

	for i := range incidents {
		incident := &incidents[i]
		if !incident.Eligible() {
			continue
		}

		d := geo.DistanceMiles(incident.Location, caller)
		if closest == nil || d < closestDistance {
			closest = incident
			closestDistance = d
		}
		if d <= NearbyRadiusMiles {
			nearby++
		}
	}

	if closest == nil {
		return ProximityResult{}
	}

	// Copy so the result does not alias the caller's slice
	selected := *closest
	ignitionDistance := geo.DistanceMiles(selected.IgnitionPoint(), caller)

	return ProximityResult{
		ClosestIncident:       &selected,
		ClosestDistanceMiles:  closestDistance,
		IgnitionDistanceMiles: ignitionDistance,
		NearbyCount:           nearby,
		DistanceDeltaMiles:    math.Round(closestDistance) - math.Round(ignitionDistance),
	}
}

// WithinRadius returns the eligible incidents no farther than radiusMiles from caller,
// nearest first. Equal distances keep feed order.
func WithinRadius(caller types.Coords, incidents []Incident, radiusMiles float64) []NearbyIncident {
	nearby := make([]NearbyIncident, 0)
	for _, incident := range incidents {
		if !incident.Eligible() {
			continue
		}
		d := geo.DistanceMiles(incident.Location, caller)
		if d <= radiusMiles {
			nearby = append(nearby, NearbyIncident{Incident: incident, DistanceMiles: d})
		}
	}

	slices.SortStableFunc(nearby, func(a, b NearbyIncident) int {
		return cmp.Compare(a.DistanceMiles, b.DistanceMiles)
	})

	return nearby
}
