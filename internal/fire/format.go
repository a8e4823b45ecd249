package fire

import "math"

// Format turns a ProximityResult into NarrativeFacts. Whole-number values are rounded
// to the nearest unit; plural flags say whether the rendered number is anything but one.
func Format(result ProximityResult) NarrativeFacts {
	facts := NarrativeFacts{
		NearbyCount:  result.NearbyCount,
		NearbyPlural: result.NearbyCount != 1,
		Delta: DirectionalDelta{
			Direction: DirectionUnchanged,
			Plural:    true,
		},
	}

	incident := result.ClosestIncident
	if incident == nil {
		return facts
	}

	name := incident.Name
	distance := int(math.Round(result.ClosestDistanceMiles))

	facts.HasIncident = true
	facts.IncidentName = &name
	if incident.City != nil {
		city := *incident.City
		facts.City = &city
	}
	facts.DistanceMiles = distance
	facts.DistancePlural = distance != 1
	facts.Acres = int(math.Round(incident.DailyAcres))
	// Matches the spoken form "1 acre" only for exactly one acre, not for values rounding to one
	facts.AcresPlural = incident.DailyAcres != 1
	facts.PercentContained = int(math.Round(incident.PercentContained))
	facts.Delta = formatDelta(result.DistanceDeltaMiles)

	return facts
}

func formatDelta(delta float64) DirectionalDelta {
	magnitude := int(math.Round(math.Abs(delta)))

	direction := DirectionUnchanged
	switch {
	case magnitude == 0:
	case delta > 0:
		direction = DirectionFarther
	case delta < 0:
		direction = DirectionCloser
	}

	return DirectionalDelta{
		Direction: direction,
		Magnitude: magnitude,
		Plural:    magnitude != 1,
	}
}
