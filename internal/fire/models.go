package fire

import (
	"fmt"
	"strings"
	"time"

	"fire-monitor/internal/types"
)

// NearbyRadiusMiles bounds the "uncontained fires within N miles" count.
const NearbyRadiusMiles = 50.0

// Behavior is the general fire behavior reported for an incident.
type Behavior int

const (
	BehaviorOther Behavior = iota
	BehaviorMinimal
	BehaviorModerate
	BehaviorActive
	BehaviorExtreme
)

// ParseBehavior converts a FireBehaviorGeneral value. Unknown and empty values are BehaviorOther.
func ParseBehavior(s string) Behavior {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return BehaviorMinimal
	case "moderate":
		return BehaviorModerate
	case "active":
		return BehaviorActive
	case "extreme":
		return BehaviorExtreme
	default:
		return BehaviorOther
	}
}

func (b Behavior) String() string {
	switch b {
	case BehaviorMinimal:
		return "Minimal"
	case BehaviorModerate:
		return "Moderate"
	case BehaviorActive:
		return "Active"
	case BehaviorExtreme:
		return "Extreme"
	case BehaviorOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown (%d)", int(b))
	}
}

// Incident is a normalized wildfire incident. Missing acreage and containment are 0.
type Incident struct {
	ID               string
	Name             string
	City             *string
	Location         types.Coords
	Ignition         *types.Coords
	DailyAcres       float64
	PercentContained float64
	Behavior         Behavior
}

// Eligible reports whether the incident is uncontained with a recognized behavior.
func (i Incident) Eligible() bool {
	return i.PercentContained != 100 && i.Behavior != BehaviorOther
}

// IgnitionPoint returns the initial reported location, or the current one when unknown.
func (i Incident) IgnitionPoint() types.Coords {
	if i.Ignition != nil {
		return *i.Ignition
	}
	return i.Location
}

// ProximityResult is the nearest eligible incident to a caller and its derived metrics.
type ProximityResult struct {
	ClosestIncident       *Incident
	ClosestDistanceMiles  float64
	IgnitionDistanceMiles float64
	NearbyCount           int
	// DistanceDeltaMiles is round(closest) - round(ignition); positive means the fire moved away.
	DistanceDeltaMiles float64
}

// Direction of travel since ignition, relative to the caller.
type Direction string

const (
	DirectionFarther   Direction = "farther"
	DirectionCloser    Direction = "closer"
	DirectionUnchanged Direction = "unchanged"
)

type DirectionalDelta struct {
	Direction Direction `json:"direction" enums:"farther,closer,unchanged"`
	Magnitude int       `json:"magnitude" minimum:"0"`
	Plural    bool      `json:"plural"`
}

// NarrativeFacts are the language-agnostic facts a boundary layer renders into a reply.
type NarrativeFacts struct {
	NearbyCount      int              `json:"nearby_count"`
	NearbyPlural     bool             `json:"nearby_plural"`
	HasIncident      bool             `json:"has_incident"`
	IncidentName     *string          `json:"incident_name"`
	City             *string          `json:"city"`
	DistanceMiles    int              `json:"distance_miles"`
	DistancePlural   bool             `json:"distance_plural"`
	Acres            int              `json:"acres"`
	AcresPlural      bool             `json:"acres_plural"`
	PercentContained int              `json:"percent_contained"`
	Delta            DirectionalDelta `json:"delta"`
}

// Report is the outcome of a nearest-fire lookup for one postal code.
type Report struct {
	Location    types.ResolvedLocation
	Timezone    string
	RetrievedAt time.Time
	Result      ProximityResult
	Facts       NarrativeFacts
}

// NearbyIncident is an eligible incident with its distance to the caller.
type NearbyIncident struct {
	Incident      Incident
	DistanceMiles float64
}

// NearbyReport lists eligible incidents within a radius, nearest first.
type NearbyReport struct {
	Location    types.ResolvedLocation
	RadiusMiles float64
	RetrievedAt time.Time
	Incidents   []NearbyIncident
}
