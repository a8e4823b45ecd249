package fire

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NearbyFeatureCollection renders a NearbyReport as a GeoJSON FeatureCollection of
// incident points. The caller's location and the radius are carried as foreign members.
func NearbyFeatureCollection(report *NearbyReport) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if report == nil {
		return fc
	}

	for _, nearby := range report.Incidents {
		incident := nearby.Incident

		f := geojson.NewFeature(orb.Point{incident.Location.Longitude, incident.Location.Latitude})
		f.ID = incident.ID
		f.Properties["name"] = incident.Name
		f.Properties["city"] = incident.City
		f.Properties["behavior"] = incident.Behavior.String()
		f.Properties["percent_contained"] = incident.PercentContained
		f.Properties["daily_acres"] = incident.DailyAcres
		f.Properties["distance_miles"] = roundTo(nearby.DistanceMiles, 1)
		if incident.Ignition != nil {
			f.Properties["ignition"] = []float64{incident.Ignition.Longitude, incident.Ignition.Latitude}
		}

		fc.Append(f)
	}

	fc.ExtraMembers = geojson.Properties{
		"caller":       []float64{report.Location.Coordinates.Longitude, report.Location.Coordinates.Latitude},
		"postal_code":  report.Location.Location.PostalCode,
		"radius_miles": report.RadiusMiles,
		"retrieved_at": report.RetrievedAt,
	}

	return fc
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
