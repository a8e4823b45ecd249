package fire

import (
	"fmt"
	"strconv"
	"strings"

	"fire-monitor/internal/providers/nifc"
	"fire-monitor/internal/providers/opendatasoft"
	"fire-monitor/internal/types"
)

// mapFeedResponse normalizes feed features into incidents. Features without a
// geometry cannot be located and are dropped; the second return value counts them.
func mapFeedResponse(resp *nifc.QueryAPIResponse) ([]Incident, int) {
	if resp == nil {
		return nil, 0
	}

	incidents := make([]Incident, 0, len(resp.Features))
	skipped := 0
	for i, feature := range resp.Features {
		if feature.Geometry == nil {
			skipped++
			continue
		}
		incidents = append(incidents, mapFeature(i, feature))
	}
	return incidents, skipped
}

func mapFeature(index int, feature nifc.Feature) Incident {
	attrs := feature.Attributes

	id := fmt.Sprintf("feature-%d", index)
	if attrs.ObjectID != nil {
		id = strconv.FormatInt(*attrs.ObjectID, 10)
	}

	incident := Incident{
		ID:               id,
		Name:             strings.TrimSpace(stringValue(attrs.IncidentName)),
		City:             optionalString(attrs.POOCity),
		Location:         types.NewCoords(feature.Geometry.Y, feature.Geometry.X),
		DailyAcres:       floatValue(attrs.DailyAcres),
		PercentContained: floatValue(attrs.PercentContained),
		Behavior:         ParseBehavior(stringValue(attrs.FireBehaviorGeneral)),
	}

	if attrs.InitialLatitude != nil && attrs.InitialLongitude != nil {
		ignition := types.NewCoords(*attrs.InitialLatitude, *attrs.InitialLongitude)
		incident.Ignition = &ignition
	}

	return incident
}

// translateLocation picks the first matching record. Multiple matches are not disambiguated.
func translateLocation(postalCode, countryCode string, resp *opendatasoft.SearchAPIResponse) (types.ResolvedLocation, error) {
	if resp == nil || len(resp.Records) == 0 {
		return types.ResolvedLocation{}, types.NewNotFoundError(fmt.Sprintf("no records for postal code %q", postalCode))
	}

	record := resp.Records[0]
	coords := record.Geometry.Coordinates
	if len(coords) < 2 {
		return types.ResolvedLocation{}, types.NewParseError(fmt.Sprintf("record %q has no coordinate pair", record.RecordID), nil)
	}

	// GeoJSON order is [longitude, latitude]
	point := types.NewCoords(coords[1], coords[0])
	if !point.Valid() {
		return types.ResolvedLocation{}, types.NewParseError(fmt.Sprintf("record %q has out of range coordinates %s", record.RecordID, point), nil)
	}

	info := types.LocationInfo{
		PostalCode:  record.StringField("zip_code"),
		City:        record.StringField("usps_city"),
		State:       record.StringField("stusps_code"),
		CountryCode: countryCode,
	}
	if info.PostalCode == "" {
		info.PostalCode = postalCode
	}

	return types.ResolvedLocation{
		Coordinates: point,
		Location:    info,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
