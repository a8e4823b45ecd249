package fire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fire-monitor/internal/config"
	"fire-monitor/internal/providers"
	"fire-monitor/internal/providers/nifc"
	"fire-monitor/internal/providers/opendatasoft"
	"fire-monitor/internal/timezone"
	"fire-monitor/internal/types"
)

// GeocodeProvider looks up postal code records.
type GeocodeProvider interface {
	Search(ctx context.Context, postalCode string) (*opendatasoft.SearchAPIResponse, error)
}

// IncidentFeedProvider fetches the current wildfire incident snapshot.
type IncidentFeedProvider interface {
	GetCurrentIncidents(ctx context.Context) (*nifc.QueryAPIResponse, error)
}

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mocks/mock_service.go -package=mocks fire-monitor/internal/fire Service

// Service answers nearest-fire questions for a postal code.
type Service interface {
	// LookupNearest resolves the postal code and reports the nearest eligible incident.
	// Having no eligible incident is a successful report, not an error.
	LookupNearest(ctx context.Context, postalCode, countryCode string) (*Report, error)
	// LookupNearby lists the eligible incidents within radiusMiles of the postal code.
	LookupNearby(ctx context.Context, postalCode, countryCode string, radiusMiles float64) (*NearbyReport, error)
}

type fireService struct {
	geocoder         GeocodeProvider
	feed             IncidentFeedProvider
	timezoneService  timezone.Service
	supportedCountry string
	logger           *slog.Logger
	now              func() time.Time
}

// NewFireService creates a fire service backed by the live geocoding and NIFC providers.
func NewFireService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	httpClient := providers.NewHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.UserAgent)

	return NewFireServiceWithProviders(
		logger,
		opendatasoft.NewClient(logger, httpClient, cfg.Geocoder.BaseURL, cfg.Geocoder.Dataset),
		nifc.NewClient(logger, httpClient, cfg.Feed.BaseURL),
		tzSvc,
		cfg.App.SupportedCountry,
	), nil
}

// NewFireServiceWithProviders creates a fire service with custom providers.
// This is useful for testing with mock providers. A nil timezoneService reports UTC.
func NewFireServiceWithProviders(
	logger *slog.Logger,
	geocoder GeocodeProvider,
	feed IncidentFeedProvider,
	timezoneService timezone.Service,
	supportedCountry string,
) Service {
	return &fireService{
		geocoder:         geocoder,
		feed:             feed,
		timezoneService:  timezoneService,
		supportedCountry: strings.ToUpper(supportedCountry),
		logger:           logger.With("component", "fire-service"),
		now:              time.Now,
	}
}

func (s *fireService) LookupNearest(ctx context.Context, postalCode, countryCode string) (*Report, error) {
	location, incidents, err := s.prepare(ctx, postalCode, countryCode)
	if err != nil {
		return nil, err
	}

	result := Resolve(location.Coordinates, incidents)
	if result.ClosestIncident == nil {
		s.logger.Info("no active uncontained fires",
			"postal_code", location.Location.PostalCode,
			"incident_count", len(incidents),
		)
	} else {
		s.logger.Debug("resolved nearest fire",
			"postal_code", location.Location.PostalCode,
			"incident_id", result.ClosestIncident.ID,
			"incident_name", result.ClosestIncident.Name,
			"distance_miles", result.ClosestDistanceMiles,
			"ignition_distance_miles", result.IgnitionDistanceMiles,
			"nearby_count", result.NearbyCount,
		)
	}

	retrievedAt, tzName := s.localTime(location.Coordinates)

	return &Report{
		Location:    location,
		Timezone:    tzName,
		RetrievedAt: retrievedAt,
		Result:      result,
		Facts:       Format(result),
	}, nil
}

func (s *fireService) LookupNearby(ctx context.Context, postalCode, countryCode string, radiusMiles float64) (*NearbyReport, error) {
	if radiusMiles < 0 {
		return nil, types.NewInvalidArgumentError(fmt.Sprintf("radius must not be negative, got %g", radiusMiles))
	}

	location, incidents, err := s.prepare(ctx, postalCode, countryCode)
	if err != nil {
		return nil, err
	}

	nearby := WithinRadius(location.Coordinates, incidents, radiusMiles)
	retrievedAt, _ := s.localTime(location.Coordinates)

	s.logger.Debug("listed nearby fires",
		"postal_code", location.Location.PostalCode,
		"radius_miles", radiusMiles,
		"nearby_count", len(nearby),
	)

	return &NearbyReport{
		Location:    location,
		RadiusMiles: radiusMiles,
		RetrievedAt: retrievedAt,
		Incidents:   nearby,
	}, nil
}

// prepare runs the shared stages: country check, geocoding, then the feed fetch.
// The feed is not fetched when the postal code does not resolve.
func (s *fireService) prepare(ctx context.Context, postalCode, countryCode string) (types.ResolvedLocation, []Incident, error) {
	country := strings.ToUpper(strings.TrimSpace(countryCode))
	if country != s.supportedCountry {
		s.logger.Warn("country not supported", "country_code", countryCode)
		return types.ResolvedLocation{}, nil, types.NewUnsupportedCountryError(countryCode)
	}

	location, err := s.resolveCoordinates(ctx, normalizePostalCode(postalCode), country)
	if err != nil {
		return types.ResolvedLocation{}, nil, err
	}

	incidents, err := s.fetchIncidents(ctx)
	if err != nil {
		return types.ResolvedLocation{}, nil, err
	}

	return location, incidents, nil
}

func (s *fireService) resolveCoordinates(ctx context.Context, postalCode, countryCode string) (types.ResolvedLocation, error) {
	resp, err := s.geocoder.Search(ctx, postalCode)
	if err != nil {
		s.logger.Error("failed to look up postal code",
			"postal_code", postalCode,
			"error", err,
		)
		return types.ResolvedLocation{}, fmt.Errorf("failed to resolve postal code: %w", err)
	}

	location, err := translateLocation(postalCode, countryCode, resp)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.logger.Info("postal code not found", "postal_code", postalCode)
		} else {
			s.logger.Error("failed to translate postal code records",
				"postal_code", postalCode,
				"error", err,
			)
		}
		return types.ResolvedLocation{}, fmt.Errorf("failed to resolve postal code: %w", err)
	}

	s.logger.Debug("resolved postal code",
		"postal_code", postalCode,
		"latitude", location.Coordinates.Latitude,
		"longitude", location.Coordinates.Longitude,
		"record_count", len(resp.Records),
	)

	return location, nil
}

func (s *fireService) fetchIncidents(ctx context.Context) ([]Incident, error) {
	resp, err := s.feed.GetCurrentIncidents(ctx)
	if err != nil {
		s.logger.Error("failed to get incidents from feed", "error", err)
		return nil, fmt.Errorf("failed to fetch incidents: %w", err)
	}

	incidents, skipped := mapFeedResponse(resp)
	if skipped > 0 {
		s.logger.Debug("skipped incidents without geometry", "skipped", skipped)
	}

	return incidents, nil
}

// localTime returns the current time in the zone containing coords, falling back to UTC.
func (s *fireService) localTime(coords types.Coords) (time.Time, string) {
	now := s.now()
	if s.timezoneService == nil {
		return now.UTC(), "UTC"
	}

	loc, err := s.timezoneService.Locate(coords)
	if err != nil {
		s.logger.Warn("falling back to UTC", "coordinates", coords.String(), "error", err)
		return now.UTC(), "UTC"
	}

	return now.In(loc), loc.String()
}

// normalizePostalCode trims whitespace and drops a ZIP+4 suffix.
func normalizePostalCode(postalCode string) string {
	code := strings.TrimSpace(postalCode)
	if base, _, found := strings.Cut(code, "-"); found && len(base) == 5 {
		return base
	}
	return code
}
