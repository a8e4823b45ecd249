package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fire-monitor/internal/config"
	"fire-monitor/internal/fire"
	"fire-monitor/internal/fire/mocks"
	"fire-monitor/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestApp creates an App backed by a mocked fire service
func newTestApp(t *testing.T) (*App, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, GinMode: gin.TestMode},
		App:    config.AppConfig{SupportedCountry: "US"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := newApp(cfg, logger, mockService)
	require.NoError(t, err)

	return app, mockService
}

func makeRequest(app *App, url string, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func sampleReport() *fire.Report {
	return &fire.Report{
		Location: types.ResolvedLocation{
			Coordinates: types.Coords{Latitude: 40.0, Longitude: -105.0},
			Location:    types.LocationInfo{PostalCode: "80301", City: "Boulder", State: "CO", CountryCode: "US"},
		},
		Timezone:    "America/Denver",
		RetrievedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
		Facts: fire.NarrativeFacts{
			NearbyCount:      1,
			HasIncident:      true,
			IncidentName:     strPtr("Test"),
			City:             strPtr("Testville"),
			DistanceMiles:    7,
			DistancePlural:   true,
			Acres:            1500,
			AcresPlural:      true,
			PercentContained: 45,
			Delta:            fire.DirectionalDelta{Direction: fire.DirectionFarther, Magnitude: 7, Plural: true},
		},
	}
}

func TestPing(t *testing.T) {
	app, _ := newTestApp(t)

	w := makeRequest(app, "/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGetNearestFire_Success(t *testing.T) {
	app, mockService := newTestApp(t)

	mockService.EXPECT().
		LookupNearest(gomock.Any(), "80301", "US").
		Return(sampleReport(), nil)

	w := makeRequest(app, "/fires/nearest?postal_code=80301&country_code=US")
	require.Equal(t, http.StatusOK, w.Code)

	var resp NearestFireResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "America/Denver", resp.Timezone)
	assert.Equal(t, "Boulder", resp.Location.Location.City)
	assert.Equal(t, 7, resp.Facts.DistanceMiles)
	assert.Contains(t, resp.Speech, "The closest uncontained fire is the Test fire.")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestGetNearestFire_KeepsRequestID(t *testing.T) {
	app, mockService := newTestApp(t)

	mockService.EXPECT().LookupNearest(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleReport(), nil)

	w := makeRequest(app, "/fires/nearest?postal_code=80301&country_code=US", map[string]string{requestIDHeader: "abc-123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestGetNearestFire_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "unsupported country",
			err:        types.NewUnsupportedCountryError("CA"),
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "unsupported_country",
			wantMsg:    unsupportedLocationMessage,
		},
		{
			name:       "postal code not found",
			err:        types.NewNotFoundError(`no records for postal code "00000"`),
			wantStatus: http.StatusNotFound,
			wantKind:   "not_found",
			wantMsg:    unsupportedLocationMessage,
		},
		{
			name:       "transport failure",
			err:        types.NewTransportError("fetch returned status 503", nil),
			wantStatus: http.StatusBadGateway,
			wantKind:   "transport_error",
			wantMsg:    upstreamErrorMessage,
		},
		{
			name:       "parse failure",
			err:        types.NewParseError("failed to decode response", errors.New("unexpected EOF")),
			wantStatus: http.StatusBadGateway,
			wantKind:   "parse_error",
			wantMsg:    upstreamErrorMessage,
		},
		{
			name:       "invalid argument",
			err:        types.NewInvalidArgumentError("radius must not be negative, got -1"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_argument",
			wantMsg:    invalidRequestMessage,
		},
		{
			name:       "unclassified failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "unknown",
			wantMsg:    generalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, mockService := newTestApp(t)
			mockService.EXPECT().
				LookupNearest(gomock.Any(), "80301", "US").
				Return(nil, tt.err)

			w := makeRequest(app, "/fires/nearest?postal_code=80301&country_code=US")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.err.Error(), resp.Detail)
		})
	}
}

func TestGetNearestFire_BadRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing postal code", query: "country_code=US"},
		{name: "missing country code", query: "postal_code=80301"},
		{name: "postal code too short", query: "postal_code=80&country_code=US"},
		{name: "postal code with symbols", query: "postal_code=80%3B01&country_code=US"},
		{name: "three letter country", query: "postal_code=80301&country_code=USA"},
		{name: "numeric country", query: "postal_code=80301&country_code=12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No service calls are expected; gomock fails the test on any.
			app, _ := newTestApp(t)

			w := makeRequest(app, "/fires/nearest?"+tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, kindInvalidRequest, resp.Kind)
		})
	}
}

func TestGetNearbyFires(t *testing.T) {
	report := &fire.NearbyReport{
		Location: types.ResolvedLocation{
			Coordinates: types.Coords{Latitude: 40.0, Longitude: -105.0},
			Location:    types.LocationInfo{PostalCode: "80301", CountryCode: "US"},
		},
		RadiusMiles: 50,
		Incidents: []fire.NearbyIncident{
			{
				Incident: fire.Incident{
					ID:       "1",
					Name:     "Test",
					Location: types.Coords{Latitude: 40.1, Longitude: -105.0},
					Behavior: fire.BehaviorActive,
				},
				DistanceMiles: 6.9,
			},
		},
	}

	t.Run("default radius", func(t *testing.T) {
		app, mockService := newTestApp(t)
		mockService.EXPECT().
			LookupNearby(gomock.Any(), "80301", "US", fire.NearbyRadiusMiles).
			Return(report, nil)

		w := makeRequest(app, "/fires/nearby?postal_code=80301&country_code=US")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FeatureCollection", body["type"])
		assert.Len(t, body["features"], 1)
		assert.Equal(t, 50.0, body["radius_miles"])
	})

	t.Run("explicit radius", func(t *testing.T) {
		app, mockService := newTestApp(t)
		mockService.EXPECT().
			LookupNearby(gomock.Any(), "80301", "US", 120.0).
			Return(report, nil)

		w := makeRequest(app, "/fires/nearby?postal_code=80301&country_code=US&radius_miles=120")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("radius out of range", func(t *testing.T) {
		app, _ := newTestApp(t)

		w := makeRequest(app, "/fires/nearby?postal_code=80301&country_code=US&radius_miles=501")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = makeRequest(app, "/fires/nearby?postal_code=80301&country_code=US&radius_miles=-1")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		app, mockService := newTestApp(t)
		mockService.EXPECT().
			LookupNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, types.NewNotFoundError("no records"))

		w := makeRequest(app, "/fires/nearby?postal_code=00000&country_code=US")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSwaggerRedirect(t *testing.T) {
	app, _ := newTestApp(t)

	w := makeRequest(app, "/swagger/")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}
