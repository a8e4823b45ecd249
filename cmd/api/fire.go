package main

import (
	"net/http"
	"time"

	"fire-monitor/internal/fire"
	"fire-monitor/internal/types"

	"github.com/gin-gonic/gin"
)

// GetNearestFireInput defines the query parameters for the nearest fire endpoint
type GetNearestFireInput struct {
	PostalCode  string `form:"postal_code" binding:"required,postalcode"`    // Postal code to search from
	CountryCode string `form:"country_code" binding:"required,len=2,alpha"` // ISO 3166-1 alpha-2 country code
}

// GetNearbyFiresInput defines the query parameters for the nearby fires endpoint
type GetNearbyFiresInput struct {
	GetNearestFireInput
	RadiusMiles *float64 `form:"radius_miles" binding:"omitempty,gte=0,lte=500"` // Search radius, defaults to 50
}

// NearestFireResponse is the nearest fire report with its spoken rendering
type NearestFireResponse struct {
	Location    types.ResolvedLocation `json:"location"`
	Timezone    string                 `json:"timezone" example:"America/Denver"`
	RetrievedAt time.Time              `json:"retrieved_at"`
	Facts       fire.NarrativeFacts    `json:"facts"`
	Speech      string                 `json:"speech" example:"There is 1 uncontained fire within 50 miles."`
}

// handleGetNearestFire godoc
// @Summary Get the nearest uncontained fire
// @Description Resolve a postal code and report the nearest active, uncontained wildfire, how many are within 50 miles, and how far it has moved since ignition
// @Tags fires
// @Produce json
// @Param postal_code query string true "Postal code" example(80301)
// @Param country_code query string true "ISO 3166-1 alpha-2 country code" example(US)
// @Success 200 {object} NearestFireResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /fires/nearest [get]
func (app *App) handleGetNearestFire(c *gin.Context) {
	var input GetNearestFireInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		app.writeBindError(c, err)
		return
	}

	report, err := app.fireService.LookupNearest(c.Request.Context(), input.PostalCode, input.CountryCode)
	if err != nil {
		app.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NearestFireResponse{
		Location:    report.Location,
		Timezone:    report.Timezone,
		RetrievedAt: report.RetrievedAt,
		Facts:       report.Facts,
		Speech:      renderSpeech(report.Facts),
	})
}

// handleGetNearbyFires godoc
// @Summary List uncontained fires near a postal code
// @Description List active, uncontained wildfires within a radius of a postal code as a GeoJSON FeatureCollection, nearest first
// @Tags fires
// @Produce json
// @Param postal_code query string true "Postal code" example(80301)
// @Param country_code query string true "ISO 3166-1 alpha-2 country code" example(US)
// @Param radius_miles query number false "Search radius in miles" minimum(0) maximum(500) default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /fires/nearby [get]
func (app *App) handleGetNearbyFires(c *gin.Context) {
	var input GetNearbyFiresInput

	if err := c.ShouldBindQuery(&input); err != nil {
		app.writeBindError(c, err)
		return
	}

	radius := fire.NearbyRadiusMiles
	if input.RadiusMiles != nil {
		radius = *input.RadiusMiles
	}

	report, err := app.fireService.LookupNearby(c.Request.Context(), input.PostalCode, input.CountryCode, radius)
	if err != nil {
		app.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fire.NearbyFeatureCollection(report))
}
