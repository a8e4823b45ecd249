package nifc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"fire-monitor/internal/types"
)

// Dataset: WFIGS - Current Wildland Fire Locations
// https://data-nifc.opendata.arcgis.com/datasets/nifc::wfigs-current-wildland-fire-locations/about
// Sample request: https://services3.arcgis.com/T4QMspbfLg3qTGWY/arcgis/rest/services/Current_WildlandFire_Locations/FeatureServer/0/query?where=1%3D1&outFields=IncidentName&outSR=4326&f=json
const (
	maxResponseBytes = 64 << 20
)

var outFields = []string{
	"FireBehaviorGeneral",
	"FireBehaviorGeneral1",
	"InitialLatitude",
	"InitialLongitude",
	"IncidentName",
	"PercentContained",
	"PercentPerimeterToBeContained",
	"DailyAcres",
	"POOCity",
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "nifc-client"),
	}
}

// GetCurrentIncidents fetches every current wildland fire location in one request.
func (c *Client) GetCurrentIncidents(ctx context.Context) (*QueryAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, types.NewTransportError("failed to parse base URL", err)
	}

	q := u.Query()
	q.Set("where", "1=1")
	q.Set("outFields", strings.Join(outFields, ","))
	q.Set("outSR", "4326")
	q.Set("f", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current wildland fire locations", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, types.NewTransportError("failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch wildland fire locations", "error", err)
		return nil, types.NewTransportError("failed to fetch", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		c.logger.Error("NIFC feed returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, types.NewTransportError(fmt.Sprintf("fetch returned status %d", resp.StatusCode), nil)
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode NIFC feed response", "error", err)
		return nil, types.NewParseError("failed to decode response", err)
	}

	if apiResp.Error != nil {
		c.logger.Error("NIFC feed query failed",
			"code", apiResp.Error.Code,
			"message", apiResp.Error.Message,
			"details", apiResp.Error.Details,
		)
		return nil, types.NewTransportError(fmt.Sprintf("query failed with code %d: %s", apiResp.Error.Code, apiResp.Error.Message), nil)
	}

	if apiResp.ExceededTransferLimit {
		c.logger.Warn("NIFC feed truncated the result set", "feature_count", len(apiResp.Features))
	}

	c.logger.Debug("successfully fetched wildland fire locations", "feature_count", len(apiResp.Features))

	return &apiResp, nil
}
