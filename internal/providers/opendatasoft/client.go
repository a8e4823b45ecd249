package opendatasoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"fire-monitor/internal/types"
)

// API Docs: https://help.opendatasoft.com/apis/ods-search-v1/
// Sample request: https://public.opendatasoft.com/api/records/1.0/search/?dataset=georef-united-states-of-america-zc-point&q=81611
const (
	maxResponseBytes = 2 << 20
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, httpClient *http.Client, baseURL, dataset string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		dataset:    dataset,
		logger:     logger.With("component", "opendatasoft-client"),
	}
}

// Search looks up postal code records in the configured dataset. An empty
// Records slice is a valid response; deciding what it means is up to the caller.
func (c *Client) Search(ctx context.Context, postalCode string) (*SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, types.NewTransportError("failed to parse base URL", err)
	}

	q := u.Query()
	q.Set("dataset", c.dataset)
	q.Set("q", postalCode)
	u.RawQuery = q.Encode()

	c.logger.Debug("searching postal code",
		"postal_code", postalCode,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, types.NewTransportError("failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch postal code records",
			"postal_code", postalCode,
			"error", err,
		)
		return nil, types.NewTransportError("failed to fetch", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		c.logger.Error("OpenDataSoft API returned error",
			"status_code", resp.StatusCode,
			"postal_code", postalCode,
			"response_body", string(body),
		)
		return nil, types.NewTransportError(fmt.Sprintf("fetch returned status %d", resp.StatusCode), nil)
	}

	var apiResp SearchAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode OpenDataSoft response",
			"postal_code", postalCode,
			"error", err,
		)
		return nil, types.NewParseError("failed to decode response", err)
	}

	c.logger.Debug("successfully searched postal code",
		"postal_code", postalCode,
		"record_count", len(apiResp.Records),
	)

	return &apiResp, nil
}
