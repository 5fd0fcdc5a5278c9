package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
)

// Source provides daily weather observations for a date range. The core
// pipeline treats weather as optional: a failing source degrades the
// weather analysis to "insufficient data" and nothing else.
type Source interface {
	DailyObservations(ctx context.Context, startDate, endDate string) ([]models.WeatherObservation, error)
}

// Client talks to the external weather proxy, which fronts the upstream
// climate API and returns {station, date, tmax, tmin, prcp} readings.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// NewClient creates a weather proxy client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

// DailyObservations fetches station-day readings for [startDate, endDate].
func (c *Client) DailyObservations(ctx context.Context, startDate, endDate string) ([]models.WeatherObservation, error) {
	params := url.Values{
		"start": {startDate},
		"end":   {endDate},
	}
	fullURL := fmt.Sprintf("%s/v1/daily?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest("error")
		return nil, fmt.Errorf("weather proxy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countRequest("error")
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather proxy error: status %d: %s", resp.StatusCode, body)
	}

	var observations []models.WeatherObservation
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		c.countRequest("error")
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	c.countRequest("success")
	return observations, nil
}

func (c *Client) countRequest(outcome string) {
	if c.metrics != nil {
		c.metrics.WeatherRequests.WithLabelValues(outcome).Inc()
	}
}
