package timings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

const DefaultBaseURL = "https://api.aladhan.com"

// Client fetches day timings from the AlAdhan API. Calls are rate limited
// so a burst of uncached requests cannot hammer the upstream service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
	}
}

// aladhanResponse mirrors the subset of the upstream payload we consume.
type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Readable  string `json:"readable"`
			Gregorian struct {
				Date string `json:"date"` // “02-01-2006”
			} `json:"gregorian"`
		} `json:"date"`
	} `json:"data"`
}

// FetchDay returns the raw 24-hour timings for one day and location.
func (c *Client) FetchDay(ctx context.Context, day time.Time, lat, lon float64, method int) (model.DayTimes, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return model.DayTimes{}, err
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", lat))
	query.Set("longitude", fmt.Sprintf("%f", lon))
	query.Set("method", fmt.Sprintf("%d", method))

	endpoint := fmt.Sprintf("%s/v1/timings/%s?%s", c.baseURL, day.Format("02-01-2006"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.DayTimes{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.DayTimes{}, fmt.Errorf("failed to get prayer times: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("upstream timings request failed")
		return model.DayTimes{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var payload aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.DayTimes{}, fmt.Errorf("failed to decode timings response: %w", err)
	}
	if len(payload.Data.Timings) == 0 {
		return model.DayTimes{}, fmt.Errorf("upstream returned no timings")
	}

	return model.DayTimes{
		Date:    day.Format("02-01-2006"),
		Timings: payload.Data.Timings,
	}, nil
}
