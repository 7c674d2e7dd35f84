package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Report is the trimmed weather payload served to the frontend.
type Report struct {
	Name        string `json:"name"`
	Temp        int    `json:"temp"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Query locates the weather lookup: coordinates win over the city name.
type Query struct {
	Lat  string
	Lon  string
	City string
}

// CacheKey is "{lat},{lon}" for coordinate lookups, the city name otherwise.
func (q Query) CacheKey() string {
	if q.Lat != "" && q.Lon != "" {
		return q.Lat + "," + q.Lon
	}
	return q.City
}

// Client fetches current weather from openweathermap with a read-through
// TTL cache in front and a circuit breaker around the upstream call.
type Client struct {
	apiKey      string
	baseURL     string
	defaultCity string
	cache       *Cache
	breaker     *gobreaker.CircuitBreaker
	http        *http.Client
	log         *slog.Logger
}

func NewClient(apiKey, defaultCity string, cache *Cache, log *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweathermap",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("weather breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		apiKey:      apiKey,
		baseURL:     defaultBaseURL,
		defaultCity: defaultCity,
		cache:       cache,
		breaker:     breaker,
		http:        &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

// Current returns the weather for the query, serving from cache when fresh.
// When the lookup for a non-default city fails, the default city is tried
// before giving up.
func (c *Client) Current(ctx context.Context, q Query) (*Report, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key not configured")
	}

	if q.City == "" && (q.Lat == "" || q.Lon == "") {
		q.City = c.defaultCity
	}

	key := q.CacheKey()
	if report, ok := c.cache.Get(key); ok {
		return report, nil
	}

	report, err := c.fetch(ctx, q)
	if err != nil {
		if q.City == "" || q.City == c.defaultCity {
			return nil, err
		}

		c.log.Warn("weather lookup failed, falling back to default city",
			"key", key, "error", err)

		fallback := Query{City: c.defaultCity}
		report, fbErr := c.fetch(ctx, fallback)
		if fbErr != nil {
			return nil, err
		}

		c.cache.Set(fallback.CacheKey(), report)
		return report, nil
	}

	c.cache.Set(key, report)
	return report, nil
}

func (c *Client) fetch(ctx context.Context, q Query) (*Report, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchUpstream(ctx, q)
	})
	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

func (c *Client) fetchUpstream(ctx context.Context, q Query) (*Report, error) {
	params := url.Values{}
	if q.Lat != "" && q.Lon != "" {
		params.Set("lat", q.Lat)
		params.Set("lon", q.Lon)
	} else {
		params.Set("q", q.City)
	}
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("weather api status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather response without conditions")
	}

	return &Report{
		Name:        payload.Name,
		Temp:        int(math.Round(payload.Main.Temp)),
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
	}, nil
}
