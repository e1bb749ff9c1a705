// Package weather reads current conditions from an Open-Meteo compatible API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/config"
	"github.com/samandr77/microservices/mro/pkg/transport"
)

const (
	retryWaitMin = time.Millisecond * 200
	retryWaitMax = time.Second * 2

	observedAtLayout = "2006-01-02T15:04"
)

type Client struct {
	client   *http.Client
	baseURL  string
	cache    Cache
	cacheTTL time.Duration
}

// New builds the client. cache may be nil, then every call goes upstream.
func New(cfg config.Weather, cache Cache) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)
	retryClient.Logger = nil

	return &Client{
		client:   retryClient.StandardClient(),
		baseURL:  cfg.BaseURL,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
	}
}

type forecastResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CurrentWeather struct {
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   int     `json:"weathercode"`
		Time          string  `json:"time"`
	} `json:"current_weather"`
}

func (c *Client) Current(ctx context.Context, q entity.WeatherQuery) (entity.Weather, error) {
	key := cacheKey(q)

	if w, ok := c.cached(ctx, key); ok {
		return w, nil
	}

	w, err := c.fetch(ctx, q)
	if err != nil {
		return entity.Weather{}, err
	}

	c.store(ctx, key, w)

	return w, nil
}

func (c *Client) fetch(ctx context.Context, q entity.WeatherQuery) (entity.Weather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("current_weather", "true")
	params.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return entity.Weather{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Weather{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Weather{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.Weather{}, fmt.Errorf("unexpected code %d: %s", resp.StatusCode, body)
	}

	var fr forecastResponse

	err = json.Unmarshal(body, &fr)
	if err != nil {
		return entity.Weather{}, fmt.Errorf("decode response: %w", err)
	}

	observedAt, err := time.Parse(observedAtLayout, fr.CurrentWeather.Time)
	if err != nil {
		observedAt = time.Now().UTC()
	}

	return entity.Weather{
		Latitude:      fr.Latitude,
		Longitude:     fr.Longitude,
		Temperature:   fr.CurrentWeather.Temperature,
		WindSpeed:     fr.CurrentWeather.WindSpeed,
		WindDirection: fr.CurrentWeather.WindDirection,
		WeatherCode:   fr.CurrentWeather.WeatherCode,
		ObservedAt:    observedAt,
	}, nil
}

// cacheKey rounds to two decimals, about a kilometre.
func cacheKey(q entity.WeatherQuery) string {
	return fmt.Sprintf("weather:%.2f:%.2f", q.Latitude, q.Longitude)
}

func (c *Client) cached(ctx context.Context, key string) (entity.Weather, bool) {
	if c.cache == nil {
		return entity.Weather{}, false
	}

	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			slog.WarnContext(ctx, "read weather cache", "error", err)
		}

		return entity.Weather{}, false
	}

	var w entity.Weather

	err = json.Unmarshal([]byte(raw), &w)
	if err != nil {
		slog.WarnContext(ctx, "decode cached weather", "error", err)
		return entity.Weather{}, false
	}

	return w, true
}

func (c *Client) store(ctx context.Context, key string, w entity.Weather) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}

	b, err := json.Marshal(w)
	if err != nil {
		return
	}

	err = c.cache.Set(ctx, key, string(b), c.cacheTTL)
	if err != nil {
		slog.WarnContext(ctx, "write weather cache", "error", err)
	}
}
