package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/internal/clients/weather"
	"github.com/samandr77/microservices/mro/internal/entity"
	"github.com/samandr77/microservices/mro/pkg/config"
)

const forecast = `{"latitude":52.52,"longitude":13.41,"current_weather":` +
	`{"temperature":12.5,"windspeed":18.3,"winddirection":270,"weathercode":3,"time":"2025-03-01T10:00"}}`

type memoryCache struct {
	mu sync.Mutex
	m  map[string]string
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.m[key]
	if !ok {
		return "", weather.ErrCacheMiss
	}

	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = value

	return nil
}

func newConfig(url string) config.Weather {
	return config.Weather{
		BaseURL:       url,
		Timeout:       time.Second,
		RetryAttempts: 2,
		CacheTTL:      time.Minute,
	}
}

func TestClient_CurrentRetriesUpstreamFailure(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		assert.Equal(t, "/v1/forecast", req.URL.Path)
		assert.Equal(t, "52.52", req.URL.Query().Get("latitude"))
		assert.Equal(t, "true", req.URL.Query().Get("current_weather"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecast))
	}))
	t.Cleanup(srv.Close)

	got, err := weather.New(newConfig(srv.URL), nil).Current(context.Background(),
		entity.WeatherQuery{Latitude: 52.52, Longitude: 13.41})
	r.NoError(err)
	r.Equal(int32(2), calls.Load())
	r.InDelta(12.5, got.Temperature, 0.001)
	r.InDelta(18.3, got.WindSpeed, 0.001)
	r.Equal(3, got.WeatherCode)
	r.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), got.ObservedAt)
}

func TestClient_CurrentUsesCache(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(forecast))
	}))
	t.Cleanup(srv.Close)

	c := weather.New(newConfig(srv.URL), &memoryCache{m: map[string]string{}})
	q := entity.WeatherQuery{Latitude: 52.52, Longitude: 13.41}

	first, err := c.Current(context.Background(), q)
	r.NoError(err)

	second, err := c.Current(context.Background(), q)
	r.NoError(err)

	r.Equal(int32(1), calls.Load())
	r.Equal(first.Temperature, second.Temperature)
	r.True(first.ObservedAt.Equal(second.ObservedAt))
}

func TestClient_CurrentGivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := weather.New(newConfig(srv.URL), nil).Current(context.Background(), entity.WeatherQuery{})
	require.Error(t, err)
	require.Equal(t, int32(3), calls.Load())
}
