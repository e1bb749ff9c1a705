package transport_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/pkg/logger"
	"github.com/samandr77/microservices/mro/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	r := require.New(t)

	defer slog.SetDefault(slog.Default())

	buf := new(bytes.Buffer)
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))

	gotRequestID := make(chan string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID <- r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(nil),
	}

	ctx := logger.SetRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/forecast", nil)
	r.NoError(err)

	resp, err := client.Do(req)
	r.NoError(err)

	defer resp.Body.Close()

	r.Equal(http.StatusTeapot, resp.StatusCode)
	r.Equal("req-42", <-gotRequestID)

	var messages []map[string]any

	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		r.NoError(json.Unmarshal(sc.Bytes(), &m))
		messages = append(messages, m)
	}

	r.Len(messages, 2)
	r.Equal("outgoing request", messages[0]["msg"])
	r.Equal("GET "+server.URL+"/forecast", messages[0]["request"])
	r.Equal("incoming response", messages[1]["msg"])
	r.InDelta(float64(http.StatusTeapot), messages[1]["status"], 0)
}
