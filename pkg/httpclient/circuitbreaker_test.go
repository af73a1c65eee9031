package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func breakerClient(t *testing.T, name string, maxRetries int) *CircuitBreakerClient {
	t.Helper()
	cfg := testConfig()
	cfg.MaxRetries = maxRetries
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return NewCircuitBreakerClient(New(cfg), DefaultCircuitBreakerConfig(name), logger)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := breakerClient(t, "breaker-opens", 0)

	for i := 0; i < 5; i++ {
		_, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, c.State())
	assert.Equal(t, int32(5), atomic.LoadInt32(&hits))

	// Rejected without touching the network.
	_, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(5), atomic.LoadInt32(&hits))
}

func TestBreakerStaysClosedWhenFailuresAreNotConsecutive(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := breakerClient(t, "breaker-stays-closed", 0)

	fail.Store(true)
	for i := 0; i < 3; i++ {
		_, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
		require.Error(t, err)
	}

	fail.Store(false)
	resp, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, gobreaker.StateClosed, c.State())
}

func TestBreakerHalfOpenRecovers(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxRetries = 0
	cbCfg := DefaultCircuitBreakerConfig("breaker-recovers")
	cbCfg.Timeout = 30 * time.Millisecond
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	c := NewCircuitBreakerClient(New(cfg), cbCfg, logger)

	for i := 0; i < 5; i++ {
		_, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
		require.Error(t, err)
	}
	require.Equal(t, gobreaker.StateOpen, c.State())

	fail.Store(false)
	time.Sleep(50 * time.Millisecond)

	resp, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, gobreaker.StateClosed, c.State())
}

// One call is one breaker sample even when the retry loop underneath makes
// several attempts.
func TestBreakerCountsWholeCallsNotAttempts(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := breakerClient(t, "breaker-whole-calls", 3)

	_, err := c.Post(context.Background(), srv.URL, "text/xml", []byte("<Ping/>"), nil)
	require.Error(t, err)

	assert.Equal(t, int32(4), atomic.LoadInt32(&hits))
	assert.Equal(t, gobreaker.StateClosed, c.State())
}
