package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TongAlan/val-api/internal/metrics"
	"github.com/TongAlan/val-api/internal/testutil"
)

func TestFetchParsesPageWithBrowserHeaders(t *testing.T) {
	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		_, _ = w.Write([]byte(`<html><body><h1 class="wf-title">Sentinels</h1></body></html>`))
	}))
	defer srv.Close()

	rec := metrics.NewRecorder()
	f := New(Options{Recorder: rec})
	f.pick = func(n int) int { return n - 1 }

	doc := f.Fetch(context.Background(), srv.URL+"/team/2/sentinels")
	require.NotNil(t, doc)
	require.Equal(t, "Sentinels", doc.Find("h1").Text())
	got := <-headers
	require.Equal(t, userAgents[len(userAgents)-1], got.Get("User-Agent"))
	require.Contains(t, got.Get("Accept"), "text/html")
	require.Equal(t, "en-US,en;q=0.5", got.Get("Accept-Language"))

	snap := rec.Snapshot(SourceVlr)
	require.Equal(t, 1, snap.Calls)
	require.Zero(t, snap.Errors)
}

func TestUserAgentRotatesThroughPool(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Header.Get("User-Agent")] = true
		mu.Unlock()
	}))
	defer srv.Close()

	f := New(Options{})
	var i int
	f.pick = func(n int) int { i++; return i % n }
	for range userAgents {
		f.Fetch(context.Background(), srv.URL)
	}
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, len(userAgents))
	require.GreaterOrEqual(t, len(userAgents), 3)
}

func TestFetchNon2xxReturnsNilAndLogs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	f := New(Options{Logger: logger, Recorder: rec})

	require.Nil(t, f.Fetch(context.Background(), srv.URL+"/match/1"))
	require.Contains(t, buf.String(), "page fetch failed")
	require.Contains(t, buf.String(), "status_code=404")
	require.Equal(t, 1, rec.Snapshot(SourceVlr).Errors)

	_, err := f.Get(context.Background(), srv.URL+"/match/1")
	statusErr, ok := AsStatusError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	require.False(t, statusErr.RateLimited())
}

func TestFetchRecordsRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	rec := metrics.NewRecorder()
	f := New(Options{Recorder: rec})
	require.Nil(t, f.Fetch(context.Background(), srv.URL))

	snap := rec.Snapshot(SourceVlr)
	require.Equal(t, 1, snap.RateLimitHits)
	require.Equal(t, 30*time.Second, snap.LastRetryAfter)
}

func TestFetchDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	New(Options{}).Fetch(context.Background(), srv.URL)
	require.EqualValues(t, 1, calls.Load())
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f := New(Options{Timeout: 20 * time.Millisecond})
	start := time.Now()
	require.Nil(t, f.Fetch(context.Background(), srv.URL))
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	require.Nil(t, New(Options{}).Fetch(context.Background(), url))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetchUsesInjectedTransport(t *testing.T) {
	f := New(Options{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       httpBody(`<p class="x">stubbed</p>`),
			Request:    r,
		}, nil
	})})
	doc := f.Fetch(context.Background(), "https://www.vlr.gg/matches")
	require.NotNil(t, doc)
	require.Equal(t, "stubbed", doc.Find("p.x").Text())
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Options{Delay: time.Minute}).Get(ctx, srv.URL)
	require.True(t, errors.Is(err, context.Canceled))
}

func httpBody(s string) *readCloser {
	return &readCloser{Reader: strings.NewReader(s)}
}

type readCloser struct {
	*strings.Reader
}

func (readCloser) Close() error { return nil }
