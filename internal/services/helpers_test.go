package services

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 22, 14, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func nullLogger() (logrus.FieldLogger, *test.Hook) {
	log, hook := test.NewNullLogger()
	return log, hook
}

// countingServer serves handler and counts requests per URL path.
type countingServer struct {
	*httptest.Server
	mu    sync.Mutex
	byKey map[string]int
	total atomic.Int64
}

func newCountingServer(t *testing.T, keyOf func(*http.Request) string, handler http.HandlerFunc) *countingServer {
	t.Helper()
	cs := &countingServer{byKey: map[string]int{}}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.total.Add(1)
		cs.mu.Lock()
		cs.byKey[keyOf(r)]++
		cs.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *countingServer) count(key string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.byKey[key]
}
