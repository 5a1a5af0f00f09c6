package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahzammaqsood/portfolio/internal/projects"
	"github.com/ahzammaqsood/portfolio/internal/store"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []store.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg store.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

// newTestServer builds the app the way serve() does, on an in-memory
// database and without background workers.
func newTestServer(t *testing.T) (*server, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cfg := Config{
		VisitorRetention: 365 * 24 * time.Hour,
		Admin:            AdminConfig{Username: "owner", Password: "s3cret"},
	}
	s, err := newServer(cfg, zap.NewNop(), projects.Builtin(), st)
	require.NoError(t, err)
	s.mailer = &fakeMailer{}
	s.now = func() time.Time { return testNow }

	r, err := newRouter(s)
	require.NoError(t, err)
	return s, r
}

// flushTracking writes every queued tracking event.
func flushTracking(t *testing.T, s *server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.tracker.Run(ctx))
}

func doGet(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doPostForm(t *testing.T, h http.Handler, target string, form url.Values, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseDoc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

func selectionTexts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
