package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/prices"
	"github.com/osse101/HerbRun_Go/internal/testing/leaktest"
	"github.com/osse101/HerbRun_Go/mocks"
)

const testAPIKey = "test-key"

func TestMain(m *testing.M) {
	leaktest.VerifyTestMain(m)
}

func testOptions() Options {
	return Options{
		APIKey:         testAPIKey,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		MaxBodyBytes:   1 << 20,
	}
}

func newTestServer(t *testing.T, svc Services) *Server {
	t.Helper()
	if svc.Farm == nil {
		svc.Farm = mocks.NewMockFarmingService(t)
	}
	if svc.Prices == nil {
		svc.Prices = mocks.NewMockPriceService(t)
	}
	if svc.Hiscore == nil {
		svc.Hiscore = mocks.NewMockHiscoreService(t)
	}
	return NewServer(testOptions(), svc)
}

func do(t *testing.T, h http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	h := newTestServer(t, Services{}).Handler()

	tests := []struct {
		path     string
		wantCode int
		contains string
	}{
		{"/healthz", http.StatusOK, `"status":"ok"`},
		{"/readyz", http.StatusOK, `"status":"ok"`},
		{"/version", http.StatusOK, `"go_version"`},
		{"/metrics", http.StatusOK, "http_requests_in_flight"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "", false)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestServer_RequiresAPIKey(t *testing.T) {
	h := newTestServer(t, Services{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/prices/561", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_PriceRoutes(t *testing.T) {
	priceSvc := mocks.NewMockPriceService(t)
	high, low := 151, 150
	priceSvc.On("Quote", mock.Anything, 561).Return(prices.Quote{
		Item:   prices.Item{ID: 561, Name: "Nature rune"},
		Latest: prices.ItemPrice{High: &high, Low: &low},
		Price:  domain.SomePrice(150),
	}, nil)
	priceSvc.On("Search", mock.Anything, "nature").Return([]prices.Quote{}, nil)

	h := newTestServer(t, Services{Prices: priceSvc}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/prices/561", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nature rune")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	// search must not be captured by the {itemID} route
	rec = do(t, h, http.MethodGet, "/api/v1/prices/search?q=nature", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_HiscoreRoute(t *testing.T) {
	hiscoreSvc := mocks.NewMockHiscoreService(t)
	hiscoreSvc.On("Player", mock.Anything, "zezima").Return(nil, domain.ErrPlayerNotFound)

	h := newTestServer(t, Services{Hiscore: hiscoreSvc}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/hiscore/zezima", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ProfilesDisabled(t *testing.T) {
	h := newTestServer(t, Services{}).Handler()

	for _, path := range []string{"/api/v1/profiles", "/api/v1/profiles/main"} {
		rec := do(t, h, http.MethodGet, path, "", true)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestServer_ProfilesEnabled(t *testing.T) {
	profileSvc := mocks.NewMockProfileService(t)
	profileSvc.On("List", mock.Anything).Return([]domain.HerbProfile{{Name: "main"}}, nil)
	profileSvc.On("Delete", mock.Anything, "main").Return(nil)

	h := newTestServer(t, Services{Profiles: profileSvc}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/profiles", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"main"`)

	rec = do(t, h, http.MethodDelete, "/api/v1/profiles/main", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_BodyLimit(t *testing.T) {
	opts := testOptions()
	opts.MaxBodyBytes = 32
	srv := NewServer(opts, Services{
		Farm:    mocks.NewMockFarmingService(t),
		Prices:  mocks.NewMockPriceService(t),
		Hiscore: mocks.NewMockHiscoreService(t),
	})

	body := `{"config":{"patches":["catherby"]},"player":"` + strings.Repeat("a", 64) + `"}`
	rec := do(t, srv.Handler(), http.MethodPost, "/api/v1/farm/herbs", body, true)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	h := newTestServer(t, Services{}).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
