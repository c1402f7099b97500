package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"configurator-service/internal/config"
	"configurator-service/internal/models"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fakeRateAPI struct {
	server   *httptest.Server
	requests atomic.Int64
	handler  func(w http.ResponseWriter)
}

func newFakeRateAPI(t *testing.T) *fakeRateAPI {
	f := &fakeRateAPI{}
	f.respondWithRate(26.5)
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		assert.Equal(t, "/test-key/latest/USD", r.URL.Path)
		f.handler(w)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRateAPI) respondWithRate(rate float64) {
	f.handler = func(w http.ResponseWriter) {
		fmt.Fprintf(w, `{"result":"success","conversion_rates":{"ZMW":%v,"EUR":0.92}}`, rate)
	}
}

func (f *fakeRateAPI) respondWithStatus(status int) {
	f.handler = func(w http.ResponseWriter) {
		w.WriteHeader(status)
	}
}

func (f *fakeRateAPI) respondWithBody(body string) {
	f.handler = func(w http.ResponseWriter) {
		fmt.Fprint(w, body)
	}
}

func newTestRateService(f *fakeRateAPI) *ExchangeRateService {
	return NewExchangeRateService(config.ExchangeRateConfig{
		BaseURL: f.server.URL,
		APIKey:  "test-key",
	})
}

// ============================================================================
// TEST SUITE 1: LIVE FETCH AND CACHING
// ============================================================================

func TestGetRate_FetchesLiveRate(t *testing.T) {
	api := newFakeRateAPI(t)
	service := newTestRateService(api)

	rate := service.GetRate(t.Context())

	assert.Equal(t, 26.5, rate.Rate)
	assert.Equal(t, models.RateSourceLive, rate.Source)
	assert.Equal(t, int64(1), api.requests.Load())
}

func TestGetRate_FreshCacheSkipsNetwork(t *testing.T) {
	api := newFakeRateAPI(t)
	service := newTestRateService(api)

	first := service.GetRate(t.Context())
	second := service.GetRate(t.Context())

	assert.Equal(t, first.Rate, second.Rate)
	assert.Equal(t, models.RateSourceCache, second.Source)
	assert.Equal(t, int64(1), api.requests.Load(), "second call must not hit the API")
}

func TestGetRate_ExpiredCacheRefetches(t *testing.T) {
	api := newFakeRateAPI(t)
	service := newTestRateService(api)

	current := time.Now()
	service.now = func() time.Time { return current }

	service.GetRate(t.Context())
	api.respondWithRate(27.1)
	current = current.Add(RateFreshnessWindow + time.Minute)

	refreshed := service.GetRate(t.Context())

	assert.Equal(t, 27.1, refreshed.Rate)
	assert.Equal(t, models.RateSourceLive, refreshed.Source)
	assert.Equal(t, int64(2), api.requests.Load())
}

// ============================================================================
// TEST SUITE 2: DEGRADED PATHS
// ============================================================================

func TestGetRate_FailureWithEmptyCacheUsesFallback(t *testing.T) {
	api := newFakeRateAPI(t)
	api.respondWithStatus(http.StatusInternalServerError)
	service := newTestRateService(api)

	rate := service.GetRate(t.Context())

	assert.Equal(t, FallbackExchangeRate, rate.Rate)
	assert.Equal(t, models.RateSourceFallback, rate.Source)
}

func TestGetRate_FailurePrefersStaleCacheOverFallback(t *testing.T) {
	api := newFakeRateAPI(t)
	service := newTestRateService(api)

	current := time.Now()
	service.now = func() time.Time { return current }

	service.GetRate(t.Context())
	api.respondWithStatus(http.StatusServiceUnavailable)
	current = current.Add(2 * RateFreshnessWindow)

	rate := service.GetRate(t.Context())

	assert.Equal(t, 26.5, rate.Rate, "stale cached rate beats the fallback constant")
	assert.Equal(t, models.RateSourceCache, rate.Source)
}

func TestGetRate_MalformedBodyUsesFallback(t *testing.T) {
	api := newFakeRateAPI(t)
	api.respondWithBody("not json at all")
	service := newTestRateService(api)

	rate := service.GetRate(t.Context())

	assert.Equal(t, FallbackExchangeRate, rate.Rate)
	assert.Equal(t, models.RateSourceFallback, rate.Source)
}

func TestGetRate_MissingCurrencyUsesFallback(t *testing.T) {
	api := newFakeRateAPI(t)
	api.respondWithBody(`{"result":"success","conversion_rates":{"EUR":0.92}}`)
	service := newTestRateService(api)

	rate := service.GetRate(t.Context())

	assert.Equal(t, FallbackExchangeRate, rate.Rate)
	assert.Equal(t, models.RateSourceFallback, rate.Source)
}

func TestGetRate_NonPositiveRateUsesFallback(t *testing.T) {
	api := newFakeRateAPI(t)
	api.respondWithRate(-3)
	service := newTestRateService(api)

	rate := service.GetRate(t.Context())

	assert.Equal(t, FallbackExchangeRate, rate.Rate)
	assert.Equal(t, models.RateSourceFallback, rate.Source)
}

func TestGetRate_InvalidRateIsNotCached(t *testing.T) {
	api := newFakeRateAPI(t)
	api.respondWithRate(0)
	service := newTestRateService(api)

	service.GetRate(t.Context())
	api.respondWithRate(26.0)

	rate := service.GetRate(t.Context())

	assert.Equal(t, 26.0, rate.Rate, "rejected rate must not poison the cache")
	assert.Equal(t, models.RateSourceLive, rate.Source)
}
