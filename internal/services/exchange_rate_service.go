package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"configurator-service/internal/config"
	"configurator-service/internal/models"
)

const (
	// LocalCurrencyCode is the currency quoted against 1 USD.
	LocalCurrencyCode = "ZMW"

	// FallbackExchangeRate is used when no live or cached rate is available.
	FallbackExchangeRate = 25.0

	// RateFreshnessWindow is how long a fetched rate is served without a new
	// network call. Cost control on the rate API, not an optimization.
	RateFreshnessWindow = time.Hour

	rateFetchTimeout = 10 * time.Second
)

// ExchangeRateService supplies the USD→ZMW rate with a single cache slot and
// a fixed fallback. GetRate never fails: a degraded (stale or fallback) rate
// is the documented recovery path.
type ExchangeRateService struct {
	cfg        config.ExchangeRateConfig
	httpClient *http.Client
	now        func() time.Time

	mu     sync.Mutex
	cached *models.ExchangeRate
}

type IExchangeRateService interface {
	GetRate(ctx context.Context) models.ExchangeRate
}

func NewExchangeRateService(cfg config.ExchangeRateConfig) *ExchangeRateService {
	return &ExchangeRateService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: rateFetchTimeout},
		now:        time.Now,
	}
}

type exchangeRateResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// GetRate returns the current USD→ZMW rate. A cache hit inside the
// freshness window is served without any network call. On a miss the remote
// table is fetched once; any failure degrades to the previously cached rate
// (staleness is preferable to failure) or, with an empty cache, to the
// fallback constant. Concurrent callers on a miss may each fetch; all
// results are equally valid snapshots and the last writer wins.
func (s *ExchangeRateService) GetRate(ctx context.Context) models.ExchangeRate {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.cached.CapturedAt) < RateFreshnessWindow {
		snapshot := *s.cached
		s.mu.Unlock()
		snapshot.Source = models.RateSourceCache
		return snapshot
	}
	s.mu.Unlock()

	rate, err := s.fetchRate(ctx)
	if err != nil {
		slog.Warn("exchange rate fetch failed, serving degraded rate", "error", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cached != nil {
			stale := *s.cached
			stale.Source = models.RateSourceCache
			return stale
		}
		return models.ExchangeRate{
			Rate:       FallbackExchangeRate,
			CapturedAt: s.now(),
			Source:     models.RateSourceFallback,
		}
	}

	snapshot := models.ExchangeRate{
		Rate:       rate,
		CapturedAt: s.now(),
		Source:     models.RateSourceLive,
	}
	s.mu.Lock()
	s.cached = &snapshot
	s.mu.Unlock()
	return snapshot
}

func (s *ExchangeRateService) fetchRate(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/%s/latest/USD", s.cfg.BaseURL, s.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call exchange rate API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read rate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var parsed exchangeRateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse rate response: %w", err)
	}

	rate, ok := parsed.ConversionRates[LocalCurrencyCode]
	if !ok {
		return 0, fmt.Errorf("rate table has no %s entry", LocalCurrencyCode)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("invalid %s rate %v", LocalCurrencyCode, rate)
	}

	return rate, nil
}
