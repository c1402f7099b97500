package worker

import (
	"context"
	"log/slog"

	"configurator-service/internal/services"
)

// NewRateWarmJob keeps the exchange rate cache warm so that interactive
// quote requests rarely pay the cost of a live fetch.
func NewRateWarmJob(rates services.IExchangeRateService) Job {
	return Job{
		Name: "exchange_rate_warm",
		Run: func(ctx context.Context) {
			rate := rates.GetRate(ctx)
			slog.Debug("Exchange rate refreshed",
				"rate", rate.Rate,
				"source", rate.Source)
		},
	}
}
