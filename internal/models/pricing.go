package models

import "time"

type RateSource string

const (
	RateSourceLive     RateSource = "live"
	RateSourceCache    RateSource = "cache"
	RateSourceFallback RateSource = "fallback"
)

// ExchangeRate is a USD→ZMW conversion rate snapshot. Rate is always a
// positive finite number; the provider guarantees it.
type ExchangeRate struct {
	Rate       float64    `json:"rate"`
	CapturedAt time.Time  `json:"captured_at"`
	Source     RateSource `json:"source"`
}

// MoneyPair carries the same nominal amount in both currencies.
type MoneyPair struct {
	ZMW float64 `json:"zmw"`
	USD float64 `json:"usd"`
}

// PriceBreakdown decomposes a total into its three subtotals. The pairs sum
// to the total in each currency.
type PriceBreakdown struct {
	Base    MoneyPair `json:"base"`
	AddOns  MoneyPair `json:"add_ons"`
	Hosting MoneyPair `json:"hosting"`
}

// CalculatedPrice is the calculator's output: an itemized dual-currency
// total plus the exchange rate it was computed against.
type CalculatedPrice struct {
	TotalZMW     float64        `json:"total_zmw"`
	TotalUSD     float64        `json:"total_usd"`
	ExchangeRate float64        `json:"exchange_rate"`
	Breakdown    PriceBreakdown `json:"breakdown"`
}

// ZeroPrice returns an all-zero result that still records the rate it was
// derived against. Used for incomplete selections.
func ZeroPrice(rate float64) CalculatedPrice {
	return CalculatedPrice{ExchangeRate: rate}
}
