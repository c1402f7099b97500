package models

// PriceSpec is a catalog entry's price: either a single fixed amount or a
// min/max range. Exactly one of the two forms applies to a given entry.
type PriceSpec struct {
	Fixed *float64 `json:"fixed,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// FixedPrice builds a fixed-amount spec.
func FixedPrice(amount float64) PriceSpec {
	return PriceSpec{Fixed: &amount}
}

// RangedPrice builds a min/max spec.
func RangedPrice(min, max float64) PriceSpec {
	return PriceSpec{Min: &min, Max: &max}
}

func (p PriceSpec) IsFixed() bool {
	return p.Fixed != nil
}

func (p PriceSpec) IsRanged() bool {
	return p.Min != nil && p.Max != nil
}

// Operative returns the amount used in calculation: the fixed amount for a
// fixed spec, the range minimum for a ranged spec. Ranged entries are priced
// "starting from" their minimum.
func (p PriceSpec) Operative() (float64, bool) {
	if p.Fixed != nil {
		return *p.Fixed, true
	}
	if p.Min != nil {
		return *p.Min, true
	}
	return 0, false
}

// PageRange is the page allowance declared by a website package.
type PageRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Package is one purchasable tier inside a service category. IDs are unique
// within their owning category, not globally. ZMW and USD prices are
// independently authored; neither is derived from the other.
type Package struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceZMW    PriceSpec  `json:"price_zmw"`
	PriceUSD    PriceSpec  `json:"price_usd"`
	Pages       *PageRange `json:"pages,omitempty"`
	Features    []string   `json:"features"`
	MostPopular bool       `json:"most_popular,omitempty"`
}

// AddOn is an optional feature with a globally unique id.
type AddOn struct {
	ID       string    `json:"id"`
	PriceZMW PriceSpec `json:"price_zmw"`
	PriceUSD PriceSpec `json:"price_usd"`
}

// HostingPlan is a monthly hosting/maintenance tier. Only a ZMW price is
// authored; the USD figure is always derived through the live exchange rate.
type HostingPlan struct {
	ID       string   `json:"id"`
	PriceZMW float64  `json:"price_zmw"`
	Features []string `json:"features"`
}

// ServiceBase is the per-service fallback price used when a selection names
// a package id that does not exist in the category's table.
type ServiceBase struct {
	PriceZMW PriceSpec `json:"price_zmw"`
	PriceUSD PriceSpec `json:"price_usd"`
	Includes []string  `json:"includes,omitempty"`
}
