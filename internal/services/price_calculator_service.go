package services

import (
	"log/slog"

	"configurator-service/internal/catalog"
	"configurator-service/internal/models"
)

const (
	// Surcharge per page above a website package's declared maximum. Fixed
	// constants in both currencies, never rate-derived.
	ExtraPageCostZMW = 2000.0
	ExtraPageCostUSD = 80.0
)

// PriceCalculator turns a selection plus a current exchange rate into an
// itemized dual-currency total. The arithmetic is pure and deterministic:
// the catalog is static and no state is held here.
type PriceCalculator struct{}

func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// Calculate derives the price for the given selection. rate must be a
// positive finite number; the exchange rate service's contract guarantees
// that. Missing catalog references never fail the computation, they degrade
// to a zero contribution on their breakdown line.
func (pc *PriceCalculator) Calculate(serviceType models.ServiceType, packageID string, cust models.Customizations, rate float64) models.CalculatedPrice {
	if serviceType == "" {
		return models.ZeroPrice(rate)
	}

	baseZMW, baseUSD := pc.basePrice(serviceType, packageID, cust, rate)
	addOnsZMW, addOnsUSD := pc.addOnTotals(cust.AddOns, rate)
	hostingZMW, hostingUSD := pc.hostingTotals(cust, rate)

	baseZMW, baseUSD = clamp(baseZMW), clamp(baseUSD)
	addOnsZMW, addOnsUSD = clamp(addOnsZMW), clamp(addOnsUSD)
	hostingZMW, hostingUSD = clamp(hostingZMW), clamp(hostingUSD)

	return models.CalculatedPrice{
		TotalZMW:     baseZMW + addOnsZMW + hostingZMW,
		TotalUSD:     baseUSD + addOnsUSD + hostingUSD,
		ExchangeRate: rate,
		Breakdown: models.PriceBreakdown{
			Base:    models.MoneyPair{ZMW: baseZMW, USD: baseUSD},
			AddOns:  models.MoneyPair{ZMW: addOnsZMW, USD: addOnsUSD},
			Hosting: models.MoneyPair{ZMW: hostingZMW, USD: hostingUSD},
		},
	}
}

// basePrice resolves the package's operative price and, for websites, the
// page overage surcharge. The USD figure is the statically authored one when
// present, otherwise ZMW/rate. An unknown package id falls back to the
// service's flat base price where one is defined.
func (pc *PriceCalculator) basePrice(serviceType models.ServiceType, packageID string, cust models.Customizations, rate float64) (float64, float64) {
	if packageID == "" {
		return 0, 0
	}

	pkg, ok := catalog.GetPackage(serviceType, packageID)
	if !ok {
		base, ok := catalog.GetServiceBase(serviceType)
		if !ok {
			slog.Warn("unknown package with no service base price",
				"service", serviceType, "package", packageID)
			return 0, 0
		}
		slog.Warn("unknown package, using service base price",
			"service", serviceType, "package", packageID)
		return resolveSpecPair(base.PriceZMW, base.PriceUSD, rate)
	}

	zmw, usd := resolveSpecPair(pkg.PriceZMW, pkg.PriceUSD, rate)

	if serviceType == models.ServiceWebsite {
		extraZMW, extraUSD := pageOverage(pkg, cust.Pages)
		zmw += extraZMW
		usd += extraUSD
	}

	return zmw, usd
}

// resolveSpecPair picks the operative ZMW amount and the matching USD
// amount. When no static USD figure is authored for the operative form, the
// USD amount is derived from ZMW through the live rate. The two paths can
// diverge from each other for the same package; both are kept deliberately.
func resolveSpecPair(zmwSpec, usdSpec models.PriceSpec, rate float64) (float64, float64) {
	switch {
	case zmwSpec.Fixed != nil:
		zmw := *zmwSpec.Fixed
		if usdSpec.Fixed != nil {
			return zmw, *usdSpec.Fixed
		}
		return zmw, zmw / rate
	case zmwSpec.Min != nil:
		zmw := *zmwSpec.Min
		if usdSpec.Min != nil {
			return zmw, *usdSpec.Min
		}
		return zmw, zmw / rate
	}
	return 0, 0
}

// pageOverage charges each page above the package's declared maximum. A
// package without a page range is treated as unbounded.
func pageOverage(pkg models.Package, pages *int) (float64, float64) {
	if pkg.Pages == nil || pages == nil {
		return 0, 0
	}
	if *pages <= pkg.Pages.Max {
		return 0, 0
	}
	extra := float64(*pages - pkg.Pages.Max)
	return extra * ExtraPageCostZMW, extra * ExtraPageCostUSD
}

// addOnTotals sums the selected add-ons in both currencies. Ranged add-ons
// contribute their minimum. Unknown ids are skipped with a log line.
func (pc *PriceCalculator) addOnTotals(ids []string, rate float64) (float64, float64) {
	var zmw, usd float64
	for _, id := range ids {
		addOn, ok := catalog.GetAddOn(id)
		if !ok {
			slog.Warn("unknown add-on id skipped", "add_on", id)
			continue
		}
		z, u := resolveSpecPair(addOn.PriceZMW, addOn.PriceUSD, rate)
		zmw += z
		usd += u
	}
	return zmw, usd
}

// hostingTotals attaches the selected hosting plan. Hosting has no static
// USD price; the USD figure is always ZMW converted through the live rate.
func (pc *PriceCalculator) hostingTotals(cust models.Customizations, rate float64) (float64, float64) {
	if cust.HostingPlan == "" || cust.HostingCategory == "" {
		return 0, 0
	}
	plan, ok := catalog.GetHostingPlan(cust.HostingCategory, cust.HostingPlan)
	if !ok {
		slog.Warn("unknown hosting plan skipped",
			"category", cust.HostingCategory, "plan", cust.HostingPlan)
		return 0, 0
	}
	return plan.PriceZMW, plan.PriceZMW / rate
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
