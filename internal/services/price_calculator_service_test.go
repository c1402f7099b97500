package services

import (
	"testing"

	"configurator-service/internal/models"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func intPtr(v int) *int {
	return &v
}

func websiteGrowthSelection() models.Customizations {
	return models.Customizations{
		AddOns:          []string{"ai-chatbot"},
		HostingPlan:     "basic",
		HostingCategory: models.HostingWebsite,
	}
}

// ============================================================================
// TEST SUITE 1: END-TO-END SELECTIONS
// ============================================================================

func TestCalculate_WebsiteGrowthWithChatbotAndHosting(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate(models.ServiceWebsite, "growth", websiteGrowthSelection(), 25.0)

	assert.Equal(t, 27750.0, price.TotalZMW, "15000 base + 12500 chatbot + 250 hosting")
	assert.Equal(t, 1110.0, price.TotalUSD, "600 base + 500 chatbot + 10 hosting")
	assert.Equal(t, 25.0, price.ExchangeRate)
	assert.Equal(t, 15000.0, price.Breakdown.Base.ZMW)
	assert.Equal(t, 600.0, price.Breakdown.Base.USD)
	assert.Equal(t, 12500.0, price.Breakdown.AddOns.ZMW)
	assert.Equal(t, 500.0, price.Breakdown.AddOns.USD)
	assert.Equal(t, 250.0, price.Breakdown.Hosting.ZMW)
	assert.Equal(t, 10.0, price.Breakdown.Hosting.USD)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	calc := NewPriceCalculator()
	cust := websiteGrowthSelection()

	first := calc.Calculate(models.ServiceWebsite, "growth", cust, 25.0)
	second := calc.Calculate(models.ServiceWebsite, "growth", cust, 25.0)

	assert.Equal(t, first, second)
}

func TestCalculate_TotalsMatchBreakdownSums(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{
		AddOns:          []string{"ai-chatbot", "payment-gateway", "user-authentication"},
		HostingPlan:     "pro",
		HostingCategory: models.HostingWebsite,
	}

	price := calc.Calculate(models.ServiceWebsite, "pro", cust, 27.5)

	assert.Equal(t, price.Breakdown.Base.ZMW+price.Breakdown.AddOns.ZMW+price.Breakdown.Hosting.ZMW, price.TotalZMW)
	assert.Equal(t, price.Breakdown.Base.USD+price.Breakdown.AddOns.USD+price.Breakdown.Hosting.USD, price.TotalUSD)
}

// ============================================================================
// TEST SUITE 2: BASE PRICE RESOLUTION
// ============================================================================

func TestCalculate_FixedPackageUsesStaticFigures(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate(models.ServiceWebsite, "starter", models.Customizations{}, 25.0)

	assert.Equal(t, 7500.0, price.TotalZMW)
	assert.Equal(t, 300.0, price.TotalUSD)
}

func TestCalculate_RangedPackageUsesMinimum(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate(models.ServiceEnterprise, "professional", models.Customizations{}, 25.0)

	assert.Equal(t, 125000.0, price.TotalZMW)
	assert.Equal(t, 5000.0, price.TotalUSD)
}

func TestCalculate_EmptyPackageContributesNothing(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{
		AddOns:          []string{"ai-chatbot"},
		HostingPlan:     "basic",
		HostingCategory: models.HostingWebsite,
	}

	price := calc.Calculate(models.ServiceWebsite, "", cust, 25.0)

	assert.Equal(t, 0.0, price.Breakdown.Base.ZMW)
	assert.Equal(t, 12750.0, price.TotalZMW, "add-ons and hosting still priced")
	assert.Equal(t, 510.0, price.TotalUSD)
}

func TestCalculate_UnknownPackageFallsBackToServiceBase(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate(models.ServiceMobileApp, "nonexistent", models.Customizations{}, 25.0)

	assert.Equal(t, 25000.0, price.TotalZMW)
	assert.Equal(t, 1000.0, price.TotalUSD)
}

func TestCalculate_UnknownWebsitePackageHasNoFallback(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate(models.ServiceWebsite, "nonexistent", models.Customizations{}, 25.0)

	assert.Equal(t, 0.0, price.TotalZMW)
	assert.Equal(t, 0.0, price.TotalUSD)
}

func TestCalculate_NoServiceYieldsZeroWithRatePreserved(t *testing.T) {
	calc := NewPriceCalculator()

	price := calc.Calculate("", "growth", websiteGrowthSelection(), 26.4)

	assert.Equal(t, 0.0, price.TotalZMW)
	assert.Equal(t, 0.0, price.TotalUSD)
	assert.Equal(t, 26.4, price.ExchangeRate)
}

// ============================================================================
// TEST SUITE 3: PAGE OVERAGE
// ============================================================================

func TestCalculate_PagesAboveMaxChargeSurcharge(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{Pages: intPtr(5)}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 7500.0+2*ExtraPageCostZMW, price.TotalZMW, "2 pages over the starter max of 3")
	assert.Equal(t, 300.0+2*ExtraPageCostUSD, price.TotalUSD)
}

func TestCalculate_PagesWithinRangeAreFree(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{Pages: intPtr(3)}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 7500.0, price.TotalZMW)
}

func TestCalculate_PageOverageOnlyAppliesToWebsites(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{Pages: intPtr(50)}

	price := calc.Calculate(models.ServiceMobileApp, "starter", cust, 25.0)

	assert.Equal(t, 25000.0, price.TotalZMW, "mobile app packages never charge page overage")
}

// ============================================================================
// TEST SUITE 4: ADD-ONS AND HOSTING
// ============================================================================

func TestCalculate_UnknownAddOnIsSkipped(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{AddOns: []string{"ai-chatbot", "does-not-exist"}}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 7500.0+12500.0, price.TotalZMW, "unknown id contributes nothing")
	assert.Equal(t, 300.0+500.0, price.TotalUSD)
}

func TestCalculate_RangedAddOnUsesMinimum(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{AddOns: []string{"payment-gateway"}}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 6250.0, price.Breakdown.AddOns.ZMW)
	assert.Equal(t, 250.0, price.Breakdown.AddOns.USD)
}

func TestCalculate_HostingUSDAlwaysDerivedFromRate(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{
		HostingPlan:     "scale",
		HostingCategory: models.HostingApp,
	}

	price := calc.Calculate(models.ServiceMobileApp, "starter", cust, 30.0)

	assert.Equal(t, 7500.0, price.Breakdown.Hosting.ZMW)
	assert.InDelta(t, 7500.0/30.0, price.Breakdown.Hosting.USD, 0.0001)
}

func TestCalculate_UnknownHostingPlanIsSkipped(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{
		HostingPlan:     "platinum",
		HostingCategory: models.HostingWebsite,
	}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 0.0, price.Breakdown.Hosting.ZMW)
	assert.Equal(t, 7500.0, price.TotalZMW)
}

func TestCalculate_HostingCategoryRequired(t *testing.T) {
	calc := NewPriceCalculator()
	cust := models.Customizations{HostingPlan: "basic"}

	price := calc.Calculate(models.ServiceWebsite, "starter", cust, 25.0)

	assert.Equal(t, 0.0, price.Breakdown.Hosting.ZMW)
}
