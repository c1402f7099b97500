package catalog

import (
	"testing"

	"configurator-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ShippedCatalogIsConsistent(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestGetPackage(t *testing.T) {
	pkg, ok := GetPackage(models.ServiceWebsite, "growth")
	assert.True(t, ok)
	assert.Equal(t, "Growth Site", pkg.Name)
	assert.True(t, pkg.MostPopular)

	_, ok = GetPackage(models.ServiceWebsite, "nonexistent")
	assert.False(t, ok)

	_, ok = GetPackage("drone-fleet", "growth")
	assert.False(t, ok)
}

func TestGetPackage_SameIDDiffersAcrossServices(t *testing.T) {
	website, ok := GetPackage(models.ServiceWebsite, "starter")
	assert.True(t, ok)
	app, ok2 := GetPackage(models.ServiceMobileApp, "starter")
	assert.True(t, ok2)

	assert.NotEqual(t, website.Name, app.Name)
}

func TestGetAddOn(t *testing.T) {
	addOn, ok := GetAddOn("ai-chatbot")
	assert.True(t, ok)
	assert.Equal(t, 12500.0, *addOn.PriceZMW.Fixed)
	assert.Equal(t, 500.0, *addOn.PriceUSD.Fixed)

	_, ok = GetAddOn("teleportation")
	assert.False(t, ok)
}

func TestGetHostingPlan(t *testing.T) {
	plan, ok := GetHostingPlan(models.HostingWebsite, "basic")
	assert.True(t, ok)
	assert.Equal(t, 250.0, plan.PriceZMW)

	_, ok = GetHostingPlan(models.HostingApp, "basic")
	assert.False(t, ok, "website plan ids do not exist in the app category")
}

func TestGetServiceBase(t *testing.T) {
	base, ok := GetServiceBase(models.ServiceMobileApp)
	assert.True(t, ok)
	assert.Equal(t, 25000.0, *base.PriceZMW.Fixed)

	_, ok = GetServiceBase(models.ServiceWebsite)
	assert.False(t, ok, "website has no fallback base price")
}

func TestPackages_PreservesAuthoredOrder(t *testing.T) {
	packages := Packages(models.ServiceWebsite)

	ids := make([]string, 0, len(packages))
	for _, p := range packages {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"starter", "growth", "pro", "premium"}, ids)
}

func TestAddOns_PreservesAuthoredOrder(t *testing.T) {
	all := AddOns()

	assert.Len(t, all, 7)
	assert.Equal(t, "ai-chatbot", all[0].ID)
	assert.Equal(t, "whatsapp-bot", all[len(all)-1].ID)
}

func TestHostingPlans(t *testing.T) {
	website := HostingPlans(models.HostingWebsite)
	assert.Len(t, website, 3)
	assert.Equal(t, "basic", website[0].ID)

	assert.Empty(t, HostingPlans("datacenter"))
}
