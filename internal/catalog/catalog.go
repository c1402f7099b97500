// Package catalog holds the static pricing table consulted by the price
// calculator. It is loaded once, validated at startup and read-only
// afterwards.
package catalog

import "configurator-service/internal/models"

// GetPackage looks up a package inside the given service category.
func GetPackage(service models.ServiceType, packageID string) (models.Package, bool) {
	table, ok := packagesByService[service]
	if !ok {
		return models.Package{}, false
	}
	pkg, ok := table[packageID]
	return pkg, ok
}

// GetAddOn looks up an add-on by its globally unique id.
func GetAddOn(id string) (models.AddOn, bool) {
	a, ok := addOns[id]
	return a, ok
}

// GetHostingPlan looks up a hosting plan inside a hosting category.
func GetHostingPlan(category models.HostingCategory, planID string) (models.HostingPlan, bool) {
	table, ok := hostingPlans[category]
	if !ok {
		return models.HostingPlan{}, false
	}
	plan, ok := table[planID]
	return plan, ok
}

// GetServiceBase returns the service's flat fallback price, used when a
// selection carries a package id the category does not know. Not every
// service defines one.
func GetServiceBase(service models.ServiceType) (models.ServiceBase, bool) {
	base, ok := serviceBases[service]
	return base, ok
}

// Packages returns a category's packages in authoring order.
func Packages(service models.ServiceType) []models.Package {
	ids, ok := packageOrder[service]
	if !ok {
		return nil
	}
	out := make([]models.Package, 0, len(ids))
	for _, id := range ids {
		out = append(out, packagesByService[service][id])
	}
	return out
}

// AddOns returns every add-on in authoring order.
func AddOns() []models.AddOn {
	out := make([]models.AddOn, 0, len(addOnOrder))
	for _, id := range addOnOrder {
		out = append(out, addOns[id])
	}
	return out
}

// HostingPlans returns a hosting category's plans in authoring order.
func HostingPlans(category models.HostingCategory) []models.HostingPlan {
	ids, ok := hostingOrder[category]
	if !ok {
		return nil
	}
	out := make([]models.HostingPlan, 0, len(ids))
	for _, id := range ids {
		out = append(out, hostingPlans[category][id])
	}
	return out
}
