package catalog

import (
	"fmt"

	"configurator-service/internal/models"
)

// Validate checks the shipped pricing table against its invariants. It is
// run once at startup; a non-nil error means the table is unusable.
func Validate() error {
	for service, ids := range packageOrder {
		table := packagesByService[service]
		if len(ids) != len(table) {
			return fmt.Errorf("catalog: %s package order lists %d ids, table has %d", service, len(ids), len(table))
		}
		for _, id := range ids {
			pkg, ok := table[id]
			if !ok {
				return fmt.Errorf("catalog: %s package order names unknown id %q", service, id)
			}
			if pkg.ID != id {
				return fmt.Errorf("catalog: %s package %q carries mismatched id %q", service, id, pkg.ID)
			}
			if err := validateSpec(pkg.PriceZMW); err != nil {
				return fmt.Errorf("catalog: %s package %q ZMW price: %w", service, id, err)
			}
			if err := validateSpec(pkg.PriceUSD); err != nil {
				return fmt.Errorf("catalog: %s package %q USD price: %w", service, id, err)
			}
			if pkg.Pages != nil && (pkg.Pages.Min < 0 || pkg.Pages.Max < pkg.Pages.Min) {
				return fmt.Errorf("catalog: %s package %q has invalid page range %d..%d", service, id, pkg.Pages.Min, pkg.Pages.Max)
			}
		}
	}

	if len(addOnOrder) != len(addOns) {
		return fmt.Errorf("catalog: add-on order lists %d ids, table has %d", len(addOnOrder), len(addOns))
	}
	for _, id := range addOnOrder {
		a, ok := addOns[id]
		if !ok {
			return fmt.Errorf("catalog: add-on order names unknown id %q", id)
		}
		if a.ID != id {
			return fmt.Errorf("catalog: add-on %q carries mismatched id %q", id, a.ID)
		}
		if err := validateSpec(a.PriceZMW); err != nil {
			return fmt.Errorf("catalog: add-on %q ZMW price: %w", id, err)
		}
		if err := validateSpec(a.PriceUSD); err != nil {
			return fmt.Errorf("catalog: add-on %q USD price: %w", id, err)
		}
	}

	for category, ids := range hostingOrder {
		table := hostingPlans[category]
		if len(ids) != len(table) {
			return fmt.Errorf("catalog: %s hosting order lists %d ids, table has %d", category, len(ids), len(table))
		}
		for _, id := range ids {
			plan, ok := table[id]
			if !ok {
				return fmt.Errorf("catalog: %s hosting order names unknown id %q", category, id)
			}
			if plan.ID != id {
				return fmt.Errorf("catalog: %s hosting plan %q carries mismatched id %q", category, id, plan.ID)
			}
			if plan.PriceZMW < 0 {
				return fmt.Errorf("catalog: %s hosting plan %q has negative price", category, id)
			}
		}
	}

	for service, base := range serviceBases {
		if err := validateSpec(base.PriceZMW); err != nil {
			return fmt.Errorf("catalog: %s service base ZMW price: %w", service, err)
		}
		if err := validateSpec(base.PriceUSD); err != nil {
			return fmt.Errorf("catalog: %s service base USD price: %w", service, err)
		}
	}

	return nil
}

// validateSpec enforces the exactly-one-of invariant plus non-negativity.
func validateSpec(p models.PriceSpec) error {
	switch {
	case p.Fixed != nil:
		if p.Min != nil || p.Max != nil {
			return fmt.Errorf("both fixed and ranged forms present")
		}
		if *p.Fixed < 0 {
			return fmt.Errorf("negative fixed amount %v", *p.Fixed)
		}
	case p.Min != nil && p.Max != nil:
		if *p.Min < 0 {
			return fmt.Errorf("negative range minimum %v", *p.Min)
		}
		if *p.Max < *p.Min {
			return fmt.Errorf("range maximum %v below minimum %v", *p.Max, *p.Min)
		}
	default:
		return fmt.Errorf("neither fixed nor ranged form present")
	}
	return nil
}
