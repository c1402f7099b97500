package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Customizations is the per-session selection record. AddOns keeps insertion
// order; pricing does not depend on it but display does. Platform, Modules
// and NumberOfUsers only affect documents, never the price.
type Customizations struct {
	Pages           *int            `json:"pages,omitempty"`
	AddOns          []string        `json:"add_ons"`
	HostingPlan     string          `json:"hosting_plan,omitempty"`
	HostingCategory HostingCategory `json:"hosting_category,omitempty"`
	Platform        Platform        `json:"platform,omitempty"`
	Modules         []string        `json:"modules,omitempty"`
	NumberOfUsers   *int            `json:"number_of_users,omitempty"`
}

// Value stores customizations as a JSONB column.
func (c Customizations) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Customizations) Scan(value any) error {
	if value == nil {
		*c = Customizations{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("customizations: Scan failed, expected []byte but got %T", value)
	}
	return json.Unmarshal(b, c)
}

// Order is a completed configurator session with its authoritative price.
type Order struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	ServiceType        ServiceType    `json:"service_type" db:"service_type"`
	PackageID          string         `json:"package_id" db:"package_id"`
	Customizations     Customizations `json:"customizations" db:"customizations"`
	ProjectDescription string         `json:"project_description,omitempty" db:"project_description"`
	TotalZMW           float64        `json:"total_zmw" db:"total_zmw"`
	TotalUSD           float64        `json:"total_usd" db:"total_usd"`
	ExchangeRate       float64        `json:"exchange_rate" db:"exchange_rate"`
	Status             OrderStatus    `json:"status" db:"status"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`
}

// Selection is the live, not-yet-submitted state of one configurator
// session. The price is re-derived whenever any field changes.
type Selection struct {
	ServiceType        ServiceType    `json:"service_type,omitempty"`
	PackageID          string         `json:"package_id,omitempty"`
	Customizations     Customizations `json:"customizations"`
	ProjectDescription string         `json:"project_description,omitempty"`
}

// Session wraps a selection with identity and the most recently derived
// price.
type Session struct {
	ID        uuid.UUID        `json:"id"`
	Selection Selection        `json:"selection"`
	Price     *CalculatedPrice `json:"price,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
