package event

import (
	"time"

	"configurator-service/internal/models"

	"github.com/google/uuid"
)

// OrderEventQueue carries order-submitted events to the sales team's
// notification pipeline.
const OrderEventQueue = "order_submitted_events"

// OrderSubmittedEvent is published once per completed configurator order.
type OrderSubmittedEvent struct {
	OrderID      uuid.UUID          `json:"order_id"`
	ServiceType  models.ServiceType `json:"service_type"`
	PackageID    string             `json:"package_id"`
	TotalZMW     float64            `json:"total_zmw"`
	TotalUSD     float64            `json:"total_usd"`
	ExchangeRate float64            `json:"exchange_rate"`
	AddOns       []string           `json:"add_ons,omitempty"`
	SubmittedAt  time.Time          `json:"submitted_at"`
}
