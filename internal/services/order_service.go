package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"configurator-service/internal/catalog"
	"configurator-service/internal/config"
	"configurator-service/internal/event"
	"configurator-service/internal/models"
	"configurator-service/internal/repository"

	"github.com/google/uuid"
)

// OrderService turns a completed selection into a persisted order. The
// price written to the order comes from the calculator and nowhere else.
type OrderService struct {
	repo      *repository.OrderRepository
	rates     IExchangeRateService
	calc      *PriceCalculator
	publisher *event.OrderPublisher
	cfg       *config.ConfiguratorConfig
}

// NewOrderService accepts a nil publisher; order submission then skips the
// notification event.
func NewOrderService(repo *repository.OrderRepository, rates IExchangeRateService, calc *PriceCalculator, publisher *event.OrderPublisher, cfg *config.ConfiguratorConfig) *OrderService {
	return &OrderService{
		repo:      repo,
		rates:     rates,
		calc:      calc,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderResponse, error) {
	if !req.ServiceType.IsValid() {
		return nil, fmt.Errorf("invalid service type %q", req.ServiceType)
	}

	rate := s.rates.GetRate(ctx)
	price := s.calc.Calculate(req.ServiceType, req.PackageID, req.Customizations, rate.Rate)

	order := &models.Order{
		ID:                 uuid.New(),
		ServiceType:        req.ServiceType,
		PackageID:          req.PackageID,
		Customizations:     req.Customizations,
		ProjectDescription: req.ProjectDescription,
		TotalZMW:           price.TotalZMW,
		TotalUSD:           price.TotalUSD,
		ExchangeRate:       price.ExchangeRate,
		Status:             models.OrderSubmitted,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		err := s.publisher.PublishOrderSubmitted(ctx, event.OrderSubmittedEvent{
			OrderID:      order.ID,
			ServiceType:  order.ServiceType,
			PackageID:    order.PackageID,
			TotalZMW:     order.TotalZMW,
			TotalUSD:     order.TotalUSD,
			ExchangeRate: order.ExchangeRate,
			AddOns:       order.Customizations.AddOns,
			SubmittedAt:  time.Now(),
		})
		if err != nil {
			// The order is already persisted; a lost notification is not
			// worth failing the submission over.
			slog.Warn("failed to publish order event", "order_id", order.ID, "error", err)
		}
	}

	return &models.OrderResponse{
		Order:        *order,
		Price:        price,
		WhatsAppLink: s.WhatsAppLink(order, price),
		CalendlyURL:  s.cfg.CalendlyURL,
	}, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	return s.repo.GetByID(id)
}

func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.repo.GetAll()
}

// UpdateOrderStatus moves an order to a new lifecycle status and returns
// the updated order.
func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status %q", status)
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// WhatsAppLink builds the wa.me handoff URL carrying the order summary.
func (s *OrderService) WhatsAppLink(order *models.Order, price models.CalculatedPrice) string {
	message := whatsAppMessage(order, price)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.WhatsAppNumber, url.QueryEscape(message))
}

func whatsAppMessage(order *models.Order, price models.CalculatedPrice) string {
	var b strings.Builder

	b.WriteString("Hello Byte&Berry!\n\nI'm interested in:\n")
	fmt.Fprintf(&b, "• Service: %s", order.ServiceType.DisplayName())

	if order.PackageID != "" {
		packageName := order.PackageID
		if pkg, ok := catalog.GetPackage(order.ServiceType, order.PackageID); ok {
			packageName = pkg.Name
		}
		fmt.Fprintf(&b, "\nPackage: %s", packageName)
	}

	fmt.Fprintf(&b, "\n• Total: %s (≈$%.0f)", formatZMW(price.TotalZMW), price.TotalUSD)

	if len(order.Customizations.AddOns) > 0 {
		b.WriteString("\n\nSelected Features:")
		for _, addOn := range order.Customizations.AddOns {
			fmt.Fprintf(&b, "\n• %s", featureLabel(addOn))
		}
	}

	b.WriteString("\n\nLet's discuss this further!")
	return b.String()
}
