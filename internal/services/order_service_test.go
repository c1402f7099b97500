package services

import (
	"net/url"
	"strings"
	"testing"

	"configurator-service/internal/config"
	"configurator-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		ServiceType: models.ServiceWebsite,
		PackageID:   "growth",
		Customizations: models.Customizations{
			AddOns:          []string{"ai-chatbot"},
			HostingPlan:     "basic",
			HostingCategory: models.HostingWebsite,
		},
	}
}

func TestWhatsAppLink_CarriesNumberAndEncodedSummary(t *testing.T) {
	service := &OrderService{cfg: &config.ConfiguratorConfig{WhatsAppNumber: "0760580949"}}
	order := testOrder()
	price := NewPriceCalculator().Calculate(order.ServiceType, order.PackageID, order.Customizations, 25.0)

	link := service.WhatsAppLink(order, price)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/0760580949?text="))

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	message := parsed.Query().Get("text")
	assert.Contains(t, message, "Hello Byte&Berry!")
	assert.Contains(t, message, "Service: Website")
	assert.Contains(t, message, "Package: Growth Site")
	assert.Contains(t, message, "Total: K27,750")
	assert.Contains(t, message, "Ai Chatbot")
}

func TestWhatsAppMessage_OmitsEmptySections(t *testing.T) {
	order := &models.Order{
		ID:          uuid.New(),
		ServiceType: models.ServiceConsultancy,
	}
	price := NewPriceCalculator().Calculate(order.ServiceType, "", order.Customizations, 25.0)

	message := whatsAppMessage(order, price)

	assert.Contains(t, message, "Service: "+models.ServiceConsultancy.DisplayName())
	assert.NotContains(t, message, "Package:")
	assert.NotContains(t, message, "Selected Features:")
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	service := &OrderService{}

	_, err := service.UpdateOrderStatus(uuid.New(), "shipped")

	assert.ErrorContains(t, err, "invalid order status")
}

func TestWhatsAppMessage_UnknownPackageKeepsRawID(t *testing.T) {
	order := testOrder()
	order.PackageID = "custom-quote"
	price := NewPriceCalculator().Calculate(order.ServiceType, order.PackageID, order.Customizations, 25.0)

	message := whatsAppMessage(order, price)

	assert.Contains(t, message, "Package: custom-quote")
}
