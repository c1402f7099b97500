package services

import (
	"testing"

	"configurator-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "250", formatAmount(250))
	assert.Equal(t, "7,500", formatAmount(7500))
	assert.Equal(t, "1,250,000", formatAmount(1250000))
	assert.Equal(t, "27,750", formatAmount(27750))
	assert.Equal(t, "1,234.56", formatAmount(1234.56))
}

func TestFormatZMW(t *testing.T) {
	assert.Equal(t, "K15,000", formatZMW(15000))
	assert.Equal(t, "K0", formatZMW(0))
}

func TestFormatSpecZMW(t *testing.T) {
	assert.Equal(t, "K7,500", formatSpecZMW(models.FixedPrice(7500)))
	assert.Equal(t, "K15,000-22,500", formatSpecZMW(models.RangedPrice(15000, 22500)))
	assert.Equal(t, "K0", formatSpecZMW(models.PriceSpec{}))
}

func TestFeatureLabel(t *testing.T) {
	assert.Equal(t, "Ai Chatbot", featureLabel("ai-chatbot"))
	assert.Equal(t, "Payment Gateway", featureLabel("payment-gateway"))
	assert.Equal(t, "Analytics", featureLabel("analytics"))
}
