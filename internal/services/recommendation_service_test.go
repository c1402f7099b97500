package services

import (
	"strings"
	"testing"

	"configurator-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_WithoutAIClientServesFallback(t *testing.T) {
	service := NewRecommendationService(nil)

	text := service.Recommend(t.Context(), "I need a shop website")

	assert.Equal(t, recommendationFallback, text)
}

func TestContractTerms_WithoutAIClientServesStaticTerms(t *testing.T) {
	service := NewRecommendationService(nil)
	order := models.Order{
		ServiceType: models.ServiceWebsite,
		TotalZMW:    27750,
	}

	terms := service.ContractTerms(t.Context(), order)

	assert.Contains(t, terms, "Scope of Work")
	assert.Contains(t, terms, "K27,750")
	assert.Contains(t, terms, "Website")
}

func TestInvoiceDescription_WithoutAIClientServesStaticText(t *testing.T) {
	service := NewRecommendationService(nil)

	desc := service.InvoiceDescription(t.Context(), models.Order{ServiceType: models.ServiceWebsite})

	assert.Contains(t, desc, "Base Package")
}

func TestCatalogSummary_CoversEveryService(t *testing.T) {
	summary := catalogSummary()

	for _, service := range models.AllServiceTypes {
		assert.Contains(t, summary, strings.ToUpper(service.DisplayName()))
	}
	assert.Contains(t, summary, "Growth Site (K15,000-22,500)")
}
