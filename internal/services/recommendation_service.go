package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"configurator-service/internal/ai/gemini"
	"configurator-service/internal/catalog"
	"configurator-service/internal/models"
)

const (
	recommendationFallback = "Please contact us directly for personalized recommendations."
)

// RecommendationService wraps the AI collaborator for package
// recommendations and document prose. Every method degrades to a static
// text on any AI failure; callers never see an error.
type RecommendationService struct {
	ai *gemini.GeminiClient
}

// NewRecommendationService accepts a nil client; all methods then serve
// their static fallbacks.
func NewRecommendationService(ai *gemini.GeminiClient) *RecommendationService {
	return &RecommendationService{ai: ai}
}

// Recommend suggests a service and package for the client's description.
func (s *RecommendationService) Recommend(ctx context.Context, description string) string {
	if s.ai == nil {
		return recommendationFallback
	}
	prompt := fmt.Sprintf(gemini.RecommendationPromptTemplate, description, catalogSummary())
	text, err := s.ai.SendText(ctx, prompt)
	if err != nil {
		slog.Warn("AI recommendation failed, serving fallback", "error", err)
		return recommendationFallback
	}
	return text
}

// ContractTerms produces the terms-and-conditions prose for a contract.
func (s *RecommendationService) ContractTerms(ctx context.Context, order models.Order) string {
	if s.ai == nil {
		return staticContractTerms(order)
	}

	packageName := order.PackageID
	features := "Standard features"
	if pkg, ok := catalog.GetPackage(order.ServiceType, order.PackageID); ok {
		packageName = pkg.Name
	}
	if len(order.Customizations.AddOns) > 0 {
		features = strings.Join(order.Customizations.AddOns, ", ")
	}
	pages := "N/A"
	if order.Customizations.Pages != nil {
		pages = fmt.Sprintf("%d", *order.Customizations.Pages)
	}
	platform := "N/A"
	if order.Customizations.Platform != "" {
		platform = order.Customizations.Platform.DisplayName()
	}
	description := ""
	if order.ProjectDescription != "" {
		description = "Project Description: " + order.ProjectDescription
	}

	serviceName := order.ServiceType.DisplayName()
	prompt := fmt.Sprintf(gemini.ContractTermsPromptTemplate,
		serviceName, serviceName, formatAmount(order.TotalZMW),
		packageName, features, pages, platform, description)

	text, err := s.ai.SendText(ctx, prompt)
	if err != nil {
		slog.Warn("AI contract terms failed, serving static terms", "error", err)
		return staticContractTerms(order)
	}
	return text
}

// InvoiceDescription produces the base-package line description for an
// invoice.
func (s *RecommendationService) InvoiceDescription(ctx context.Context, order models.Order) string {
	fallback := "Base Package - Complete development service including design, development, testing, and deployment"
	if s.ai == nil {
		return fallback
	}

	packageName := order.PackageID
	features := "standard features"
	if pkg, ok := catalog.GetPackage(order.ServiceType, order.PackageID); ok {
		packageName = pkg.Name
		if len(pkg.Features) > 0 {
			features = strings.Join(pkg.Features, ", ")
		}
	}

	prompt := fmt.Sprintf(gemini.InvoiceDescriptionPromptTemplate,
		order.ServiceType.DisplayName(), packageName, features)

	text, err := s.ai.SendText(ctx, prompt)
	if err != nil {
		slog.Warn("AI invoice description failed, serving static text", "error", err)
		return fallback
	}
	return text
}

// catalogSummary renders the live pricing table for the recommendation
// prompt, one section per service category.
func catalogSummary() string {
	var b strings.Builder
	for _, service := range models.AllServiceTypes {
		b.WriteString(strings.ToUpper(service.DisplayName()))
		b.WriteString(":\n")
		for _, pkg := range catalog.Packages(service) {
			labels := make([]string, 0, len(pkg.Features))
			for _, f := range pkg.Features {
				labels = append(labels, featureLabel(f))
			}
			fmt.Fprintf(&b, "- %s (%s): %s. Features: %s.\n",
				pkg.Name, formatSpecZMW(pkg.PriceZMW), pkg.Description, strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func staticContractTerms(order models.Order) string {
	return fmt.Sprintf(`1. Scope of Work: the provider will deliver the agreed %s engagement as itemized in the attached quotation.
2. Payment: 50%% of the total (%s) is due on signing, the balance on delivery.
3. Timeline: delivery milestones will be agreed in writing at project kickoff.
4. Revisions: two rounds of revisions are included; further changes are quoted separately.
5. Intellectual Property: deliverables transfer to the client on full payment.
6. Warranty: defects reported within 30 days of delivery are fixed at no cost.
7. Termination: either party may terminate with 14 days written notice; work completed to date is billable.`,
		order.ServiceType.DisplayName(), formatZMW(order.TotalZMW))
}
