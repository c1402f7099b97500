package catalog

import "configurator-service/internal/models"

// The pricing table. ZMW and USD figures are authored independently; the
// calculator derives a USD figure through the live rate only when none is
// authored here.

var websitePackages = map[string]models.Package{
	"starter": {
		ID:          "starter",
		Name:        "Starter Site",
		Description: "Perfect for small businesses getting started online",
		PriceUSD:    models.FixedPrice(300),
		PriceZMW:    models.FixedPrice(7500),
		Pages:       &models.PageRange{Min: 1, Max: 3},
		Features:    []string{"responsive", "whatsapp", "basic-seo"},
	},
	"growth": {
		ID:          "growth",
		Name:        "Growth Site",
		Description: "Ideal for growing businesses with more features",
		PriceUSD:    models.RangedPrice(600, 900),
		PriceZMW:    models.RangedPrice(15000, 22500),
		Pages:       &models.PageRange{Min: 4, Max: 7},
		Features:    []string{"blog", "gallery", "form", "ai-chatbot", "1-month-hosting"},
		MostPopular: true,
	},
	"pro": {
		ID:          "pro",
		Name:        "Pro Website",
		Description: "Advanced features for professional businesses",
		PriceUSD:    models.RangedPrice(1000, 1800),
		PriceZMW:    models.RangedPrice(25000, 45000),
		Pages:       &models.PageRange{Min: 8, Max: 12},
		Features:    []string{"dashboard", "booking", "analytics", "ai-assistant"},
	},
	"premium": {
		ID:          "premium",
		Name:        "Premium Suite",
		Description: "Complete solution with all features included",
		PriceUSD:    models.RangedPrice(2000, 3000),
		PriceZMW:    models.RangedPrice(50000, 75000),
		Pages:       &models.PageRange{Min: 1, Max: 999},
		Features:    []string{"custom-web-app", "payments", "ai", "automation", "hosting"},
	},
}

var mobileAppPackages = map[string]models.Package{
	"starter": {
		ID:          "starter",
		Name:        "Starter App",
		Description: "Basic mobile app for iOS and Android with core features",
		PriceUSD:    models.FixedPrice(1000),
		PriceZMW:    models.FixedPrice(25000),
		Features:    []string{"ios-android", "user-auth", "push-notifications", "basic-ui"},
	},
	"growth": {
		ID:          "growth",
		Name:        "Growth App",
		Description: "Advanced features for growing businesses",
		PriceUSD:    models.RangedPrice(2000, 4000),
		PriceZMW:    models.RangedPrice(50000, 100000),
		Features:    []string{"offline-mode", "analytics", "payment-integration", "social-login", "cloud-sync"},
		MostPopular: true,
	},
	"enterprise": {
		ID:          "enterprise",
		Name:        "Enterprise App",
		Description: "Full-featured app with custom solutions",
		PriceUSD:    models.RangedPrice(5000, 15000),
		PriceZMW:    models.RangedPrice(125000, 375000),
		Features:    []string{"custom-backend", "advanced-security", "biometric-auth", "real-time-sync", "white-label"},
	},
}

var consultancyPackages = map[string]models.Package{
	"basic": {
		ID:          "basic",
		Name:        "Basic Consultancy",
		Description: "Essential IT and digital strategy guidance",
		PriceUSD:    models.FixedPrice(700),
		PriceZMW:    models.FixedPrice(17500),
		Features:    []string{"tech-stack-review", "architecture-advice", "vendor-selection", "1-session"},
	},
	"standard": {
		ID:          "standard",
		Name:        "Standard Consultancy",
		Description: "Comprehensive digital transformation guidance",
		PriceUSD:    models.RangedPrice(1500, 3000),
		PriceZMW:    models.RangedPrice(37500, 75000),
		Features:    []string{"digital-transformation", "cloud-migration", "security-audit", "roadmap-planning", "3-sessions"},
		MostPopular: true,
	},
	"premium": {
		ID:          "premium",
		Name:        "Premium Consultancy",
		Description: "Full-scale enterprise IT strategy and implementation",
		PriceUSD:    models.RangedPrice(5000, 10000),
		PriceZMW:    models.RangedPrice(125000, 250000),
		Features:    []string{"enterprise-architecture", "ongoing-support", "team-training", "implementation-guidance", "unlimited-sessions"},
	},
}

var enterprisePackages = map[string]models.Package{
	"starter": {
		ID:          "starter",
		Name:        "Starter Enterprise",
		Description: "Basic enterprise system for small to medium organizations",
		PriceUSD:    models.RangedPrice(2000, 5000),
		PriceZMW:    models.RangedPrice(50000, 125000),
		Features:    []string{"core-modules", "user-management", "basic-reporting", "data-backup"},
	},
	"professional": {
		ID:          "professional",
		Name:        "Professional Enterprise",
		Description: "Comprehensive enterprise solution with advanced features",
		PriceUSD:    models.RangedPrice(5000, 15000),
		PriceZMW:    models.RangedPrice(125000, 375000),
		Features:    []string{"all-modules", "advanced-analytics", "api-integration", "custom-workflows", "priority-support"},
		MostPopular: true,
	},
	"enterprise": {
		ID:          "enterprise",
		Name:        "Enterprise Suite",
		Description: "Complete enterprise solution with full customization",
		PriceUSD:    models.RangedPrice(15000, 50000),
		PriceZMW:    models.RangedPrice(375000, 1250000),
		Features:    []string{"fully-custom", "multi-tenant", "advanced-security", "dedicated-support", "training", "maintenance"},
	},
}

var packagesByService = map[models.ServiceType]map[string]models.Package{
	models.ServiceWebsite:     websitePackages,
	models.ServiceMobileApp:   mobileAppPackages,
	models.ServiceConsultancy: consultancyPackages,
	models.ServiceEnterprise:  enterprisePackages,
}

var packageOrder = map[models.ServiceType][]string{
	models.ServiceWebsite:     {"starter", "growth", "pro", "premium"},
	models.ServiceMobileApp:   {"starter", "growth", "enterprise"},
	models.ServiceConsultancy: {"basic", "standard", "premium"},
	models.ServiceEnterprise:  {"starter", "professional", "enterprise"},
}

var addOns = map[string]models.AddOn{
	"ai-chatbot":          {ID: "ai-chatbot", PriceUSD: models.FixedPrice(500), PriceZMW: models.FixedPrice(12500)},
	"ai-assistant":        {ID: "ai-assistant", PriceUSD: models.FixedPrice(500), PriceZMW: models.FixedPrice(12500)},
	"payment-gateway":     {ID: "payment-gateway", PriceUSD: models.RangedPrice(250, 1000), PriceZMW: models.RangedPrice(6250, 25000)},
	"analytics-dashboard": {ID: "analytics-dashboard", PriceUSD: models.FixedPrice(700), PriceZMW: models.FixedPrice(17500)},
	"offline-mode":        {ID: "offline-mode", PriceUSD: models.FixedPrice(300), PriceZMW: models.FixedPrice(7500)},
	"user-authentication": {ID: "user-authentication", PriceUSD: models.FixedPrice(200), PriceZMW: models.FixedPrice(5000)},
	"whatsapp-bot":        {ID: "whatsapp-bot", PriceUSD: models.FixedPrice(250), PriceZMW: models.FixedPrice(6250)},
}

var addOnOrder = []string{
	"ai-chatbot",
	"ai-assistant",
	"payment-gateway",
	"analytics-dashboard",
	"offline-mode",
	"user-authentication",
	"whatsapp-bot",
}

var hostingPlans = map[models.HostingCategory]map[string]models.HostingPlan{
	models.HostingWebsite: {
		"basic":    {ID: "basic", PriceZMW: 250, Features: []string{"1-site", "https", "10gb-transfer", "daily-backups"}},
		"pro":      {ID: "pro", PriceZMW: 600, Features: []string{"2-sites", "50gb", "staging", "on-demand-backups", "priority-support"}},
		"business": {ID: "business", PriceZMW: 1200, Features: []string{"5-sites", "200gb", "waf-cdn", "uptime-sla", "performance-monitoring"}},
	},
	models.HostingApp: {
		"starter": {ID: "starter", PriceZMW: 1500, Features: []string{"monitoring", "monthly-updates", "basic-incident-support"}},
		"growth":  {ID: "growth", PriceZMW: 3500, Features: []string{"bi-weekly-updates", "crash-analytics", "api-health-checks", "slos"}},
		"scale":   {ID: "scale", PriceZMW: 7500, Features: []string{"weekly-updates", "on-call", "load-testing", "advanced-sre"}},
	},
}

var hostingOrder = map[models.HostingCategory][]string{
	models.HostingWebsite: {"basic", "pro", "business"},
	models.HostingApp:     {"starter", "growth", "scale"},
}

// Fallback base prices for selections naming a package id the category does
// not know. Website defines none; an unknown website package prices at zero.
var serviceBases = map[models.ServiceType]models.ServiceBase{
	models.ServiceMobileApp: {
		PriceUSD: models.FixedPrice(1000),
		PriceZMW: models.FixedPrice(25000),
		Includes: []string{"ios-android", "user-auth", "push-notifications"},
	},
	models.ServiceConsultancy: {
		PriceUSD: models.FixedPrice(700),
		PriceZMW: models.FixedPrice(17500),
		Includes: []string{"architecture", "digital-transformation", "vendor-selection"},
	},
	models.ServiceEnterprise: {
		PriceUSD: models.RangedPrice(2000, 10000),
		PriceZMW: models.RangedPrice(50000, 250000),
	},
}
