package models

type ServiceType string

const (
	ServiceWebsite     ServiceType = "website"
	ServiceMobileApp   ServiceType = "mobileApp"
	ServiceConsultancy ServiceType = "consultancy"
	ServiceEnterprise  ServiceType = "enterprise"
)

// AllServiceTypes lists every service category in display order.
var AllServiceTypes = []ServiceType{
	ServiceWebsite,
	ServiceMobileApp,
	ServiceConsultancy,
	ServiceEnterprise,
}

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceWebsite, ServiceMobileApp, ServiceConsultancy, ServiceEnterprise:
		return true
	}
	return false
}

// DisplayName returns the customer-facing name of the service category.
func (s ServiceType) DisplayName() string {
	switch s {
	case ServiceWebsite:
		return "Website Development"
	case ServiceMobileApp:
		return "Mobile App Development"
	case ServiceConsultancy:
		return "IT & Digital Consultancy"
	case ServiceEnterprise:
		return "Enterprise Systems"
	}
	return string(s)
}

type HostingCategory string

const (
	HostingWebsite HostingCategory = "website"
	HostingApp     HostingCategory = "app"
)

func (h HostingCategory) IsValid() bool {
	return h == HostingWebsite || h == HostingApp
}

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformBoth    Platform = "both"
)

// DisplayName returns the label used in contracts and invoices.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformIOS:
		return "iOS Only"
	case PlatformAndroid:
		return "Android Only"
	case PlatformBoth:
		return "iOS & Android"
	}
	return string(p)
}

type OrderStatus string

const (
	OrderSubmitted OrderStatus = "submitted"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderSubmitted, OrderConfirmed, OrderCancelled:
		return true
	}
	return false
}
