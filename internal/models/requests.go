package models

// QuoteRequest asks for a one-off price derivation without a session.
type QuoteRequest struct {
	ServiceType    ServiceType    `json:"service_type"`
	PackageID      string         `json:"package_id"`
	Customizations Customizations `json:"customizations"`
}

// CreateOrderRequest submits a completed selection for persistence.
type CreateOrderRequest struct {
	ServiceType        ServiceType    `json:"service_type"`
	PackageID          string         `json:"package_id"`
	Customizations     Customizations `json:"customizations"`
	ProjectDescription string         `json:"project_description,omitempty"`
}

// UpdateSelectionRequest replaces a session's selection.
type UpdateSelectionRequest struct {
	ServiceType        ServiceType    `json:"service_type,omitempty"`
	PackageID          string         `json:"package_id,omitempty"`
	Customizations     Customizations `json:"customizations"`
	ProjectDescription string         `json:"project_description,omitempty"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// RecommendationRequest carries the client's own description of what they
// need.
type RecommendationRequest struct {
	Description string `json:"description"`
}

// OrderResponse is the order plus everything the client needs to hand off.
type OrderResponse struct {
	Order        Order           `json:"order"`
	Price        CalculatedPrice `json:"price"`
	WhatsAppLink string          `json:"whatsapp_link"`
	CalendlyURL  string          `json:"calendly_url,omitempty"`
}

// DocumentResponse points at a generated contract or invoice.
type DocumentResponse struct {
	ObjectName  string `json:"object_name"`
	DownloadURL string `json:"download_url"`
}
