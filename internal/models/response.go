package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type WizardSessionResponse struct {
	SessionID        string   `json:"session_id"`
	Step             int      `json:"step"`
	Draft            Draft    `json:"draft"`
	TitleSuggestions []string `json:"title_suggestions,omitempty"`
	Recipients       []string `json:"recipients"`
	WritingStyles    []string `json:"writing_styles"`
	Exited           bool     `json:"exited,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    BookStatus `json:"status"`
	PageCount int        `json:"page_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PhotoListResponse struct {
	Photos []Photo `json:"photos"`
}

type UploadResponse struct {
	Photos []Photo  `json:"photos"`
	Errors []string `json:"errors,omitempty"`
}

type CaptionResponse struct {
	Caption string    `json:"caption"`
	Page    BookPage  `json:"page"`
	Book    PhotoBook `json:"book"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// OrderResponse carries the order together with the fixed checkout summary
// shown at confirmation.
type OrderResponse struct {
	Order        Order  `json:"order"`
	PriceCents   int    `json:"price_cents"`
	Currency     string `json:"currency"`
	ShippingFree bool   `json:"shipping_free"`
}

// PipelineStep is one stage of the illustrative fulfillment sequence.
type PipelineStep struct {
	Key       OrderStatus `json:"key"`
	Label     string      `json:"label"`
	Completed bool        `json:"completed"`
}

type PipelineResponse struct {
	OrderID string         `json:"order_id"`
	Steps   []PipelineStep `json:"steps"`
}
