package models

import "time"

type PageLayout string

const (
	LayoutSingle        PageLayout = "single"
	LayoutCaptionBottom PageLayout = "caption-bottom"
	LayoutBlank         PageLayout = "blank"
)

type BookSize string

const (
	SizeA4     BookSize = "A4"
	SizeA5     BookSize = "A5"
	SizeSquare BookSize = "Square"
)

type BookStatus string

const (
	BookStatusDraft     BookStatus = "draft"
	BookStatusOrdered   BookStatus = "ordered"
	BookStatusPrinting  BookStatus = "printing"
	BookStatusShipped   BookStatus = "shipped"
	BookStatusDelivered BookStatus = "delivered"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPrinting  OrderStatus = "printing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Photo is a single entry in the user's photo library. Photos are immutable
// once created; the URL is an opaque image reference (object storage URL or
// inline data URL).
type Photo struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// BookPage is one page of a photo book. PhotoID is a non-owning reference
// into the photo library; the empty string means an empty slot. A dangling
// reference is tolerated.
type BookPage struct {
	ID      string     `json:"id"`
	PhotoID string     `json:"photo_id,omitempty"`
	Caption string     `json:"caption"`
	Layout  PageLayout `json:"layout"`
}

// PhotoBook is a photo-book project. The page slice has a fixed length for
// the lifetime of the book and page order is significant.
type PhotoBook struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Theme        string     `json:"theme"`
	Size         BookSize   `json:"size"`
	WritingStyle string     `json:"writing_style,omitempty"`
	Pages        []BookPage `json:"pages"`
	Status       BookStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Order is a checkout snapshot of a book. Orders are append-only and their
// status stays at pending; the visible fulfillment pipeline is illustrative.
type Order struct {
	ID        string      `json:"id"`
	BookID    string      `json:"book_id"`
	CreatedAt time.Time   `json:"created_at"`
	Status    OrderStatus `json:"status"`
	Address   string      `json:"address"`
}

// Draft accumulates wizard inputs before a book exists. RecipientPhotoURL is
// set once the portrait upload has been ingested; empty means "no photo".
type Draft struct {
	Recipient         string `json:"recipient"`
	RecipientName     string `json:"recipient_name"`
	SenderName        string `json:"sender_name"`
	Title             string `json:"title"`
	WritingStyle      string `json:"writing_style"`
	RecipientPhotoURL string `json:"recipient_photo_url,omitempty"`
}
