package models

import (
	"html"
	"strings"
)

type Product struct {
	ProductID     int64   `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
}

// NewProduct builds a product from raw field values, sanitizing every text
// field. Carts hold the resulting value by copy, so later catalog edits do
// not leak into cart lines.
func NewProduct(productID int64, name string, price float64, category, description, imageURL string, stockQuantity int) *Product {
	return &Product{
		ProductID:     productID,
		Name:          SanitizeText(name),
		Price:         price,
		Category:      SanitizeText(category),
		Description:   SanitizeText(description),
		ImageURL:      SanitizeText(imageURL),
		StockQuantity: stockQuantity,
	}
}

// SanitizeText trims the input and HTML-entity-encodes it so untrusted text
// is safe to render. Blank or whitespace-only input becomes the empty string.
// The transform is lossy: encoded output differs from the raw input.
func SanitizeText(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	return html.EscapeString(trimmed)
}

// IsValid reports whether the product can be sold: non-blank name and
// category, and a positive price.
func (p *Product) IsValid() bool {
	return strings.TrimSpace(p.Name) != "" &&
		p.Price > 0 &&
		strings.TrimSpace(p.Category) != ""
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required,min=1,max=100"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
}
