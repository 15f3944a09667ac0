package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types for the Kisan Saathi REST API. Field names follow the JSON the
// server actually emits, so these structs double as the raw records retained
// for detail views.

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	AccessToken string
	User        User
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type OrderItem struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderRecord struct {
	ID              string           `json:"_id"`
	Status          string           `json:"status"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	Notes           string           `json:"notes,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Items           []OrderItem      `json:"items"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt,omitempty"`
}

type CategoryRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ProductRecord struct {
	ID            string          `json:"_id"`
	Image1        string          `json:"image1"`
	Image2        string          `json:"image2,omitempty"`
	Image3        string          `json:"image3,omitempty"`
	Image4        string          `json:"image4,omitempty"`
	ProductName   string          `json:"productName"`
	Description   string          `json:"description"`
	ProductType   string          `json:"productType"`
	Category      string          `json:"category,omitempty"`
	Price         decimal.Decimal `json:"price"`
	SalePrice     decimal.Decimal `json:"salePrice,omitempty"`
	SKU           string          `json:"sku,omitempty"`
	StockQuantity int             `json:"stockQuantity"`
	Sales         int             `json:"sales,omitempty"`
	Remaining     int             `json:"remaining,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt,omitempty"`
}

// ProductInput is the add-product payload. It mirrors ProductRecord minus
// the server-assigned fields.
type ProductInput struct {
	Image1        string          `json:"image1"`
	Image2        string          `json:"image2"`
	Image3        string          `json:"image3"`
	Image4        string          `json:"image4"`
	ProductName   string          `json:"productName"`
	Description   string          `json:"description"`
	ProductType   string          `json:"productType"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	SalePrice     decimal.Decimal `json:"salePrice,omitempty"`
	SKU           string          `json:"sku"`
	StockQuantity int             `json:"stockQuantity"`
	Sales         int             `json:"sales"`
	Remaining     int             `json:"remaining"`
	Tags          []string        `json:"tags,omitempty"`
}
