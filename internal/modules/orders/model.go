package orders

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
)

// Normalized status values used for filtering and counting. The server
// sends title-cased statuses; comparisons here are always lowercase.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// WireStatus maps a normalized status back to the casing the API expects
// in update payloads. Unknown statuses pass through unchanged.
func WireStatus(status string) string {
	switch strings.ToLower(status) {
	case StatusPending:
		return "Pending"
	case StatusProcessing:
		return "Processing"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	default:
		return status
	}
}

func KnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is the view model the dashboard works with: a projection of the
// server record plus the derived display fields. Full keeps the raw record
// for the detail view and for building mutation payloads.
type Order struct {
	ID           string
	OrderID      string // display label, last 5 characters of ID
	Date         string // display date
	RawDate      time.Time
	CustomerName string
	Product      string
	Status       string // normalized lowercase
	Amount       decimal.Decimal
	Full         api.OrderRecord
}

const displayDateFormat = "Jan 2, 2006"

func FromRecord(rec api.OrderRecord) Order {
	name := "Customer"
	if rec.ShippingAddress != nil && rec.ShippingAddress.Name != "" {
		name = rec.ShippingAddress.Name
	}
	product := "Multiple Items"
	if len(rec.Items) > 0 {
		product = rec.Items[0].ProductName
	}
	return Order{
		ID:           rec.ID,
		OrderID:      "#" + shortID(rec.ID),
		Date:         rec.CreatedAt.Format(displayDateFormat),
		RawDate:      rec.CreatedAt,
		CustomerName: name,
		Product:      product,
		Status:       strings.ToLower(rec.Status),
		Amount:       rec.TotalAmount,
		Full:         rec,
	}
}

func shortID(id string) string {
	if len(id) <= 5 {
		return id
	}
	return id[len(id)-5:]
}
