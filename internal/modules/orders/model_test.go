package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
)

func TestFromRecord_Derivations(t *testing.T) {
	placed := time.Date(2024, 11, 15, 10, 30, 0, 0, time.UTC)
	rec := api.OrderRecord{
		ID:          "672f1a9b8c4d5e6f78901bcde",
		Status:      "Pending",
		TotalAmount: decimal.NewFromInt(1250),
		ShippingAddress: &api.ShippingAddress{
			Name: "Ramesh Kumar",
		},
		Items: []api.OrderItem{
			{ProductName: "Wheat Seeds 5kg", Quantity: 2},
			{ProductName: "Neem Oil", Quantity: 1},
		},
		CreatedAt: placed,
	}

	o := FromRecord(rec)
	assert.Equal(t, "#1bcde", o.OrderID)
	assert.Equal(t, "Nov 15, 2024", o.Date)
	assert.Equal(t, placed, o.RawDate)
	assert.Equal(t, "Ramesh Kumar", o.CustomerName)
	assert.Equal(t, "Wheat Seeds 5kg", o.Product)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, o.Amount.Equal(decimal.NewFromInt(1250)))
	assert.Equal(t, rec, o.Full)
}

func TestFromRecord_Fallbacks(t *testing.T) {
	rec := api.OrderRecord{
		ID:        "abc",
		Status:    "SHIPPED",
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	o := FromRecord(rec)
	assert.Equal(t, "Customer", o.CustomerName)
	assert.Equal(t, "Multiple Items", o.Product)
	assert.Equal(t, StatusShipped, o.Status)
	// short ids are used as-is
	assert.Equal(t, "#abc", o.OrderID)
}

func TestFromRecord_EmptyAddressName(t *testing.T) {
	rec := api.OrderRecord{
		ID:              "abcdef",
		ShippingAddress: &api.ShippingAddress{Name: ""},
		CreatedAt:       time.Now(),
	}
	assert.Equal(t, "Customer", FromRecord(rec).CustomerName)
}

func TestWireStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{StatusPending, "Pending"},
		{StatusProcessing, "Processing"},
		{StatusShipped, "Shipped"},
		{StatusDelivered, "Delivered"},
		{StatusCancelled, "Cancelled"},
		{"Delivered", "Delivered"},
		{"refunded", "refunded"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WireStatus(tt.in), tt.in)
	}
}

func TestKnownStatus(t *testing.T) {
	assert.True(t, KnownStatus(StatusPending))
	assert.True(t, KnownStatus(StatusCancelled))
	assert.False(t, KnownStatus("Pending"))
	assert.False(t, KnownStatus("refunded"))
	assert.False(t, KnownStatus(""))
}
