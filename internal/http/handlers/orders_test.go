package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/orders"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func queryCtx(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/orders?"+rawQuery, nil)
	return c
}

func TestParseFilters_Defaults(t *testing.T) {
	f, from, to := parseFilters(queryCtx(t, ""))

	now := time.Now()
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, now.Month(), from.Month())
	assert.Equal(t, now.Month(), to.Month())
	assert.Empty(t, f.Status)
}

func TestParseFilters_ExplicitValues(t *testing.T) {
	f, from, to := parseFilters(queryCtx(t, "from=2024-11-01&to=2024-11-30&status=Shipped"))

	assert.Equal(t, "shipped", f.Status)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2024, 11, 30, 0, 0, 0, 0, time.Local), to)
}

func TestParseFilters_AllMeansNoStatusFilter(t *testing.T) {
	f, _, _ := parseFilters(queryCtx(t, "status=all"))
	assert.Empty(t, f.Status)
}

func TestParseFilters_MalformedDatesFallBack(t *testing.T) {
	_, from, _ := parseFilters(queryCtx(t, "from=yesterday"))
	assert.Equal(t, 1, from.Day())
}

func TestOrdersReturnTo(t *testing.T) {
	tests := []struct {
		returnTo string
		want     string
	}{
		{"/orders?status=pending", "/orders?status=pending"},
		{"/orders/abc123", "/orders/abc123"},
		{"https://evil.example.com/orders", "/orders"},
		{"/dashboard", "/orders"},
		{"", "/orders"},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		form := url.Values{"return_to": {tt.returnTo}}
		c.Request = httptest.NewRequest("POST", "/orders/refresh", strings.NewReader(form.Encode()))
		c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, tt.want, ordersReturnTo(c), tt.returnTo)
	}
}

func TestOrderDetailView(t *testing.T) {
	rec := api.OrderRecord{
		ID:          "672f1a9b8c4d5e6f78901bcde",
		Status:      "Processing",
		TotalAmount: decimal.NewFromInt(850),
		Notes:       "leave at gate",
		ShippingAddress: &api.ShippingAddress{
			Name:    "Ramesh Kumar",
			Phone:   "9876543210",
			Address: "12 Canal Road",
			City:    "Nashik",
			State:   "Maharashtra",
			Pincode: "422001",
		},
		Items: []api.OrderItem{
			{ProductName: "Wheat Seeds 5kg", Quantity: 2, Price: decimal.NewFromInt(300)},
			{ProductName: "Neem Oil", Quantity: 1, Price: decimal.NewFromInt(250)},
		},
		CreatedAt: time.Date(2024, 11, 15, 10, 30, 0, 0, time.UTC),
	}

	d := orderDetailView(orders.FromRecord(rec))

	assert.Equal(t, "#1bcde", d.OrderID)
	assert.Equal(t, "processing", d.Status)
	assert.Equal(t, "leave at gate", d.Notes)
	assert.Equal(t, "9876543210", d.Phone)
	assert.Equal(t, "12 Canal Road, Nashik, Maharashtra, 422001", d.Address)
	assert.Equal(t, "₹850.00", d.Total)

	require.Len(t, d.Items, 2)
	assert.Equal(t, "₹600.00", d.Items[0].LineTotal)
	assert.Equal(t, "₹250.00", d.Items[1].LineTotal)
}

func TestOrderDetailView_SparseAddress(t *testing.T) {
	rec := api.OrderRecord{
		ID:              "abcdefgh",
		Status:          "Pending",
		ShippingAddress: &api.ShippingAddress{Name: "X", City: "Pune"},
		CreatedAt:       time.Now(),
	}
	d := orderDetailView(orders.FromRecord(rec))
	assert.Equal(t, "Pune", d.Address)
}
