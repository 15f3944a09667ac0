package sku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wheat Seeds 5kg", "KS-WHEAT-SEEDS-5KG"},
		{"  Neem   Oil  ", "KS-NEEM-OIL"},
		{"Drip Kit (1/2 inch)", "KS-DRIP-KIT-1-2-INCH"},
		{"tools", "KS-TOOLS"},
		{"", "KS-PRODUCT"},
		{"!!!", "KS-PRODUCT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.in), tt.in)
	}
}
