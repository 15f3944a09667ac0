// Package sku derives a stock-keeping-unit suggestion from a product name
// when the form leaves the SKU field blank.
package sku

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]+`)

func FromName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "KS-PRODUCT"
	}
	return "KS-" + s
}
