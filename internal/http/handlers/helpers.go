package handlers

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func intToString(n int) string {
	return strconv.Itoa(n)
}
