package exporter

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatAmount formats a currency amount for output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatCount formats a record count for output
func formatCount(n int) string {
	return fmt.Sprintf("%d", n)
}
