// Package renderer turns the metals package's outputs into markdown
// reports. It owns presentation only: formatting, column layout, table
// ordering. Numbers arrive already computed.
package renderer

import (
	"fmt"

	"github.com/etnz/metals"
)

// fmtOz formats a troy-ounce quantity with the precision the ledger uses.
func fmtOz(oz float64) string { return fmt.Sprintf("%.2f", oz) }

// fmtMoney formats a per-ounce or total amount in the reporting currency.
func fmtMoney(v float64, currency string) string {
	return metals.M(v, currency).String()
}

// fmtPnL formats a profit with an explicit sign.
func fmtPnL(v float64, currency string) string {
	return metals.M(v, currency).SignedString()
}
