// Package money handles peso amounts as int64 centavos so cart and order
// math never touches floating point.
package money

import "fmt"

type Centavos int64

// String renders the amount the way the portals display it, e.g. ₱49.75.
func (c Centavos) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s₱%d.%02d", sign, c/100, c%100)
}

// Sum adds line subtotals; used for cart and order totals.
func Sum(amounts ...Centavos) Centavos {
	var total Centavos
	for _, a := range amounts {
		total += a
	}
	return total
}
