package market

import "math"

// GrossYield computes the annualized gross rental yield as a percentage of
// the reference price, rounded to 2 decimals. Either input absent or
// non-positive yields no result.
func GrossYield(referencePrice, monthlyRentM2 *float64) *float64 {
	if referencePrice == nil || *referencePrice <= 0 {
		return nil
	}
	if monthlyRentM2 == nil || *monthlyRentM2 <= 0 {
		return nil
	}
	pct := (*monthlyRentM2 * 12 / *referencePrice) * 100
	pct = math.Round(pct*100) / 100
	return &pct
}
