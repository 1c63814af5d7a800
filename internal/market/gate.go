// Package market derives usable market figures from raw reference data:
// reliability gating of price medians and gross yield computation.
package market

import "fmt"

// Gate returns the price only when the sample size meets the threshold and
// the price itself is positive; otherwise the price is treated as absent.
// Small-sample medians are a hard cutoff, not a discount: an unreliable
// price must never reach downstream calculations.
func Gate(price *float64, sampleCount, threshold int) *float64 {
	if price == nil || *price <= 0 {
		return nil
	}
	if sampleCount < threshold {
		return nil
	}
	return price
}

// ReferencePrice is the gated price selected for yield computation, with the
// dwelling type it came from and an optional reliability advisory.
type ReferencePrice struct {
	Price        *float64
	Type         *string // "appartement" or "maison"
	Advisory     *string
	Appartement  *float64
	Maison       *float64
	NbVentesApt  int
	NbVentesMai  int
}

// Thresholds holds the minimum sale counts per dwelling type.
type Thresholds struct {
	Appartement int
	Maison      int
}

// SelectReference applies the reliability gate to both dwelling prices and
// picks the reference price: apartment first, house as fallback. When the
// apartment price was rejected for sample size while the house substitutes,
// an advisory explains the substitution to the end user.
func SelectReference(apt, mai *float64, nbApt, nbMai int, t Thresholds) ReferencePrice {
	ref := ReferencePrice{
		Appartement: Gate(apt, nbApt, t.Appartement),
		Maison:      Gate(mai, nbMai, t.Maison),
		NbVentesApt: nbApt,
		NbVentesMai: nbMai,
	}

	switch {
	case ref.Appartement != nil:
		ref.Price = ref.Appartement
		ref.Type = ptr("appartement")
	case ref.Maison != nil:
		ref.Price = ref.Maison
		ref.Type = ptr("maison")
	}

	if ref.Appartement == nil && ref.Maison != nil && nbApt > 0 && nbApt < t.Appartement {
		msg := fmt.Sprintf(
			"Seulement %d ventes — prix appartement peu fiable, rentabilité calculée sur les maisons",
			nbApt,
		)
		ref.Advisory = &msg
	}

	return ref
}

func ptr[T any](v T) *T { return &v }
