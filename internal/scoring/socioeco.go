package scoring

// SocioEco scores socio-economic health from unemployment, median income,
// executive share and poverty rate. Bracket thresholds follow the policy
// language stakeholders use (below 7% unemployment is strong, above 17%
// severe, and so on).
func SocioEco(chomagePct, revenuMedian, partCadresPct, tauxPauvretePct *float64) float64 {
	s := MidScore

	if chomagePct != nil {
		c := *chomagePct
		switch {
		case c < 7:
			s += 2.0
		case c < 10:
			s += 1.0
		case c < 13:
			// neutral band
		case c < 17:
			s -= 1.0
		default:
			s -= 2.0
		}
	}

	if revenuMedian != nil {
		r := *revenuMedian
		switch {
		case r > 25000:
			s += 1.5
		case r > 20000:
			s += 0.5
		case r > 16000:
			// neutral band
		default:
			s -= 1.0
		}
	}

	if partCadresPct != nil {
		switch {
		case *partCadresPct > 20:
			s += 1.0
		case *partCadresPct > 10:
			s += 0.5
		}
	}

	if tauxPauvretePct != nil {
		switch {
		case *tauxPauvretePct < 10:
			s += 0.5
		case *tauxPauvretePct > 20:
			s -= 1.0
		}
	}

	return round2(clamp(s))
}
