package scoring

import "math"

// Demographie scores demographic dynamism from population size, annual
// population change and housing vacancy. Starts at the midpoint; each known
// indicator shifts the score by its bracket delta. Unknown indicators are
// skipped, never penalized.
func Demographie(population *int, evolutionPct, vacancePct *float64) float64 {
	s := MidScore

	if population != nil {
		pop := *population
		switch {
		case pop > 50000:
			s += 2.0
		case pop > 10000:
			s += 1.0
		case pop > 5000:
			s += 0.5
		case pop < 2000:
			s -= 1.0
		}
	}

	if evolutionPct != nil {
		s += math.Min(2.0, math.Max(-2.0, *evolutionPct*2))
	}

	if vacancePct != nil {
		v := *vacancePct
		switch {
		case v < 6:
			s += 1.0
		case v < 9:
			// neutral band
		case v < 12:
			s -= 0.5
		default:
			s -= 1.5
		}
	}

	return round2(clamp(s))
}
