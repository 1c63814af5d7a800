package scoring

import "math"

// Rendement maps a gross yield percentage to a score in [1, 10]. An unknown
// yield scores the neutral midpoint. The brackets mirror how investors talk
// about gross yield: anything above 10% is a ceiling, 8-10% is very good,
// 6-8% solid, 4-6% average, below 4% weak.
func Rendement(yieldPct *float64) float64 {
	if yieldPct == nil {
		return MidScore
	}
	y := *yieldPct

	var s float64
	switch {
	case y >= 10:
		s = 10.0
	case y >= 8:
		s = 8.0 + (y-8)/2
	case y >= 6:
		s = 6.0 + (y - 6)
	case y >= 4:
		s = 3.0 + (y-4)*1.5
	default:
		s = math.Max(MinScore, y*0.75)
	}

	return round2(clamp(s))
}
