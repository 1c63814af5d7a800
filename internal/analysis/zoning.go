package analysis

// ZoningClassifier assigns a rental-tension zone to a commune. The heuristic
// implementation stands in for the official zonage ABC table; deployments
// with access to the real table can swap in their own classifier.
type ZoningClassifier interface {
	Classify(population *int) string
}

// PopulationZoning derives the zone from population thresholds alone.
type PopulationZoning struct{}

// Classify maps population to a zone. Unknown population falls back to B1,
// the prevailing zone in Seine-Maritime.
func (PopulationZoning) Classify(population *int) string {
	if population == nil {
		return "B1"
	}
	switch pop := *population; {
	case pop > 100000:
		return "A"
	case pop > 50000:
		return "B1"
	case pop > 20000:
		return "B2"
	default:
		return "C"
	}
}
