// Package analysis composes geo resolution, reference data, gating, yield
// and scoring into one analysis result per commune query.
package analysis

// Result is the full analysis of one commune. Field names are part of the
// dashboard contract and must not change.
type Result struct {
	Commune             string           `json:"commune"`
	CodeInsee           *string          `json:"code_insee"`
	CodePostal          *string          `json:"code_postal"`
	Population          *int             `json:"population"`
	Prix                PrixBlock        `json:"prix"`
	Loyer               LoyerBlock       `json:"loyer"`
	RentabiliteBrutePct *float64         `json:"rentabilite_brute_pct"`
	ZonageABC           string           `json:"zonage_abc"`
	SocioEco            SocioEcoBlock    `json:"socio_eco"`
	Demographie         DemographieBlock `json:"demographie"`
	Scores              ScoreBlock       `json:"scores"`
}

// PrixBlock reports gated transaction prices. Prices are whole euros per m².
type PrixBlock struct {
	AppartementM2    *int    `json:"appartement_m2"`
	MaisonM2         *int    `json:"maison_m2"`
	NbVentesApt      int     `json:"nb_ventes_apt"`
	NbVentesMai      int     `json:"nb_ventes_mai"`
	PrixRefType      *string `json:"prix_ref_type"`
	AvertissementApt *string `json:"avertissement_apt"`
	Source           string  `json:"source"`
}

// LoyerBlock reports the reference rent.
type LoyerBlock struct {
	AppartementM2 *float64 `json:"appartement_m2"`
	Source        string   `json:"source"`
}

// SocioEcoBlock echoes the socio-economic inputs used for scoring.
type SocioEcoBlock struct {
	ChomagePct      float64 `json:"chomage_pct"`
	RevenuMedian    float64 `json:"revenu_median"`
	PartCadresPct   float64 `json:"part_cadres_pct"`
	TauxPauvretePct float64 `json:"taux_pauvrete_pct"`
}

// DemographieBlock echoes the demographic inputs used for scoring.
type DemographieBlock struct {
	EvolutionPopPctAn float64 `json:"evolution_pop_pct_an"`
	NbEtudiants       int     `json:"nb_etudiants"`
	VacancePct        float64 `json:"vacance_pct"`
}

// ScoreBlock holds the three sub-scores and the weighted composite.
type ScoreBlock struct {
	Rendement   float64 `json:"rendement"`
	Demographie float64 `json:"demographie"`
	SocioEco    float64 `json:"socio_eco"`
	Global      float64 `json:"global"`
}
