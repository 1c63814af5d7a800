package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/market"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/refdata"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/scoring"
	"github.com/raphaelrousselle-droid/radar-immo76/pkg/geoapi"
)

// GeoResolver maps a free-text commune name to a directory entry. A nil
// result with nil error means no match.
type GeoResolver interface {
	Resolve(ctx context.Context, name string) (*geoapi.Commune, error)
}

// Analyser runs the full per-commune analysis. It only reads the reference
// store, so one Analyser serves concurrent requests.
type Analyser struct {
	store      *refdata.Store
	geo        GeoResolver
	zoning     ZoningClassifier
	thresholds market.Thresholds
	policy     scoring.Policy
	socio      config.SocioConfig
	dvfSource  string
	rentSource string
}

// New creates an Analyser. A nil zoning classifier defaults to the
// population heuristic.
func New(store *refdata.Store, geo GeoResolver, zoning ZoningClassifier, cfg *config.Config) *Analyser {
	if zoning == nil {
		zoning = PopulationZoning{}
	}
	return &Analyser{
		store:  store,
		geo:    geo,
		zoning: zoning,
		thresholds: market.Thresholds{
			Appartement: cfg.Market.MinVentesAppartement,
			Maison:      cfg.Market.MinVentesMaison,
		},
		policy:     scoring.PolicyFromConfig(cfg.Scoring),
		socio:      cfg.Socio,
		dvfSource:  cfg.Data.DVFSource,
		rentSource: cfg.Data.LoyersSource,
	}
}

// Analyse resolves the commune and assembles the full result. It never fails
// for a well-formed name: resolution and data lookups degrade to nulls and
// regional defaults.
func (a *Analyser) Analyse(ctx context.Context, commune string) *Result {
	// 1. Name resolution. Failure is degraded mode, not an error.
	nom := commune
	var codeInsee *string
	var population *int
	resolved, err := a.geo.Resolve(ctx, commune)
	if err != nil {
		zap.L().Warn("analysis: geo resolution failed",
			zap.String("commune", commune),
			zap.Error(err),
		)
	} else if resolved != nil {
		nom = resolved.Nom
		code := refdata.NormalizeCode(resolved.Code)
		codeInsee = &code
		population = resolved.Population
	}

	// 2. Gated prices and reference price selection.
	ref := market.ReferencePrice{}
	if codeInsee != nil {
		if rec, ok := a.store.Price(*codeInsee); ok {
			ref = market.SelectReference(
				rec.PrixAppartementM2, rec.PrixMaisonM2,
				rec.NbVentesAppartement, rec.NbVentesMaison,
				a.thresholds,
			)
		}
	}

	// 3. Reference rent.
	var loyer *float64
	if codeInsee != nil {
		if rec, ok := a.store.Rent(*codeInsee); ok {
			v := rec.LoyerM2
			loyer = &v
		}
	}

	// 4. Gross yield.
	rentabilite := market.GrossYield(ref.Price, loyer)

	// 5. Socio-demographic inputs: regional defaults until a per-commune
	// source is wired in.
	socio := a.socio

	// 6. Scores.
	sRend := scoring.Rendement(rentabilite)
	sDemo := scoring.Demographie(population, &socio.EvolutionPopPct, &socio.VacancePct)
	sSeco := scoring.SocioEco(&socio.ChomagePct, &socio.RevenuMedian, &socio.PartCadresPct, &socio.TauxPauvretePct)
	sGlob := a.policy.Composite(sRend, sDemo, sSeco)

	result := &Result{
		Commune:    nom,
		CodeInsee:  codeInsee,
		Population: population,
		Prix: PrixBlock{
			AppartementM2:    truncEuros(ref.Appartement),
			MaisonM2:         truncEuros(ref.Maison),
			NbVentesApt:      ref.NbVentesApt,
			NbVentesMai:      ref.NbVentesMai,
			PrixRefType:      ref.Type,
			AvertissementApt: ref.Advisory,
			Source:           a.dvfSource,
		},
		Loyer: LoyerBlock{
			AppartementM2: loyer,
			Source:        a.rentSource,
		},
		RentabiliteBrutePct: rentabilite,
		ZonageABC:           a.zoning.Classify(population),
		SocioEco: SocioEcoBlock{
			ChomagePct:      socio.ChomagePct,
			RevenuMedian:    socio.RevenuMedian,
			PartCadresPct:   socio.PartCadresPct,
			TauxPauvretePct: socio.TauxPauvretePct,
		},
		Demographie: DemographieBlock{
			EvolutionPopPctAn: socio.EvolutionPopPct,
			NbEtudiants:       0,
			VacancePct:        socio.VacancePct,
		},
		Scores: ScoreBlock{
			Rendement:   sRend,
			Demographie: sDemo,
			SocioEco:    sSeco,
			Global:      sGlob,
		},
	}

	zap.L().Debug("analysis: complete",
		zap.String("commune", nom),
		zap.Float64("score_global", sGlob),
	)

	return result
}

// truncEuros truncates a per-m² price to whole euros, matching the precision
// the dashboard displays.
func truncEuros(price *float64) *int {
	if price == nil {
		return nil
	}
	v := int(*price)
	return &v
}
