package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/analysis"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/fetcher"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/refdata"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/scoring"
	"github.com/raphaelrousselle-droid/radar-immo76/pkg/geoapi"
)

// engine bundles the request-time dependencies shared by the serve and
// analyse commands.
type engine struct {
	store    *refdata.Store
	analyser *analysis.Analyser
	geo      *geoapi.Client
}

// initEngine validates the scoring policy, loads the reference snapshot and
// wires the analyser. Reference-data failures leave empty tables; only an
// invalid policy aborts startup.
func initEngine(ctx context.Context) (*engine, error) {
	if err := scoring.PolicyFromConfig(cfg.Scoring).Validate(); err != nil {
		return nil, eris.Wrap(err, "init engine")
	}

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		Timeout:      time.Duration(cfg.Data.TimeoutSecs) * time.Second,
		RateLimiters: fetcher.DefaultRateLimiters(),
	})
	store := refdata.Load(ctx, f, cfg.Data)

	geo := geoapi.NewClient(cfg.Geo)

	return &engine{
		store:    store,
		analyser: analysis.New(store, geo, nil, cfg),
		geo:      geo,
	}, nil
}
