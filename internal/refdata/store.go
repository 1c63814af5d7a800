// Package refdata holds the in-memory reference tables: DVF transaction
// prices and ANIL rents, keyed by INSEE code. The store is built once at
// startup and read-only afterwards, so concurrent request handlers need no
// locking.
package refdata

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/fetcher"
)

// PriceRecord is one DVF row: per-m² medians and sale counts per dwelling type.
type PriceRecord struct {
	CodeInsee           string
	PrixAppartementM2   *float64
	PrixMaisonM2        *float64
	NbVentesAppartement int
	NbVentesMaison      int
	Raw                 map[string]string
}

// RentRecord is one ANIL row: the median rent per m².
type RentRecord struct {
	CodeInsee string
	LoyerM2   float64
	Raw       map[string]string
}

// Downloader fetches a remote payload. Satisfied by fetcher.HTTPFetcher.
type Downloader interface {
	DownloadAll(ctx context.Context, rawURL string) ([]byte, error)
}

// Store is the immutable reference snapshot. Either table may be empty when
// its source failed to load; lookups then degrade to "no data".
type Store struct {
	prices      map[string]PriceRecord
	rents       map[string]RentRecord
	rentColumns []string
}

// Load builds the Store from the two remote CSV sources. Both tables load in
// parallel; a failed table is logged and left empty rather than failing the
// process.
func Load(ctx context.Context, dl Downloader, cfg config.DataConfig) *Store {
	store := &Store{
		prices: make(map[string]PriceRecord),
		rents:  make(map[string]RentRecord),
	}

	var g errgroup.Group

	g.Go(func() error {
		data, err := dl.DownloadAll(ctx, cfg.DVFURL)
		if err != nil {
			zap.L().Warn("refdata: dvf download failed", zap.Error(err))
			return nil
		}
		table, err := fetcher.ParseTable(data)
		if err != nil {
			zap.L().Warn("refdata: dvf parse failed", zap.Error(err))
			return nil
		}
		store.prices = parsePrices(table)
		zap.L().Info("refdata: dvf loaded", zap.Int("communes", len(store.prices)))
		return nil
	})

	g.Go(func() error {
		data, err := dl.DownloadAll(ctx, cfg.LoyersURL)
		if err != nil {
			zap.L().Warn("refdata: loyers download failed", zap.Error(err))
			return nil
		}
		table, err := fetcher.ParseTable(data)
		if err != nil {
			zap.L().Warn("refdata: loyers parse failed", zap.Error(err))
			return nil
		}
		store.rents = parseRents(table)
		store.rentColumns = table.Header
		zap.L().Info("refdata: loyers loaded", zap.Int("communes", len(store.rents)))
		return nil
	})

	_ = g.Wait()
	return store
}

// NewStore builds a Store from already-parsed records. Used by tests and by
// deployments that load reference data from local files.
func NewStore(prices []PriceRecord, rents []RentRecord) *Store {
	store := &Store{
		prices: make(map[string]PriceRecord, len(prices)),
		rents:  make(map[string]RentRecord, len(rents)),
	}
	for _, p := range prices {
		p.CodeInsee = NormalizeCode(p.CodeInsee)
		store.prices[p.CodeInsee] = p
	}
	for _, r := range rents {
		r.CodeInsee = NormalizeCode(r.CodeInsee)
		store.rents[r.CodeInsee] = r
	}
	return store
}

// Price returns the DVF record for an INSEE code.
func (s *Store) Price(code string) (PriceRecord, bool) {
	rec, ok := s.prices[NormalizeCode(code)]
	return rec, ok
}

// Rent returns the ANIL rent record for an INSEE code.
func (s *Store) Rent(code string) (RentRecord, bool) {
	rec, ok := s.rents[NormalizeCode(code)]
	return rec, ok
}

// DVFCount reports how many communes have price data.
func (s *Store) DVFCount() int { return len(s.prices) }

// LoyersCount reports how many communes have rent data.
func (s *Store) LoyersCount() int { return len(s.rents) }

// RentColumns returns the header of the loaded rent table.
func (s *Store) RentColumns() []string { return s.rentColumns }

func parsePrices(table *fetcher.Table) map[string]PriceRecord {
	codeIdx := table.Column("code_insee")
	aptIdx := table.Column("prix_appt_m2")
	maiIdx := table.Column("prix_maison_m2")
	nbAptIdx := table.Column("nb_ventes_apt")
	nbMaiIdx := table.Column("nb_ventes_mai")

	out := make(map[string]PriceRecord, len(table.Rows))
	if codeIdx < 0 {
		zap.L().Warn("refdata: dvf table missing code_insee column")
		return out
	}

	for _, row := range table.Rows {
		rec := PriceRecord{
			CodeInsee: NormalizeCode(field(row, codeIdx)),
			Raw:       rawRow(table.Header, row),
		}
		if rec.CodeInsee == "00000" {
			continue
		}
		rec.PrixAppartementM2 = parseFloat(field(row, aptIdx))
		rec.PrixMaisonM2 = parseFloat(field(row, maiIdx))
		rec.NbVentesAppartement = parseInt(field(row, nbAptIdx))
		rec.NbVentesMaison = parseInt(field(row, nbMaiIdx))
		out[rec.CodeInsee] = rec
	}
	return out
}

func parseRents(table *fetcher.Table) map[string]RentRecord {
	codeIdx := table.Column("code_insee")

	out := make(map[string]RentRecord, len(table.Rows))
	if codeIdx < 0 {
		zap.L().Warn("refdata: loyers table missing code_insee column")
		return out
	}

	colIdx := make([]int, 0, len(rentColumns))
	for _, name := range rentColumns {
		colIdx = append(colIdx, table.Column(name))
	}

	for _, row := range table.Rows {
		code := NormalizeCode(field(row, codeIdx))
		if code == "00000" {
			continue
		}
		for _, idx := range colIdx {
			v := parseFloat(field(row, idx))
			if v != nil && *v > 0 {
				out[code] = RentRecord{
					CodeInsee: code,
					LoyerM2:   *v,
					Raw:       rawRow(table.Header, row),
				}
				break
			}
		}
	}
	return out
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func rawRow(header, row []string) map[string]string {
	raw := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(row) {
			raw[h] = row[i]
		}
	}
	return raw
}
