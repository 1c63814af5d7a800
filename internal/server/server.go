// Package server exposes the analysis engine over HTTP for the dashboard.
// Every well-formed request gets a 200: missing data degrades to nulls in
// the payload, never to a 5xx.
package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/analysis"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
	"github.com/raphaelrousselle-droid/radar-immo76/internal/refdata"
	"github.com/raphaelrousselle-droid/radar-immo76/pkg/geoapi"
)

// Server holds the request-time dependencies.
type Server struct {
	store    *refdata.Store
	analyser *analysis.Analyser
	geo      *geoapi.Client
	cfg      *config.Config
}

// New creates a Server.
func New(store *refdata.Store, analyser *analysis.Analyser, geo *geoapi.Client, cfg *config.Config) *Server {
	return &Server{
		store:    store,
		analyser: analyser,
		geo:      geo,
		cfg:      cfg,
	}
}

// Handler builds the chi router with CORS and request-ID middleware. The
// dashboard is served from another origin, so CORS is allow-all.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(requestID)

	r.Get("/health", s.handleHealth)
	r.Get("/search", s.handleSearch)
	r.Get("/analyse/{commune}", s.handleAnalyse)
	r.Get("/debug/dvf/{code_insee}", s.handleDebugDVF)
	r.Get("/debug/loyers/{code_insee}", s.handleDebugLoyers)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":          "ok",
		"dvf_communes":    s.store.DVFCount(),
		"loyers_communes": s.store.LoyersCount(),
		"min_ventes_apt":  s.cfg.Market.MinVentesAppartement,
		"min_ventes_mai":  s.cfg.Market.MinVentesMaison,
	})
}

type searchResult struct {
	Commune    string `json:"commune"`
	CodeInsee  string `json:"code_insee"`
	Population *int   `json:"population"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	dep := r.URL.Query().Get("dep")

	results := []searchResult{}
	communes, err := s.geo.Search(r.Context(), q, dep, 10)
	if err != nil {
		zap.L().Warn("server: commune search failed",
			zap.String("q", q),
			zap.Error(err),
		)
	}
	for _, c := range communes {
		results = append(results, searchResult{
			Commune:    c.Nom,
			CodeInsee:  c.Code,
			Population: c.Population,
		})
	}

	writeJSON(w, map[string]any{"results": results})
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	commune := chi.URLParam(r, "commune")
	if decoded, err := url.PathUnescape(commune); err == nil {
		commune = decoded
	}
	result := s.analyser.Analyse(r.Context(), commune)
	writeJSON(w, result)
}

func (s *Server) handleDebugDVF(w http.ResponseWriter, r *http.Request) {
	if s.store.DVFCount() == 0 {
		writeJSON(w, map[string]any{"error": "DVF non chargé"})
		return
	}

	code := refdata.NormalizeCode(chi.URLParam(r, "code_insee"))
	rec, ok := s.store.Price(code)
	if !ok {
		writeJSON(w, map[string]any{
			"error":          "Code INSEE " + code + " non trouvé",
			"total_communes": s.store.DVFCount(),
		})
		return
	}

	writeJSON(w, map[string]any{
		"code_insee":      code,
		"donnees_brutes":  rec.Raw,
		"nb_ventes_apt":   rec.NbVentesAppartement,
		"nb_ventes_mai":   rec.NbVentesMaison,
		"prix_apt_fiable": rec.NbVentesAppartement >= s.cfg.Market.MinVentesAppartement,
		"prix_mai_fiable": rec.NbVentesMaison >= s.cfg.Market.MinVentesMaison,
		"seuil_apt":       s.cfg.Market.MinVentesAppartement,
		"seuil_mai":       s.cfg.Market.MinVentesMaison,
	})
}

func (s *Server) handleDebugLoyers(w http.ResponseWriter, r *http.Request) {
	if s.store.LoyersCount() == 0 {
		writeJSON(w, map[string]any{"error": "Loyers non chargé"})
		return
	}

	code := refdata.NormalizeCode(chi.URLParam(r, "code_insee"))
	rec, ok := s.store.Rent(code)
	if !ok {
		writeJSON(w, map[string]any{
			"error":          "Code INSEE " + code + " non trouvé",
			"total_communes": s.store.LoyersCount(),
			"colonnes":       s.store.RentColumns(),
		})
		return
	}

	writeJSON(w, map[string]any{
		"code_insee":     code,
		"donnees_brutes": rec.Raw,
		"colonnes":       s.store.RentColumns(),
		"total_communes": s.store.LoyersCount(),
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}
