// Package geoapi is a client for the geo.api.gouv.fr commune directory. It
// resolves free-text commune names to INSEE codes, canonical names and
// population figures.
package geoapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
)

// Commune is one directory entry.
type Commune struct {
	Code       string `json:"code"`
	Nom        string `json:"nom"`
	Population *int   `json:"population"`
}

// Client queries the commune directory with a per-client rate limit.
type Client struct {
	baseURL     string
	departement string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.GeoConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		departement: cfg.Departement,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(10, 10),
	}
}

// Search returns up to limit communes matching the name, filtered by
// department. Results are deduplicated accent-insensitively: the directory
// occasionally lists spelling variants of the same commune.
func (c *Client) Search(ctx context.Context, query, departement string, limit int) ([]Commune, error) {
	if departement == "" {
		departement = c.departement
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geoapi: rate limit")
	}

	params := url.Values{
		"nom":             {query},
		"codeDepartement": {departement},
		"fields":          {"code,nom,population"},
		"limit":           {strconv.Itoa(limit)},
	}

	reqURL := c.baseURL + "/communes?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geoapi: build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geoapi: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geoapi: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geoapi: read body")
	}

	var communes []Commune
	if err := json.Unmarshal(body, &communes); err != nil {
		return nil, eris.Wrap(err, "geoapi: parse response")
	}

	return dedupe(communes), nil
}

// Resolve maps a free-text name to its best-matching commune. Returns nil
// (not an error) when the directory has no match.
func (c *Client) Resolve(ctx context.Context, name string) (*Commune, error) {
	communes, err := c.Search(ctx, name, "", 1)
	if err != nil {
		return nil, err
	}
	if len(communes) == 0 {
		return nil, nil
	}
	return &communes[0], nil
}

func dedupe(communes []Commune) []Commune {
	seen := make(map[string]bool, len(communes))
	out := communes[:0]
	for _, commune := range communes {
		key := FoldName(commune.Nom)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, commune)
	}
	return out
}
