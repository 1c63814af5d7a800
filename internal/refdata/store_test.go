package refdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
)

type stubDownloader struct {
	payloads map[string][]byte
	err      error
}

func (d *stubDownloader) DownloadAll(_ context.Context, rawURL string) ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.payloads[rawURL], nil
}

func testDataConfig() config.DataConfig {
	return config.DataConfig{DVFURL: "dvf", LoyersURL: "loyers"}
}

func TestLoadParsesBothTables(t *testing.T) {
	dl := &stubDownloader{payloads: map[string][]byte{
		"dvf": []byte("code_insee;prix_appt_m2;prix_maison_m2;nb_ventes_apt;nb_ventes_mai\n" +
			"76351;1883,5;1650;50;30\n" +
			"540;;1200;0;6\n"),
		"loyers": []byte("code_insee;loyer_median\n76351;11,5\n"),
	}}

	store := Load(context.Background(), dl, testDataConfig())

	assert.Equal(t, 2, store.DVFCount())
	assert.Equal(t, 1, store.LoyersCount())

	rec, ok := store.Price("76351")
	require.True(t, ok)
	require.NotNil(t, rec.PrixAppartementM2)
	assert.InDelta(t, 1883.5, *rec.PrixAppartementM2, 0.001)
	assert.Equal(t, 50, rec.NbVentesAppartement)
	assert.Equal(t, 30, rec.NbVentesMaison)

	// Short codes are zero-padded on load and on lookup.
	padded, ok := store.Price("00540")
	require.True(t, ok)
	assert.Nil(t, padded.PrixAppartementM2)
	require.NotNil(t, padded.PrixMaisonM2)
	assert.InDelta(t, 1200, *padded.PrixMaisonM2, 0.001)

	rent, ok := store.Rent("76351")
	require.True(t, ok)
	assert.InDelta(t, 11.5, rent.LoyerM2, 0.001)
}

func TestLoadDownloadFailureLeavesEmptyTables(t *testing.T) {
	dl := &stubDownloader{err: assert.AnError}

	store := Load(context.Background(), dl, testDataConfig())

	assert.Equal(t, 0, store.DVFCount())
	assert.Equal(t, 0, store.LoyersCount())
	_, ok := store.Price("76351")
	assert.False(t, ok)
}

func TestRentColumnFallback(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		found   bool
	}{
		{"loyer_median preferred", "code_insee;loyer_median;loyer_m2\n76351;11.5;9.9\n", 11.5, true},
		{"loyer fallback", "code_insee;loyer\n76351;10.2\n", 10.2, true},
		{"loyer_m2 fallback", "code_insee;loyer_m2\n76351;9.9\n", 9.9, true},
		{"loy_m2 fallback", "code_insee;loy_m2\n76351;9.1\n", 9.1, true},
		{"blank preferred column falls through", "code_insee;loyer_median;loyer_m2\n76351;;9.9\n", 9.9, true},
		{"zero rent is absent", "code_insee;loyer_median\n76351;0\n", 0, false},
		{"malformed rent is absent", "code_insee;loyer_median\n76351;abc\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dl := &stubDownloader{payloads: map[string][]byte{
				"dvf":    []byte("code_insee;prix_appt_m2\n"),
				"loyers": []byte(tt.payload),
			}}
			store := Load(context.Background(), dl, testDataConfig())

			rent, ok := store.Rent("76351")
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.InDelta(t, tt.want, rent.LoyerM2, 0.001)
			}
		})
	}
}

func TestMalformedNumericsAreAbsent(t *testing.T) {
	dl := &stubDownloader{payloads: map[string][]byte{
		"dvf": []byte("code_insee;prix_appt_m2;prix_maison_m2;nb_ventes_apt;nb_ventes_mai\n" +
			"76351;NaN;n/a;abc;7.0\n"),
		"loyers": []byte("code_insee;loyer_median\n"),
	}}

	store := Load(context.Background(), dl, testDataConfig())

	rec, ok := store.Price("76351")
	require.True(t, ok)
	assert.Nil(t, rec.PrixAppartementM2)
	assert.Nil(t, rec.PrixMaisonM2)
	assert.Equal(t, 0, rec.NbVentesAppartement)
	assert.Equal(t, 7, rec.NbVentesMaison)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "76351", NormalizeCode("76351"))
	assert.Equal(t, "00540", NormalizeCode("540"))
	assert.Equal(t, "00001", NormalizeCode(" 1 "))
}
