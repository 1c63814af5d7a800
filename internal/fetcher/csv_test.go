package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"semicolon export", "code_insee;prix_appt_m2\n76540;1883", ';'},
		{"comma export", "code_insee,prix_appt_m2\n76540,1883", ','},
		{"semicolon beyond header", "a,b,c\n1,2,3", ','},
		{"empty payload", "", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffDelimiter([]byte(tt.data)))
		})
	}
}

func TestParseTableSemicolon(t *testing.T) {
	data := "code_insee;prix_appt_m2;nb_ventes_apt\n76540;1883.5;50\n76351; 2100 ;3\n"

	table, err := ParseTable([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"code_insee", "prix_appt_m2", "nb_ventes_apt"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2100", table.Rows[1][1], "fields are trimmed")
	assert.Equal(t, 1, table.Column("prix_appt_m2"))
	assert.Equal(t, -1, table.Column("missing"))
}

func TestParseTableVariableFieldCounts(t *testing.T) {
	data := "a,b,c\n1,2,3\n4,5\n"

	table, err := ParseTable([]byte(data))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[1], 2)
}

func TestParseTableEmpty(t *testing.T) {
	_, err := ParseTable([]byte(""))
	assert.Error(t, err)
}
