package fetcher

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// sniffWindow is how much of the payload is inspected to pick a delimiter.
const sniffWindow = 500

// SniffDelimiter picks ';' or ',' by inspecting the first few hundred bytes.
// French open-data exports commonly use ';'.
func SniffDelimiter(data []byte) rune {
	window := data
	if len(window) > sniffWindow {
		window = window[:sniffWindow]
	}
	if bytes.ContainsRune(window, ';') {
		return ';'
	}
	return ','
}

// Table is a parsed delimited-text table: a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the named header column, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// ParseTable reads an entire delimited-text payload into a Table.
// The delimiter is auto-detected. Rows with a field count different from the
// header are kept as-is; callers index defensively.
func ParseTable(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = SniffDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read csv row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		if table.Header == nil {
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	if table.Header == nil {
		return nil, eris.New("fetcher: empty csv payload")
	}
	return &table, nil
}
