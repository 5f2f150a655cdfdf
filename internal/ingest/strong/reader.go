package strong

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ReadRows parses a delimited workout export with a header line into raw
// rows. A leading byte-order mark is dropped (UTF-16 exports are decoded),
// header names are trimmed, and lines whose cells are all empty are skipped.
// The delimiter is a comma unless the header line only contains semicolons.
func ReadRows(r io.Reader) ([]models.RawRow, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = cleanHeader(h)
	}

	var rows []models.RawRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		if blank(record) {
			continue
		}

		row := make(models.RawRow, len(columns))
		for i, v := range record {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			if _, dup := row[columns[i]]; dup {
				continue
			}
			row[columns[i]] = norm.NFC.String(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	return norm.NFC.String(strings.TrimSpace(h))
}

func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.IndexByte(first, ',') < 0 && bytes.IndexByte(first, ';') >= 0 {
		return ';'
	}
	return ','
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
