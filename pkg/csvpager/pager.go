// Package csvpager pages through a local delimited file one fixed-size
// chunk at a time. It is independent of the API client; callers typically
// use it to feed bulk endpoints from an export file too large to submit in
// one call.
package csvpager

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Record maps a normalized header name to the raw cell string of one row.
type Record = map[string]string

// GetPage reads the file at path and returns the zero-indexed page
// [pageSize*pageNumber, pageSize*pageNumber+pageSize) of its data rows.
//
// The first row is the header; each cell is normalized by NormalizeHeader
// and bound to its column index once. Every later row is zipped against the
// headers positionally over the shorter of the two lengths, so ragged rows
// are tolerated: excess cells are dropped and missing columns are absent
// from the record.
//
// An out-of-range page, a header-only file, an empty file and pageSize 0
// all yield an empty page. A file that cannot be opened and a read that
// terminates before a clean end-of-file fail with distinct, wrapped errors;
// neither is retried.
func GetPage(path string, pageSize, pageNumber int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged

	headerRow, err := reader.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	headers := make([]string, len(headerRow))
	for i, cell := range headerRow {
		headers[i] = NormalizeHeader(cell)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		n := len(row)
		if len(headers) < n {
			n = len(headers)
		}
		record := make(Record, n)
		for i := 0; i < n; i++ {
			record[headers[i]] = row[i]
		}
		records = append(records, record)
	}

	return page(records, pageSize, pageNumber), nil
}

// page slices out [pageSize*pageNumber, pageSize*pageNumber+pageSize).
// Anything out of range degrades to an empty page.
func page(records []Record, pageSize, pageNumber int) []Record {
	if pageSize <= 0 || pageNumber < 0 {
		return []Record{}
	}
	start := pageSize * pageNumber
	if start >= len(records) {
		return []Record{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// NormalizeHeader turns a raw header cell into its canonical column name:
// leading/trailing whitespace and control characters are stripped, internal
// whitespace runs become word boundaries, and each word is capitalized and
// joined without separators. "  order date " becomes "OrderDate".
func NormalizeHeader(cell string) string {
	trimmed := strings.TrimFunc(cell, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})

	var b strings.Builder
	for _, word := range strings.Fields(trimmed) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
