package csvpager

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetPage(t *testing.T) {
	path := writeCSV(t, "Sku,Qty\nA1,5\nA2,7\n")

	tests := map[string]struct {
		pageSize   int
		pageNumber int
		want       []Record
	}{
		"first page of one": {
			pageSize: 1, pageNumber: 0,
			want: []Record{{"Sku": "A1", "Qty": "5"}},
		},
		"second page of one": {
			pageSize: 1, pageNumber: 1,
			want: []Record{{"Sku": "A2", "Qty": "7"}},
		},
		"page past the end is empty": {
			pageSize: 10, pageNumber: 1,
			want: []Record{},
		},
		"page size zero is empty": {
			pageSize: 0, pageNumber: 0,
			want: []Record{},
		},
		"large page clamps to remaining rows": {
			pageSize: 10, pageNumber: 0,
			want: []Record{{"Sku": "A1", "Qty": "5"}, {"Sku": "A2", "Qty": "7"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := GetPage(path, tc.pageSize, tc.pageNumber)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetPageHeaderOnlyFile(t *testing.T) {
	path := writeCSV(t, "Sku,Qty\n")

	for _, pageNumber := range []int{0, 1, 50} {
		got, err := GetPage(path, 10, pageNumber)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestGetPageEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	got, err := GetPage(path, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPageMissingFile(t *testing.T) {
	_, err := GetPage(filepath.Join(t.TempDir(), "nope.csv"), 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetPageMalformedRow(t *testing.T) {
	// An unterminated quote aborts the read before a clean end-of-file.
	// That failure is distinct from "file not found".
	path := writeCSV(t, "Sku,Qty\nA1,\"5\n")

	_, err := GetPage(path, 10, 0)
	require.Error(t, err)

	var parseErr *csv.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestGetPageRaggedRows(t *testing.T) {
	// Excess cells are dropped; missing columns are absent from the record.
	path := writeCSV(t, "Sku,Qty\nA1,5,extra\nA2\n")

	got, err := GetPage(path, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{"Sku": "A1", "Qty": "5"},
		{"Sku": "A2"},
	}, got)
}

func TestGetPageNormalizesHeaders(t *testing.T) {
	path := writeCSV(t, "  order date ,Sku\n2021-01-01,A1\n")

	got, err := GetPage(path, 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Record{"OrderDate": "2021-01-01", "Sku": "A1"}, got[0])
}

func TestNormalizeHeader(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"trims and collapses": {in: "  order date ", want: "OrderDate"},
		"already canonical":   {in: "Sku", want: "Sku"},
		"control characters":  {in: "\tqty on hand\r", want: "QtyOnHand"},
		"multiple spaces":     {in: "unit   of  measure", want: "UnitOfMeasure"},
		"empty":               {in: "", want: ""},
		"preserves inner caps": {
			in:   "warehouse ID",
			want: "WarehouseID",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeHeader(tc.in))
		})
	}
}
