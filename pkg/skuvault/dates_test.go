package skuvault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := map[string]struct {
		input interface{}
		want  string
	}{
		"epoch zero": {
			input: 0,
			want:  "1970-01-01T00:00:00Z",
		},
		"epoch seconds as int64": {
			input: int64(1609459200),
			want:  "2021-01-01T00:00:00Z",
		},
		"epoch seconds as float64 (json numbers)": {
			input: float64(1609459200),
			want:  "2021-01-01T00:00:00Z",
		},
		"canonical string is idempotent": {
			input: "2021-06-15T10:30:00Z",
			want:  "2021-06-15T10:30:00Z",
		},
		"offset string converts to UTC": {
			input: "2021-06-15T12:30:00+02:00",
			want:  "2021-06-15T10:30:00Z",
		},
		"human date string": {
			input: "2019-03-04",
			want:  "2019-03-04T00:00:00Z",
		},
		"time.Time value": {
			input: time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC),
			want:  "2020-05-01T08:00:00Z",
		},
		"APITime value": {
			input: NewAPITime(int64(1609459200)),
			want:  "2021-01-01T00:00:00Z",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizeDate(tc.input)
			assert.Equal(t, tc.want, FormatDate(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNormalizeDateFallsBackToNow(t *testing.T) {
	// Unparseable input and nil degrade to "now" instead of failing.
	for _, input := range []interface{}{nil, "not a date at all", struct{}{}} {
		got := NormalizeDate(input)
		assert.WithinDuration(t, time.Now().UTC(), got, 5*time.Second)
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	first := FormatDate(NormalizeDate("2022-11-03T07:45:12Z"))
	second := FormatDate(NormalizeDate(first))
	assert.Equal(t, first, second)
}

func TestNormalizeDateStrict(t *testing.T) {
	got, err := NormalizeDateStrict("2021-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2021-06-15T10:30:00Z", FormatDate(got))

	_, err = NormalizeDateStrict("not a date at all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse date string")

	_, err = NormalizeDateStrict(struct{}{})
	require.Error(t, err)
}

func TestFormatDateIsPureFormatting(t *testing.T) {
	// FormatDate does not convert zones; NormalizeDate already did.
	utc := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2021-01-02T03:04:05Z", FormatDate(utc))
}
