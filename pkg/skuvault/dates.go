package skuvault

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// dateFormat is the canonical rendering the vendor expects for every date
// field: a UTC instant as YYYY-MM-DDTHH:mm:ssZ.
const dateFormat = "2006-01-02T15:04:05"

// NormalizeDate resolves any accepted date representation to a UTC instant:
//
//   - numeric values are Unix epoch seconds
//   - strings go through a permissive parser; an unparseable string degrades
//     to the current time rather than failing (preserved vendor-client
//     behavior, see NormalizeDateStrict for the opt-in strict variant)
//   - time.Time values are converted to UTC as-is
//   - nil and anything else default to the current time
//
// NormalizeDate never fails. Normalizing a string already in canonical form
// is idempotent.
func NormalizeDate(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case APITime:
		return t.Time.UTC()
	case int:
		return time.Unix(int64(t), 0).UTC()
	case int32:
		return time.Unix(int64(t), 0).UTC()
	case int64:
		return time.Unix(t, 0).UTC()
	case float64:
		return time.Unix(int64(t), 0).UTC()
	case string:
		parsed, err := dateparse.ParseAny(t)
		if err != nil {
			// Unparseable input falls back to "now". This mirrors the
			// original client's leniency and is load-bearing for callers
			// that pass through dirty data.
			return time.Now().UTC()
		}
		return parsed.UTC()
	default:
		return time.Now().UTC()
	}
}

// NormalizeDateStrict is the strict variant of NormalizeDate: instead of
// degrading to the current time, unparseable strings and unsupported types
// return an error. Nil still means "now".
func NormalizeDateStrict(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Now().UTC(), nil
	case time.Time:
		return t.UTC(), nil
	case APITime:
		return t.Time.UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int32:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case float64:
		return time.Unix(int64(t), 0).UTC(), nil
	case string:
		parsed, err := dateparse.ParseAny(t)
		if err != nil {
			return time.Time{}, fmt.Errorf("unable to parse date string %q: %w", t, err)
		}
		return parsed.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date value of type %T", v)
	}
}

// FormatDate renders an instant in the canonical vendor format. It is a pure
// formatting step: no timezone conversion happens here, that is
// NormalizeDate's job.
func FormatDate(t time.Time) string {
	return t.Format(dateFormat) + "Z"
}
