package skuvault

import (
	"encoding/json"
	"time"

	"github.com/araddon/dateparse"
)

// APITime is a custom time type for SkuVault date fields. It marshals to the
// canonical UTC string the vendor expects and unmarshals permissively, since
// the API is not consistent about the formats it returns.
type APITime struct {
	time.Time
}

// NewAPITime builds an APITime from any representation NormalizeDate
// accepts.
func NewAPITime(v interface{}) APITime {
	return APITime{Time: NormalizeDate(v)}
}

// UnmarshalJSON implements json.Unmarshaler for APITime
func (t *APITime) UnmarshalJSON(data []byte) error {
	var timeStr string
	if err := json.Unmarshal(data, &timeStr); err != nil {
		return err
	}

	// Handle empty string
	if timeStr == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := dateparse.ParseAny(timeStr)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

// MarshalJSON implements json.Marshaler for APITime
func (t APITime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(FormatDate(t.Time.UTC()))
}
