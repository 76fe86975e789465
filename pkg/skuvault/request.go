package skuvault

import (
	"bytes"
	"encoding/json"
)

// Payload is an insertion-ordered JSON object. The vendor documents its
// request bodies with the token pair first, so ordering is preserved through
// marshaling instead of relying on Go's map iteration.
type Payload struct {
	keys   []string
	values map[string]interface{}
}

func NewPayload() *Payload {
	return &Payload{values: make(map[string]interface{})}
}

// Set adds or replaces a field. A replaced field keeps its original
// position. Returns the payload for chaining.
func (p *Payload) Set(key string, value interface{}) *Payload {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

func (p *Payload) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

func (p *Payload) Len() int { return len(p.keys) }

func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// buildRequest assembles the final request body: the token pair first, then
// the operation fields. Caller-supplied fields never override the auth keys.
func buildRequest(creds Credentials, fields *Payload) *Payload {
	p := NewPayload().
		Set("TenantToken", creds.TenantToken).
		Set("UserToken", creds.UserToken)
	if fields == nil {
		return p
	}
	for _, key := range fields.keys {
		if key == "TenantToken" || key == "UserToken" {
			continue
		}
		p.Set(key, fields.values[key])
	}
	return p
}
