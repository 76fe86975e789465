package skuvault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest(t *testing.T) {
	creds := Credentials{TenantToken: "tenant-1", UserToken: "user-1"}

	tests := map[string]struct {
		fields   *Payload
		wantKeys []string
	}{
		"empty payload still carries the token pair": {
			fields:   NewPayload(),
			wantKeys: []string{"TenantToken", "UserToken"},
		},
		"nil payload": {
			fields:   nil,
			wantKeys: []string{"TenantToken", "UserToken"},
		},
		"operation fields follow the token pair": {
			fields:   NewPayload().Set("Sku", "A1").Set("Quantity", 5),
			wantKeys: []string{"TenantToken", "UserToken", "Sku", "Quantity"},
		},
		"caller cannot override auth fields": {
			fields:   NewPayload().Set("TenantToken", "evil").Set("Sku", "A1"),
			wantKeys: []string{"TenantToken", "UserToken", "Sku"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := buildRequest(creds, tc.fields)
			assert.Equal(t, tc.wantKeys, got.Keys())

			tenant, ok := got.Get("TenantToken")
			require.True(t, ok)
			assert.Equal(t, "tenant-1", tenant)
			user, ok := got.Get("UserToken")
			require.True(t, ok)
			assert.Equal(t, "user-1", user)
		})
	}
}

func TestBuildRequestContainsUnionOfFields(t *testing.T) {
	creds := Credentials{TenantToken: "t", UserToken: "u"}
	fields := NewPayload().
		Set("PageNumber", 0).
		Set("PageSize", 100)

	got := buildRequest(creds, fields)
	require.Equal(t, 4, got.Len())

	v, ok := got.Get("PageSize")
	require.True(t, ok)
	assert.Equal(t, 100, v)
}

func TestPayloadMarshalPreservesOrder(t *testing.T) {
	p := NewPayload().
		Set("TenantToken", "t").
		Set("UserToken", "u").
		Set("Items", []string{"a", "b"}).
		Set("Nested", map[string]int{"N": 1})

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"TenantToken":"t","UserToken":"u","Items":["a","b"],"Nested":{"N":1}}`, string(data))
}

func TestPayloadSetReplacesInPlace(t *testing.T) {
	p := NewPayload().
		Set("A", 1).
		Set("B", 2).
		Set("A", 3)

	assert.Equal(t, []string{"A", "B"}, p.Keys())
	v, ok := p.Get("A")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
