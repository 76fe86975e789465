package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		cfg     Config
		wantErr string
	}{
		"valid production": {
			cfg: Config{TenantToken: "t", UserToken: "u", Environment: Production},
		},
		"valid staging": {
			cfg: Config{TenantToken: "t", UserToken: "u", Environment: Staging},
		},
		"empty environment defaults": {
			cfg: Config{TenantToken: "t", UserToken: "u"},
		},
		"missing tenant token": {
			cfg:     Config{UserToken: "u"},
			wantErr: "SKUVAULT_TENANT_TOKEN",
		},
		"missing user token": {
			cfg:     Config{TenantToken: "t"},
			wantErr: "SKUVAULT_USER_TOKEN",
		},
		"unknown environment": {
			cfg:     Config{TenantToken: "t", UserToken: "u", Environment: "sandbox"},
			wantErr: "SKUVAULT_ENVIRONMENT",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestResolveBaseURI(t *testing.T) {
	assert.Equal(t, "https://app.skuvault.com/api/",
		(&Config{}).ResolveBaseURI())
	assert.Equal(t, "https://staging.skuvault.com/api/",
		(&Config{Environment: Staging}).ResolveBaseURI())
	assert.Equal(t, "http://localhost:8080/api/",
		(&Config{Environment: Staging, BaseURI: "http://localhost:8080/api/"}).ResolveBaseURI())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SKUVAULT_TENANT_TOKEN", "tenant-env")
	t.Setenv("SKUVAULT_USER_TOKEN", "user-env")
	t.Setenv("SKUVAULT_ENVIRONMENT", "staging")
	t.Setenv("SKUVAULT_BASE_URI", "")
	t.Setenv("SKUVAULT_REQUEST_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tenant-env", cfg.TenantToken)
	assert.Equal(t, "user-env", cfg.UserToken)
	assert.Equal(t, Staging, cfg.Environment)
	assert.Equal(t, "https://staging.skuvault.com/api/", cfg.ResolveBaseURI())
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoadRequestTimeout(t *testing.T) {
	t.Setenv("SKUVAULT_TENANT_TOKEN", "t")
	t.Setenv("SKUVAULT_USER_TOKEN", "u")
	t.Setenv("SKUVAULT_ENVIRONMENT", "")
	t.Setenv("SKUVAULT_BASE_URI", "")

	t.Setenv("SKUVAULT_REQUEST_TIMEOUT", "45")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)

	for _, raw := range []string{"soon", "-5"} {
		t.Setenv("SKUVAULT_REQUEST_TIMEOUT", raw)
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SKUVAULT_REQUEST_TIMEOUT")
	}
}
