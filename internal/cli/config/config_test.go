package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock/internal/cli/config"
)

func TestLoadAppliesDefaultsWithSecretFromEnv(t *testing.T) {
	os.Setenv("SPOCK_AUTH_JWT_SECRET", "test-secret")
	defer os.Unsetenv("SPOCK_AUTH_JWT_SECRET")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 4747, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:4747", cfg.Server.Addr())
	assert.Equal(t, "sqlite3", cfg.Audit.Driver)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	os.Unsetenv("SPOCK_AUTH_JWT_SECRET")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAuditDriver(t *testing.T) {
	os.Setenv("SPOCK_AUTH_JWT_SECRET", "test-secret")
	os.Setenv("SPOCK_AUDIT_DRIVER", "mysql")
	defer os.Unsetenv("SPOCK_AUTH_JWT_SECRET")
	defer os.Unsetenv("SPOCK_AUDIT_DRIVER")

	_, err := config.Load()
	assert.Error(t, err)
}
