package config

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "database", cfg.Settings.Store)
	assert.Equal(t, "pdf-settings", cfg.Settings.Key)
	assert.Equal(t, 100*time.Millisecond, cfg.Documents.PreviewDebounce())
	assert.Equal(t, 90*24*time.Hour, cfg.Documents.Retention())
	assert.Equal(t, "0 3 * * *", cfg.Documents.RetentionSchedule)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SETTINGS_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("DOCUMENTS_RETENTIONDAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Settings.Store)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, 7, cfg.Documents.RetentionDays)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage:  StorageConfig{Mode: "local"},
			Settings: SettingsConfig{Store: "memory"},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"s3 storage", func(c *Config) { c.Storage.Mode = "s3" }, ""},
		{"unknown storage", func(c *Config) { c.Storage.Mode = "ftp" }, "storage.mode"},
		{"unknown settings store", func(c *Config) { c.Settings.Store = "file" }, "settings.store"},
		{"negative retention", func(c *Config) { c.Documents.RetentionDays = -1 }, "retentionDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type fakeSecrets map[string]string

func (f fakeSecrets) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	if v, ok := f[secretName]; ok {
		return v, nil
	}
	return "", fmt.Errorf("secret %s not found", secretName)
}

func TestResolveSecrets(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "localhost", Password: "local"}}

	resolveSecrets(context.Background(), cfg, fakeSecrets{
		"POSTGRES-MAIN-PASSWORD":    "vault-pass",
		"REDIS-PASSWORD":            "redis-pass",
		"storage-connection-string": "DefaultEndpointsProtocol=https",
	})

	assert.Equal(t, "localhost", cfg.Database.Host, "missing secrets keep the configured value")
	assert.Equal(t, "vault-pass", cfg.Database.Password)
	assert.Equal(t, "redis-pass", cfg.Redis.Password)
	assert.Equal(t, "DefaultEndpointsProtocol=https", cfg.Storage.CloudConnectionString)
}
