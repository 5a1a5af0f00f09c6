package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SMTP_HOST", "SMTP_USER", "SMTP_PASS", "ADMIN_USERNAME", "ADMIN_PASSWORD", "VISITOR_RETENTION", "TO_EMAIL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.False(t, cfg.SMTP.Enabled())
	assert.True(t, cfg.Admin.UsesDefaults())
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
	assert.Equal(t, "hello@ahzammaqsood.com", cfg.ToEmail)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "app-password")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "long-secret")
	t.Setenv("VISITOR_RETENTION", "720h")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.SMTP.Enabled())
	assert.False(t, cfg.Admin.UsesDefaults())
	assert.Equal(t, 30*24*time.Hour, cfg.VisitorRetention)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{key: "SHUTDOWN_TIMEOUT", value: "soon", want: "parse env"},
		{key: "CLEANUP_INTERVAL", value: "0s", want: "CLEANUP_INTERVAL must be positive"},
		{key: "CLEANUP_INTERVAL", value: "-1h", want: "CLEANUP_INTERVAL must be positive"},
		{key: "VISITOR_RETENTION", value: "0s", want: "VISITOR_RETENTION must be positive"},
		{key: "VISITOR_RETENTION", value: "-24h", want: "VISITOR_RETENTION must be positive"},
		{key: "SHUTDOWN_TIMEOUT", value: "0s", want: "SHUTDOWN_TIMEOUT must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := loadConfig()
			require.ErrorContains(t, err, tt.want)
		})
	}
}
