package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetechcm/website/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Production, cfg.AppEnv)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "hello@onetech.cm", cfg.Contact.RecipientEmail)
	assert.Equal(t, "hello@onetech.cm", cfg.Contact.FallbackEmail)
	assert.False(t, cfg.Resend.Configured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("RESEND_FROM_EMAIL", "noreply@onetech.cm")
	t.Setenv("CONTACT_RECIPIENT_EMAIL", "team@onetech.cm")
	t.Setenv("LOG_VERBOSE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.Resend.Configured())
	assert.Equal(t, "noreply@onetech.cm", cfg.Resend.SenderEmail)
	assert.Equal(t, "team@onetech.cm", cfg.Contact.RecipientEmail)
	assert.True(t, cfg.Logger.Verbose)
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, config.Config{AppEnv: "development"}.IsDevelopment())
	assert.True(t, config.Config{AppEnv: "dev"}.IsDevelopment())
	assert.False(t, config.Config{AppEnv: "production"}.IsDevelopment())
	assert.False(t, config.Config{AppEnv: ""}.IsDevelopment())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
