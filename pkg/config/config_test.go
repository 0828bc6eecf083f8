package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "./data/radio.db", GetString("database.path"))
	assert.Equal(t, 24*time.Hour, GetDuration("auth.token_ttl"))
	assert.Equal(t, 15, GetInt("pagination.default_per_page"))
	assert.Equal(t, 20, GetInt("pagination.comments_per_page"))
	assert.True(t, GetBool("rate_limiting.enabled"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			setup:   func() { setDefaults() },
			wantErr: false,
		},
		{
			name: "invalid port",
			setup: func() {
				setDefaults()
				viper.Set("server.port", -1)
			},
			wantErr: true,
		},
		{
			name: "placeholder secret rejected in production",
			setup: func() {
				setDefaults()
				viper.Set("environment", "production")
				viper.Set("auth.jwt_secret", "changeme")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			tt.setup()

			err := validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetConfigUnmarshal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("server.host", "127.0.0.1")
	viper.Set("auth.jwt_secret", "test-secret")

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15, cfg.Pagination.DefaultPerPage)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateAutoCorrects(t *testing.T) {
	cfg := &Config{
		Server:     ServerConfig{Port: 8080},
		Pagination: PaginationConfig{DefaultPerPage: 0, CommentsPerPage: 0},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 20, cfg.Pagination.CommentsPerPage)
}
