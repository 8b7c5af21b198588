// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/studyhub/internal/platform/config"
)

/*
TestParse_Defaults verifies defaults with only the mandatory secret set.
*/
func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverMemory, cfg.StoreDriver)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.UsesRSA())
	assert.True(t, cfg.IsDevelopment())
}

func TestParse_DriverRequirements(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		ok   bool
	}{
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres", "JWT_SECRET": "x"}, false},
		{"postgres with url", map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/db", "JWT_SECRET": "x"}, true},
		{"mongo without uri", map[string]string{"STORE_DRIVER": "mongo", "JWT_SECRET": "x"}, false},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite", "JWT_SECRET": "x"}, false},
		{"no credential key", map[string]string{"STORE_DRIVER": "memory"}, false},
		{"rsa key only", map[string]string{"JWT_PUBLIC_KEY_PATH": "/keys/pub.pem"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Parse()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestLoad_DotEnv verifies that a .env file fills unset variables and a missing file is ignored.
*/
func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("JWT_SECRET=from-file\nCORS_ALLOWED_ORIGINS=https://a.example,https://b.example\n"), 0o600))

	// godotenv does not override variables that are already set
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	require.NoError(t, os.Unsetenv("CORS_ALLOWED_ORIGINS"))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)

	_, err = config.Load(filepath.Join(dir, "missing.env"))
	assert.NoError(t, err)
}
