package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("DATABASE_URL", "postgres://localhost/homeyprayers")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./web", cfg.WebRoot)
	assert.Equal(t, "static", cfg.StaticFiles)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 3000, cfg.BrowserPort)
	assert.Equal(t, "/", cfg.MainFileURL)
	assert.Equal(t, "index.html", cfg.MainFileName)
	// main file defaults to living inside the web root
	assert.Equal(t, cfg.WebRoot, cfg.MainFilePath)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 2, cfg.DefaultMethod)
	assert.Empty(t, cfg.AladhanBaseURL)
	assert.Equal(t, "Local", cfg.DefaultTimezone)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("WEBROOT", "/srv/app")
	t.Setenv("STATIC_FILES", "public")
	t.Setenv("PORT", "8080")
	t.Setenv("BROWSER_PORT", "8081")
	t.Setenv("MAIN_FILE_URL", "/home")
	t.Setenv("MAIN_FILE_PATH", "/srv/app/pages")
	t.Setenv("MAIN_FILE_NAME", "main.html")
	t.Setenv("DEBUG", "true")
	t.Setenv("DEFAULT_LATITUDE", "25.2048")
	t.Setenv("ALADHAN_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("DEFAULT_TIMEZONE", "America/Chicago")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/app", cfg.WebRoot)
	assert.Equal(t, "public", cfg.StaticFiles)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 8081, cfg.BrowserPort)
	assert.Equal(t, "/home", cfg.MainFileURL)
	assert.Equal(t, "/srv/app/pages", cfg.MainFilePath)
	assert.Equal(t, "main.html", cfg.MainFileName)
	assert.True(t, cfg.Debug)
	assert.InDelta(t, 25.2048, cfg.DefaultLatitude, 1e-9)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.AladhanBaseURL)
	assert.Equal(t, "America/Chicago", cfg.DefaultTimezone)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/homeyprayers")

	_, err := Load()
	assert.Error(t, err)
}
