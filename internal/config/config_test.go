package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-comments-api/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_ADDRESS", "CONTEXT_TIMEOUT", "CACHE_DB", "API_BASE_URL", "COMMENTS_PER_PAGE",
		"COMMENTS_MAX_PER_PAGE", "COMMENT_CACHE_TTL_SECONDS", "SITE_TIMEZONE", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.FromEnv()
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, 100, cfg.MaxPerPage)
	assert.Equal(t, 30*time.Second, cfg.CommentCacheTTL)
	assert.Equal(t, "http://localhost:9090", cfg.APIBaseURL)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnvValues(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("CONTEXT_TIMEOUT", "5")
	t.Setenv("CACHE_HOST", "redis")
	t.Setenv("CACHE_PORT", "6380")
	t.Setenv("API_BASE_URL", "https://example.com/wp/v2/")
	t.Setenv("COMMENTS_PER_PAGE", "20")
	t.Setenv("COMMENTS_MAX_PER_PAGE", "40")
	t.Setenv("SITE_TIMEZONE", "Asia/Shanghai")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("DATABASE_USER", "user")
	t.Setenv("DATABASE_PASS", "pass")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_PORT", "3307")
	t.Setenv("DATABASE_NAME", "site")

	cfg := config.FromEnv()
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "redis:6380", cfg.CacheAddr())
	assert.Equal(t, "https://example.com/wp/v2", cfg.APIBaseURL)
	assert.Equal(t, 20, cfg.PerPage)
	assert.Equal(t, 40, cfg.MaxPerPage)
	assert.Equal(t, "Asia/Shanghai", cfg.Location.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "user:pass@tcp(db:3307)/site?loc=UTC&parseTime=1", cfg.DSN())
}

func TestFromEnvFallbacks(t *testing.T) {
	t.Setenv("CONTEXT_TIMEOUT", "soon")
	t.Setenv("COMMENTS_PER_PAGE", "500")
	t.Setenv("COMMENTS_MAX_PER_PAGE", "-1")
	t.Setenv("SITE_TIMEZONE", "Mars/Olympus")
	t.Setenv("API_BASE_URL", "not a url")

	cfg := config.FromEnv()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 100, cfg.MaxPerPage)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, "http://localhost:9090", cfg.APIBaseURL)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("COMMENTS_PER_PAGE=7\n"), 0o600))
	// godotenv never overrides variables that are already set
	t.Setenv("COMMENTS_PER_PAGE", "")
	require.NoError(t, os.Unsetenv("COMMENTS_PER_PAGE"))

	cfg := config.Load(path)
	assert.Equal(t, 7, cfg.PerPage)
	require.NoError(t, os.Unsetenv("COMMENTS_PER_PAGE"))

	missing := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, 10, missing.PerPage)
}

func TestSetupLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	cfg := &config.Config{LogFormat: "json", LogLevel: "debug"}
	cfg.SetupLogger()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	cfg = &config.Config{LogLevel: "loud"}
	cfg.SetupLogger()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
