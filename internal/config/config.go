package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress       = ":9090"
	defaultTimeout       = 30
	defaultCacheDB       = 0
	defaultPerPage       = 10
	defaultMaxPerPage    = 100
	defaultCommentTTLSec = 30
	defaultBaseURL       = "http://localhost:9090"
	defaultServiceName   = "comments-api"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	ServerAddress string
	Timeout       time.Duration

	DatabaseHost string
	DatabasePort string
	DatabaseUser string
	DatabasePass string
	DatabaseName string

	CacheHost string
	CachePort string
	CachePass string
	CacheDB   int

	JWTSecret string

	APIBaseURL      string
	PerPage         int
	MaxPerPage      int
	CommentCacheTTL time.Duration
	Location        *time.Location
	CORSOrigins     []string

	LogFormat string
	LogLevel  string

	OTELEndpoint    string
	OTELServiceName string
}

// Load reads .env files (when present) and then the process environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		logrus.Info("no .env file loaded, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment, falling back to
// defaults for missing or malformed values.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddress: envOr("SERVER_ADDRESS", defaultAddress),
		Timeout:       time.Duration(intOr("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,

		DatabaseHost: os.Getenv("DATABASE_HOST"),
		DatabasePort: envOr("DATABASE_PORT", "3306"),
		DatabaseUser: os.Getenv("DATABASE_USER"),
		DatabasePass: os.Getenv("DATABASE_PASS"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		CacheHost: envOr("CACHE_HOST", "localhost"),
		CachePort: envOr("CACHE_PORT", "6379"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   intOr("CACHE_DB", defaultCacheDB),

		JWTSecret: os.Getenv("JWT_SECRET"),

		APIBaseURL:      strings.TrimRight(envOr("API_BASE_URL", defaultBaseURL), "/"),
		MaxPerPage:      intOr("COMMENTS_MAX_PER_PAGE", defaultMaxPerPage),
		CommentCacheTTL: time.Duration(intOr("COMMENT_CACHE_TTL_SECONDS", defaultCommentTTLSec)) * time.Second,
		Location:        locationOr("SITE_TIMEZONE", time.Local),
		CORSOrigins:     listOf("CORS_ALLOW_ORIGINS"),

		LogFormat: strings.ToLower(os.Getenv("LOG_FORMAT")),
		LogLevel:  envOr("LOG_LEVEL", "info"),

		OTELEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTELServiceName: envOr("OTEL_SERVICE_NAME", defaultServiceName),
	}

	if cfg.MaxPerPage <= 0 {
		logrus.Warnf("invalid COMMENTS_MAX_PER_PAGE %d, using %d", cfg.MaxPerPage, defaultMaxPerPage)
		cfg.MaxPerPage = defaultMaxPerPage
	}
	cfg.PerPage = intOr("COMMENTS_PER_PAGE", defaultPerPage)
	if cfg.PerPage <= 0 || cfg.PerPage > cfg.MaxPerPage {
		logrus.Warnf("invalid COMMENTS_PER_PAGE %d, using %d", cfg.PerPage, min(defaultPerPage, cfg.MaxPerPage))
		cfg.PerPage = min(defaultPerPage, cfg.MaxPerPage)
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		logrus.Warnf("invalid API_BASE_URL %q, using %s", cfg.APIBaseURL, defaultBaseURL)
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is empty, every request will be anonymous")
	}

	return cfg
}

// DSN is the mysql connection string for the configured database. The
// connection always runs in UTC; the comment store converts site-local
// dates itself.
func (c *Config) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName, val.Encode())
}

// CacheAddr is the host:port of the redis server.
func (c *Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// SetupLogger applies the configured level and format to the standard logrus
// logger.
func (c *Config) SetupLogger() {
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}

func locationOr(key string, def *time.Location) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return def
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logrus.Warnf("failed to load time zone %s=%q, using %s", key, name, def)
		return def
	}
	return loc
}

func listOf(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
