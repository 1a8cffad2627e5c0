package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/billtracer/internal/compare"
)

// AppVersion is the visible build banner, served at /version.
const AppVersion = "BillTracer v3 — strict-diff + fixed filters (77.7%)"

type Config struct {
	Port string

	// Auth for admin endpoints (/flush, /api/stats). Empty leaves them open,
	// which is fine for local use.
	AdminAPIKey string

	// Page cache
	CacheTTL time.Duration

	// Fetching
	FetchTimeout time.Duration
	UserAgent    string

	// Diff thresholds; DiffProfile picks the base pair, the explicit values
	// override it when set.
	DiffProfile   string
	MinDiffTokens int
	MinEqualRatio float64

	// Segmentation
	SpelledOutHeaders bool
	MaxSectionMatches int

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "5000"),

		AdminAPIKey: os.Getenv("BILLTRACER_ADMIN_KEY"),

		CacheTTL: envDuration("CACHE_TTL", 6*time.Hour),

		FetchTimeout: envDuration("FETCH_TIMEOUT", 60*time.Second),
		UserAgent:    os.Getenv("FETCH_USER_AGENT"),

		DiffProfile:   envOr("DIFF_PROFILE", "default"),
		MinDiffTokens: envInt("MIN_DIFF_TOKENS", -1),
		MinEqualRatio: envFloat("MIN_EQUAL_RATIO", -1),

		SpelledOutHeaders: envBool("SPELLED_OUT_HEADERS", false),
		MaxSectionMatches: envInt("MAX_SECTION_MATCHES", -1),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 6 * time.Hour
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DiffProfile != "default" && c.DiffProfile != "strict" {
		return fmt.Errorf("DIFF_PROFILE must be default or strict, got %q", c.DiffProfile)
	}
	if c.MinEqualRatio >= 0 && c.MinEqualRatio > 1 {
		return fmt.Errorf("MIN_EQUAL_RATIO must be at most 1, got %v", c.MinEqualRatio)
	}
	return nil
}

// CleanupInterval is how often expired pages are evicted from the cache: a
// quarter of the TTL, floored at one minute so a tiny CACHE_TTL cannot yield
// a non-positive ticker interval.
func (c Config) CleanupInterval() time.Duration {
	return max(c.CacheTTL/4, time.Minute)
}

// CompareConfig resolves the profile and overrides into concrete comparison
// settings.
func (c Config) CompareConfig() compare.Config {
	cc := compare.DefaultConfig()
	if c.DiffProfile == "strict" {
		cc = compare.StrictConfig()
	}
	if c.MinDiffTokens >= 0 {
		cc.MinDiffTokens = c.MinDiffTokens
	}
	if c.MinEqualRatio >= 0 {
		cc.MinEqualRatio = c.MinEqualRatio
	}
	if c.MaxSectionMatches >= 0 {
		cc.MaxSectionMatches = c.MaxSectionMatches
	}
	cc.SpelledOutHeaders = c.SpelledOutHeaders
	return cc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
