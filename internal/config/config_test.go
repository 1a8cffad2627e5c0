package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.CacheTTL != 6*time.Hour {
		t.Errorf("expected 6h cache TTL, got %v", cfg.CacheTTL)
	}
	if cfg.DiffProfile != "default" {
		t.Errorf("expected default diff profile, got %q", cfg.DiffProfile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DIFF_PROFILE", "strict")
	t.Setenv("MIN_DIFF_TOKENS", "25")
	t.Setenv("MIN_EQUAL_RATIO", "0.5")
	t.Setenv("CACHE_TTL", "30m")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("PORT override ignored, got %q", cfg.Port)
	}
	if cfg.CacheTTL != 30*time.Minute {
		t.Errorf("CACHE_TTL override ignored, got %v", cfg.CacheTTL)
	}

	cc := cfg.CompareConfig()
	if cc.MinDiffTokens != 25 {
		t.Errorf("expected token override 25, got %d", cc.MinDiffTokens)
	}
	if cc.MinEqualRatio != 0.5 {
		t.Errorf("expected ratio override 0.5, got %v", cc.MinEqualRatio)
	}
}

func TestCompareConfig_Profiles(t *testing.T) {
	cfg := Config{DiffProfile: "default", MinDiffTokens: -1, MinEqualRatio: -1, MaxSectionMatches: -1}
	cc := cfg.CompareConfig()
	if cc.MinDiffTokens != 80 || cc.MinEqualRatio != 0.777 {
		t.Errorf("default profile: got %d/%v", cc.MinDiffTokens, cc.MinEqualRatio)
	}

	cfg.DiffProfile = "strict"
	cc = cfg.CompareConfig()
	if cc.MinDiffTokens != 50 || cc.MinEqualRatio != 0.677 {
		t.Errorf("strict profile: got %d/%v", cc.MinDiffTokens, cc.MinEqualRatio)
	}
	if cc.MaxSectionMatches != 400 {
		t.Errorf("strict profile should cap matches at 400, got %d", cc.MaxSectionMatches)
	}
}

func TestCleanupInterval(t *testing.T) {
	cfg := Config{CacheTTL: 6 * time.Hour}
	if got := cfg.CleanupInterval(); got != 90*time.Minute {
		t.Errorf("expected quarter of TTL, got %v", got)
	}

	// Short TTLs are floored so a cleanup ticker never gets a
	// non-positive interval.
	cfg.CacheTTL = 2 * time.Nanosecond
	if got := cfg.CleanupInterval(); got != time.Minute {
		t.Errorf("expected one-minute floor, got %v", got)
	}
}

func TestValidate_BadProfile(t *testing.T) {
	cfg := Config{DiffProfile: "loose"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestValidate_BadRatio(t *testing.T) {
	cfg := Config{DiffProfile: "default", MinEqualRatio: 1.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for ratio above 1")
	}
}
