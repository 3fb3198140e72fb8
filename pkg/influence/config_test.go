package influence

import (
	"errors"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate_WeightSums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmailWeightVolume = 0.7 // 0.7 + 0.4 != 1.0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for email sub-weights")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.TeamsWeightVideo = 0.2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for teams sub-weights, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.ChannelWeightTeams = 0.5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for channel weights, got %v", err)
	}
}

func TestValidate_NonPositiveCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EmailVolumeCap = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for zero cap, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.TeamsDurationCapHours = -5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative cap, got %v", err)
	}
}

func TestFromSettings_Overrides(t *testing.T) {
	cfg, err := FromSettings(map[string]string{
		"email_volume_cap":     "1000",
		"channel_weight_email": "0.7",
		"channel_weight_teams": "0.3",
		"bridge_limit":         "5",
		"unrelated_setting":    "ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EmailVolumeCap != 1000 {
		t.Fatalf("expected cap override 1000, got %v", cfg.EmailVolumeCap)
	}
	if cfg.ChannelWeightEmail != 0.7 || cfg.ChannelWeightTeams != 0.3 {
		t.Fatalf("expected channel weight overrides, got %v/%v", cfg.ChannelWeightEmail, cfg.ChannelWeightTeams)
	}
	if cfg.BridgeLimit != 5 {
		t.Fatalf("expected bridge limit 5, got %d", cfg.BridgeLimit)
	}
	// Untouched keys keep their defaults.
	if cfg.TeamsMeetingCap != 50 {
		t.Fatalf("expected default meeting cap, got %v", cfg.TeamsMeetingCap)
	}
}

func TestFromSettings_ParseError(t *testing.T) {
	if _, err := FromSettings(map[string]string{"email_volume_cap": "a lot"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromSettings_InvalidCombination(t *testing.T) {
	// A parsable but invalid weight set fails fast, never renormalized.
	_, err := FromSettings(map[string]string{"channel_weight_email": "0.9"})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
