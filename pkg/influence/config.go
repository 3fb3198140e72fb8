package influence

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidConfig is returned when the scoring configuration fails
// validation. Invalid weights are never silently renormalized.
var ErrInvalidConfig = errors.New("invalid scoring configuration")

const weightSumTolerance = 1e-9

// Config is the strongly-typed scoring configuration, loaded once per
// compute run and passed explicitly into the core functions.
type Config struct {
	// Email signal caps and sub-weights.
	EmailVolumeCap        float64
	EmailLatencyCapSecs   float64
	EmailWeightVolume     float64
	EmailWeightLatency    float64

	// Teams signal caps and sub-weights.
	TeamsMeetingCap       float64
	TeamsAudienceCap      float64
	TeamsDurationCapHours float64
	TeamsWeightFrequency  float64
	TeamsWeightAudience   float64
	TeamsWeightDuration   float64
	TeamsWeightOrganizer  float64
	TeamsWeightVideo      float64

	// Unified score channel weights.
	ChannelWeightEmail float64
	ChannelWeightTeams float64

	// Community detection and bridge reporting bounds.
	CommunityMaxIterations int
	BridgeLimit            int
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		EmailVolumeCap:      500,
		EmailLatencyCapSecs: 7200,
		EmailWeightVolume:   0.6,
		EmailWeightLatency:  0.4,

		TeamsMeetingCap:       50,
		TeamsAudienceCap:      20,
		TeamsDurationCapHours: 40,
		TeamsWeightFrequency:  0.30,
		TeamsWeightAudience:   0.25,
		TeamsWeightDuration:   0.20,
		TeamsWeightOrganizer:  0.15,
		TeamsWeightVideo:      0.10,

		ChannelWeightEmail: 0.6,
		ChannelWeightTeams: 0.4,

		CommunityMaxIterations: 10,
		BridgeLimit:            20,
	}
}

// FromSettings builds a Config from the string-typed settings rows,
// starting from the defaults. Unknown keys are ignored so that unrelated
// settings can share the same table.
func FromSettings(settings map[string]string) (Config, error) {
	cfg := DefaultConfig()

	floats := map[string]*float64{
		"email_volume_cap":          &cfg.EmailVolumeCap,
		"email_latency_cap_seconds": &cfg.EmailLatencyCapSecs,
		"email_weight_volume":       &cfg.EmailWeightVolume,
		"email_weight_latency":      &cfg.EmailWeightLatency,
		"teams_meeting_cap":         &cfg.TeamsMeetingCap,
		"teams_audience_cap":        &cfg.TeamsAudienceCap,
		"teams_duration_cap_hours":  &cfg.TeamsDurationCapHours,
		"teams_weight_frequency":    &cfg.TeamsWeightFrequency,
		"teams_weight_audience":     &cfg.TeamsWeightAudience,
		"teams_weight_duration":     &cfg.TeamsWeightDuration,
		"teams_weight_organizer":    &cfg.TeamsWeightOrganizer,
		"teams_weight_video":        &cfg.TeamsWeightVideo,
		"channel_weight_email":      &cfg.ChannelWeightEmail,
		"channel_weight_teams":      &cfg.ChannelWeightTeams,
	}
	ints := map[string]*int{
		"community_max_iterations": &cfg.CommunityMaxIterations,
		"bridge_limit":             &cfg.BridgeLimit,
	}

	for key, target := range floats {
		raw, ok := settings[key]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("setting %q: %w", key, err)
		}
		*target = v
	}
	for key, target := range ints {
		raw, ok := settings[key]
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("setting %q: %w", key, err)
		}
		*target = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fails fast on a cap <= 0 or a sub-weight group that does not sum
// to 1.0. This runs once per compute pass, before any scoring.
func (c Config) Validate() error {
	caps := map[string]float64{
		"email_volume_cap":          c.EmailVolumeCap,
		"email_latency_cap_seconds": c.EmailLatencyCapSecs,
		"teams_meeting_cap":         c.TeamsMeetingCap,
		"teams_audience_cap":        c.TeamsAudienceCap,
		"teams_duration_cap_hours":  c.TeamsDurationCapHours,
	}
	for name, v := range caps {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
		}
	}

	if s := c.EmailWeightVolume + c.EmailWeightLatency; math.Abs(s-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: email sub-weights sum to %v, want 1.0", ErrInvalidConfig, s)
	}
	teamsSum := c.TeamsWeightFrequency + c.TeamsWeightAudience + c.TeamsWeightDuration +
		c.TeamsWeightOrganizer + c.TeamsWeightVideo
	if math.Abs(teamsSum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: teams sub-weights sum to %v, want 1.0", ErrInvalidConfig, teamsSum)
	}
	if s := c.ChannelWeightEmail + c.ChannelWeightTeams; math.Abs(s-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: channel weights sum to %v, want 1.0", ErrInvalidConfig, s)
	}

	if c.CommunityMaxIterations <= 0 {
		return fmt.Errorf("%w: community_max_iterations must be positive, got %d", ErrInvalidConfig, c.CommunityMaxIterations)
	}
	if c.BridgeLimit <= 0 {
		return fmt.Errorf("%w: bridge_limit must be positive, got %d", ErrInvalidConfig, c.BridgeLimit)
	}
	return nil
}
