package influence

import "math"

// ComputeEmailScore maps raw email volume and average response latency into
// a 0-100 sub-score. Both signals are normalized against their caps before
// weighting; exceeding a cap never raises the score past the value reached
// exactly at the cap. An actor with no email activity scores 0, not null.
func (c Config) ComputeEmailScore(volume int, latencySeconds float64) float64 {
	if volume == 0 && latencySeconds == 0 {
		return 0
	}

	volNorm := math.Min(float64(volume)/c.EmailVolumeCap, 1)

	// Faster responses score higher; latency 0 means "no latency data".
	latNorm := 0.0
	if latencySeconds > 0 {
		latNorm = 1 - math.Min(latencySeconds/c.EmailLatencyCapSecs, 1)
	}

	var score float64
	switch {
	case volume > 0 && latencySeconds > 0:
		score = c.EmailWeightVolume*volNorm + c.EmailWeightLatency*latNorm
	case volume > 0:
		score = volNorm
	default:
		score = latNorm
	}

	return score * 100
}

// ComputeTeamsScore maps raw meeting aggregates into a 0-100 sub-score from
// five capped, weighted components: meeting frequency, audience size, total
// duration, organizer ratio and video-usage ratio. No meetings means score 0.
func (c Config) ComputeTeamsScore(meetings int, avgParticipants, durationHours float64, organized, videoCalls int) float64 {
	if meetings == 0 {
		return 0
	}

	freqNorm := math.Min(float64(meetings)/c.TeamsMeetingCap, 1)
	audienceNorm := math.Min(avgParticipants/c.TeamsAudienceCap, 1)
	durationNorm := math.Min(durationHours/c.TeamsDurationCapHours, 1)

	denom := float64(max(meetings, 1))
	organizerRatio := float64(organized) / denom
	videoRatio := float64(videoCalls) / denom

	score := c.TeamsWeightFrequency*freqNorm +
		c.TeamsWeightAudience*audienceNorm +
		c.TeamsWeightDuration*durationNorm +
		c.TeamsWeightOrganizer*organizerRatio +
		c.TeamsWeightVideo*videoRatio

	return score * 100
}
