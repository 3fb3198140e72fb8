package influence

import "math"

// Dominant channel labels. ChannelNone is used for actors with no activity
// in either channel; that is expected steady-state, not an error.
const (
	ChannelEmail = "Email"
	ChannelTeams = "Teams"
	ChannelNone  = "N/A"
)

// ComputeUnifiedScore combines the two channel sub-scores into a single
// 0-100 score via the configured convex combination.
func (c Config) ComputeUnifiedScore(emailScore, teamsScore float64) float64 {
	return c.ChannelWeightEmail*emailScore + c.ChannelWeightTeams*teamsScore
}

// DominantChannel labels the stronger channel. Ties favor Teams; this is a
// deliberate tie-break, kept stable across runs.
func DominantChannel(emailScore, teamsScore float64) string {
	if emailScore == 0 && teamsScore == 0 {
		return ChannelNone
	}
	if emailScore > teamsScore {
		return ChannelEmail
	}
	return ChannelTeams
}

// ScoreActors computes the full score row for every aggregate. Ranks and
// badges are not assigned here; see AssignRanks.
func (c Config) ScoreActors(aggregates []ActorAggregate) []ActorScore {
	scores := make([]ActorScore, len(aggregates))
	for i, agg := range aggregates {
		email := c.ComputeEmailScore(agg.TotalEmailVolume, agg.AvgEmailResponseSeconds)
		teams := c.ComputeTeamsScore(agg.TotalMeetings, agg.AvgParticipants, agg.TotalDurationHours, agg.MeetingsOrganized, agg.VideoCalls)
		scores[i] = ActorScore{
			ActorID:         agg.ID,
			EmailScore:      email,
			TeamsScore:      teams,
			UnifiedScore:    c.ComputeUnifiedScore(email, teams),
			DominantChannel: DominantChannel(email, teams),
		}
	}
	return scores
}

// Round1 rounds a score to one decimal place. This belongs at the
// presentation boundary only; combining rounded sub-scores would compound
// rounding error.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
