package influence

import "testing"

func TestComputeUnifiedScore_DefaultWeights(t *testing.T) {
	cfg := DefaultConfig()
	// Scenario: email 85, teams 0 -> 0.6*85 = 51.
	got := cfg.ComputeUnifiedScore(85, 0)
	if !almostEqual(got, 51) {
		t.Fatalf("expected 51, got %v", got)
	}
}

func TestComputeUnifiedScore_Bounds(t *testing.T) {
	cfg := DefaultConfig()
	for _, c := range [][2]float64{{0, 0}, {100, 100}, {100, 0}, {0, 100}, {33.3, 66.6}} {
		got := cfg.ComputeUnifiedScore(c[0], c[1])
		if got < 0 || got > 100 {
			t.Fatalf("unified score out of bounds for %v: %v", c, got)
		}
	}
}

func TestDominantChannel(t *testing.T) {
	cases := []struct {
		email, teams float64
		want         string
	}{
		{80, 20, ChannelEmail},
		{20, 80, ChannelTeams},
		// Ties favor Teams, deliberately.
		{50, 50, ChannelTeams},
		{0, 0, ChannelNone},
	}
	for _, c := range cases {
		if got := DominantChannel(c.email, c.teams); got != c.want {
			t.Fatalf("DominantChannel(%v, %v) = %q, want %q", c.email, c.teams, got, c.want)
		}
	}
}

func TestScoreActors(t *testing.T) {
	cfg := DefaultConfig()
	aggregates := []ActorAggregate{
		{ID: 1, TotalEmailVolume: 425},
		{ID: 2, TotalMeetings: 50, AvgParticipants: 20, TotalDurationHours: 40, MeetingsOrganized: 50, VideoCalls: 50},
		{ID: 3},
	}

	scores := cfg.ScoreActors(aggregates)
	if len(scores) != 3 {
		t.Fatalf("expected 3 score rows, got %d", len(scores))
	}

	if !almostEqual(scores[0].UnifiedScore, 51) {
		t.Fatalf("actor 1: expected unified 51, got %v", scores[0].UnifiedScore)
	}
	if scores[0].DominantChannel != ChannelEmail {
		t.Fatalf("actor 1: expected Email dominant, got %q", scores[0].DominantChannel)
	}

	if !almostEqual(scores[1].TeamsScore, 100) {
		t.Fatalf("actor 2: expected teams 100, got %v", scores[1].TeamsScore)
	}
	if scores[1].DominantChannel != ChannelTeams {
		t.Fatalf("actor 2: expected Teams dominant, got %q", scores[1].DominantChannel)
	}

	if scores[2].UnifiedScore != 0 || scores[2].DominantChannel != ChannelNone {
		t.Fatalf("actor 3: expected zero score and N/A channel, got %+v", scores[2])
	}
}

func TestRound1(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{51.04, 51.0},
		{51.05, 51.1},
		{0, 0},
		{99.99, 100},
	}
	for _, c := range cases {
		if got := Round1(c.in); !almostEqual(got, c.want) {
			t.Fatalf("Round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
