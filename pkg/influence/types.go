package influence

import "time"

// ActorAggregate holds the raw per-actor activity aggregates for one
// lookback window. The descriptive fields (name, role, department, country)
// are carried through for presentation and silo grouping but never enter
// the scoring math.
type ActorAggregate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Country    string `json:"country"`

	TotalEmailVolume        int     `json:"total_email_volume"`
	AvgEmailResponseSeconds float64 `json:"avg_email_response_seconds"`

	TotalMeetings      int     `json:"total_meetings"`
	AvgParticipants    float64 `json:"avg_participants"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	MeetingsOrganized  int     `json:"meetings_organized"`
	VideoCalls         int     `json:"video_calls"`
}

// ActorScore is the derived per-actor influence row. Scores are kept at
// full precision here; rounding to one decimal happens only when a row is
// serialized for display.
type ActorScore struct {
	ActorID         int64   `json:"id"`
	EmailScore      float64 `json:"email_score"`
	TeamsScore      float64 `json:"teams_score"`
	UnifiedScore    float64 `json:"unified_score"`
	DominantChannel string  `json:"dominant_channel"`
	Rank            int     `json:"rank"`
	Badge           string  `json:"badge"`
}

// VolumeTuple is one directed pairwise interaction count, pre-aggregation.
type VolumeTuple struct {
	SourceID  int64 `json:"source_id"`
	TargetID  int64 `json:"target_id"`
	RawVolume int64 `json:"raw_volume"`
}

// CallRecord is one actor's participation in a call. Two records with an
// identical start time and duration are taken to belong to the same call;
// there is no real call-session id in the upstream metadata.
type CallRecord struct {
	ActorID         int64     `json:"actor_id"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int64     `json:"duration_seconds"`
}

// Link is a directed actor-to-actor edge with a log-compressed weight in
// [0,1]. Pairs with zero interaction volume are never materialized.
type Link struct {
	SourceID int64   `json:"source_id"`
	TargetID int64   `json:"target_id"`
	Weight   float64 `json:"weight"`
}

// CommunityMember records one actor's membership in a detected community.
type CommunityMember struct {
	ActorID            int64   `json:"actor_id"`
	MembershipStrength float64 `json:"membership_strength"`
	IsCoreMember       bool    `json:"is_core_member"`
}

// Community is a detected cluster of densely interconnected actors.
// Communities are regenerated as dated snapshots on every detection run.
type Community struct {
	PublicID    string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	MemberCount int               `json:"member_count"`
	Members     []CommunityMember `json:"members"`
}

// Silo is a per-department connectivity aggregate.
type Silo struct {
	Department          string  `json:"department"`
	InternalConnections int     `json:"internal_connections"`
	ExternalConnections int     `json:"external_connections"`
	IsolationScore      float64 `json:"isolation_score"`
	Risk                string  `json:"risk"`
}

// Silo risk tiers.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Bridge is an actor that connects two or more communities.
//
// BetweennessCentrality keeps its historical name for compatibility with
// downstream consumers, but it is a degree-centrality proxy: the actor's
// total edge count normalized by the maximum edge count in the snapshot.
type Bridge struct {
	ActorID               int64   `json:"actor_id"`
	CommunitiesConnected  int     `json:"communities_connected"`
	BetweennessCentrality float64 `json:"betweenness_centrality"`
	BridgeScore           float64 `json:"bridge_score"`
}
