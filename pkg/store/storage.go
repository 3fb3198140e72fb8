package store

import (
	"context"
	"time"

	"github.com/orglens/backend/pkg/influence"
)

// DerivedSnapshot is the complete output of one recompute pass. It replaces
// the previously committed derived state in a single transaction so that
// readers never observe a half-replaced result.
type DerivedSnapshot struct {
	DetectedAt  time.Time
	Scores      []influence.ActorScore
	Links       []influence.Link
	Communities []influence.Community
	Silos       []influence.Silo
	Bridges     []influence.Bridge
}

// ScoredActor is a score row joined with the actor's descriptive fields for
// presentation.
type ScoredActor struct {
	influence.ActorScore
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Country    string `json:"country"`
}

// CommunityRecord is a persisted community with its detection date.
type CommunityRecord struct {
	influence.Community
	DetectionDate time.Time `json:"detection_date"`
}

// SiloRecord is a persisted silo metric with its detection date.
type SiloRecord struct {
	influence.Silo
	DetectionDate time.Time `json:"detection_date"`
}

// BridgeRecord is a persisted bridge metric with its detection date.
type BridgeRecord struct {
	influence.Bridge
	DetectionDate time.Time `json:"detection_date"`
}

// SnapshotStorage persists and queries the influence pipeline's input and
// derived output. Scores and links are full-replace; community, silo and
// bridge results are dated snapshots retained as history, with "current"
// reads selecting the most recent detection date.
type SnapshotStorage interface {
	GetActorAggregates(ctx context.Context) ([]influence.ActorAggregate, error)
	GetEmailVolumes(ctx context.Context) ([]influence.VolumeTuple, error)
	GetCallRecords(ctx context.Context) ([]influence.CallRecord, error)
	GetSettings(ctx context.Context) (map[string]string, error)

	CommitDerived(ctx context.Context, snapshot DerivedSnapshot) error

	GetScores(ctx context.Context) ([]ScoredActor, error)
	GetLinks(ctx context.Context) ([]influence.Link, error)
	GetLatestCommunities(ctx context.Context) ([]CommunityRecord, error)
	GetLatestSilos(ctx context.Context) ([]SiloRecord, error)
	GetLatestBridges(ctx context.Context, limit int) ([]BridgeRecord, error)
}
