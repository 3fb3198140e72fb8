package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orglens/backend/pkg/influence"
	"github.com/orglens/backend/pkg/logger"
	"github.com/orglens/backend/pkg/store"
)

// Runner executes one full recompute: load inputs, derive scores and graph
// metrics, commit everything as a single snapshot.
type Runner struct {
	storage store.SnapshotStorage
}

// Result summarizes what one recompute produced.
type Result struct {
	Actors      int           `json:"actors"`
	Links       int           `json:"links"`
	Communities int           `json:"communities"`
	Silos       int           `json:"silos"`
	Bridges     int           `json:"bridges"`
	Duration    time.Duration `json:"-"`
}

func NewRunner(storage store.SnapshotStorage) *Runner {
	return &Runner{storage: storage}
}

// Run performs the recompute. Derived state only changes if every stage
// succeeds; any error leaves the previously committed snapshot intact.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	started := time.Now()

	settings, err := r.storage.GetSettings(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load settings: %w", err)
	}
	cfg, err := influence.FromSettings(settings)
	if err != nil {
		return Result{}, fmt.Errorf("invalid scoring settings: %w", err)
	}

	var (
		aggregates []influence.ActorAggregate
		volumes    []influence.VolumeTuple
		calls      []influence.CallRecord
	)
	loadGroup, loadCtx := errgroup.WithContext(ctx)
	loadGroup.Go(func() error {
		var err error
		aggregates, err = r.storage.GetActorAggregates(loadCtx)
		return err
	})
	loadGroup.Go(func() error {
		var err error
		volumes, err = r.storage.GetEmailVolumes(loadCtx)
		return err
	})
	loadGroup.Go(func() error {
		var err error
		calls, err = r.storage.GetCallRecords(loadCtx)
		return err
	})
	if err := loadGroup.Wait(); err != nil {
		return Result{}, fmt.Errorf("failed to load pipeline inputs: %w", err)
	}

	logger.Debug("[Pipeline] Inputs loaded",
		"actors", len(aggregates),
		"email_volumes", len(volumes),
		"call_records", len(calls),
	)

	departments := make(map[int64]string, len(aggregates))
	for _, a := range aggregates {
		departments[a.ID] = a.Department
	}

	// Scoring and graph derivation touch disjoint inputs, so the two halves
	// run concurrently.
	var (
		scores      []influence.ActorScore
		links       []influence.Link
		communities []influence.Community
		silos       []influence.Silo
		bridges     []influence.Bridge
	)
	deriveGroup, _ := errgroup.WithContext(ctx)
	deriveGroup.Go(func() error {
		scores = influence.AssignRanks(cfg.ScoreActors(aggregates))
		return nil
	})
	deriveGroup.Go(func() error {
		links = influence.BuildLinks(volumes, calls)
		detection := influence.DetectCommunities(links, departments, cfg.CommunityMaxIterations)
		communities = detection.Communities
		silos = influence.DetectSilos(links, departments)
		bridges = influence.DetectBridges(links, detection.Labels, cfg.BridgeLimit)
		return nil
	})
	if err := deriveGroup.Wait(); err != nil {
		return Result{}, err
	}

	snapshot := store.DerivedSnapshot{
		DetectedAt:  time.Now().UTC(),
		Scores:      scores,
		Links:       links,
		Communities: communities,
		Silos:       silos,
		Bridges:     bridges,
	}
	if err := r.storage.CommitDerived(ctx, snapshot); err != nil {
		return Result{}, fmt.Errorf("failed to commit derived snapshot: %w", err)
	}

	result := Result{
		Actors:      len(scores),
		Links:       len(links),
		Communities: len(communities),
		Silos:       len(silos),
		Bridges:     len(bridges),
		Duration:    time.Since(started),
	}
	logger.Info("[Pipeline] Recompute finished",
		"actors", result.Actors,
		"links", result.Links,
		"communities", result.Communities,
		"silos", result.Silos,
		"bridges", result.Bridges,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return result, nil
}
