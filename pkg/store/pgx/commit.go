package pgx

import (
	"context"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/orglens/backend/pkg/logger"
	"github.com/orglens/backend/pkg/store"
)

// CommitDerived replaces the derived state with the given snapshot in one
// transaction. Scores and links are truncate-then-insert; communities,
// silos and bridges are appended as a new dated snapshot and prior
// detection runs are left untouched.
func (s *SnapshotDBStorage) CommitDerived(ctx context.Context, snapshot store.DerivedSnapshot) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM actor_scores;`); err != nil {
		return fmt.Errorf("failed to clear actor scores: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM influence_links;`); err != nil {
		return fmt.Errorf("failed to clear influence links: %w", err)
	}

	batch := &pgxv5.Batch{}
	for _, score := range snapshot.Scores {
		batch.Queue(insertScoreSQL,
			score.ActorID, score.EmailScore, score.TeamsScore, score.UnifiedScore,
			score.DominantChannel, score.Rank, score.Badge,
		)
	}
	for _, l := range snapshot.Links {
		batch.Queue(insertLinkSQL, l.SourceID, l.TargetID, l.Weight)
	}
	for _, silo := range snapshot.Silos {
		batch.Queue(insertSiloSQL,
			silo.Department, silo.InternalConnections, silo.ExternalConnections,
			silo.IsolationScore, silo.Risk, snapshot.DetectedAt,
		)
	}
	for _, bridge := range snapshot.Bridges {
		batch.Queue(insertBridgeSQL,
			bridge.ActorID, bridge.CommunitiesConnected, bridge.BetweennessCentrality,
			bridge.BridgeScore, snapshot.DetectedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert derived rows: %w", err)
	}

	for _, community := range snapshot.Communities {
		publicID, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate community id: %w", err)
		}

		var communityID int64
		err = tx.QueryRow(ctx, insertCommunitySQL,
			publicID, community.Name, community.Description,
			community.MemberCount, snapshot.DetectedAt,
		).Scan(&communityID)
		if err != nil {
			return fmt.Errorf("failed to insert community %q: %w", community.Name, err)
		}

		members := &pgxv5.Batch{}
		for _, m := range community.Members {
			members.Queue(insertCommunityMemberSQL,
				communityID, m.ActorID, m.MembershipStrength, m.IsCoreMember,
			)
		}
		if err := tx.SendBatch(ctx, members).Close(); err != nil {
			return fmt.Errorf("failed to insert members of %q: %w", community.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	logger.Info("[Store] Derived snapshot committed",
		"scores", len(snapshot.Scores),
		"links", len(snapshot.Links),
		"communities", len(snapshot.Communities),
		"silos", len(snapshot.Silos),
		"bridges", len(snapshot.Bridges),
	)
	return nil
}

const insertScoreSQL = `
INSERT INTO actor_scores (actor_id, email_score, teams_score, unified_score, dominant_channel, rank, badge)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`

const insertLinkSQL = `
INSERT INTO influence_links (source_id, target_id, weight)
VALUES ($1, $2, $3);
`

const insertSiloSQL = `
INSERT INTO silo_metrics (department, internal_connections, external_connections, isolation_score, risk, detection_date)
VALUES ($1, $2, $3, $4, $5, $6);
`

const insertBridgeSQL = `
INSERT INTO bridge_metrics (actor_id, communities_connected, betweenness_centrality, bridge_score, detection_date)
VALUES ($1, $2, $3, $4, $5);
`

const insertCommunitySQL = `
INSERT INTO communities (public_id, name, description, member_count, detection_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id;
`

const insertCommunityMemberSQL = `
INSERT INTO community_members (community_id, actor_id, membership_strength, is_core_member)
VALUES ($1, $2, $3, $4);
`
