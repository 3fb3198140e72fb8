package pgx

import (
	"context"
	"fmt"

	"github.com/orglens/backend/pkg/influence"
	"github.com/orglens/backend/pkg/store"
)

// GetScores returns the last committed score rows joined with actor
// descriptive fields, ordered by rank.
func (s *SnapshotDBStorage) GetScores(ctx context.Context) ([]store.ScoredActor, error) {
	rows, err := s.conn.Query(ctx, getScoresSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := make([]store.ScoredActor, 0)
	for rows.Next() {
		var row store.ScoredActor
		err := rows.Scan(
			&row.ActorID, &row.Name, &row.Role, &row.Department, &row.Country,
			&row.EmailScore, &row.TeamsScore, &row.UnifiedScore,
			&row.DominantChannel, &row.Rank, &row.Badge,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		scores = append(scores, row)
	}
	return scores, rows.Err()
}

// GetLinks returns the last committed edge list.
func (s *SnapshotDBStorage) GetLinks(ctx context.Context) ([]influence.Link, error) {
	rows, err := s.conn.Query(ctx, getLinksSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]influence.Link, 0)
	for rows.Next() {
		var l influence.Link
		if err := rows.Scan(&l.SourceID, &l.TargetID, &l.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// GetLatestCommunities returns the communities of the most recent detection
// run, with members.
func (s *SnapshotDBStorage) GetLatestCommunities(ctx context.Context) ([]store.CommunityRecord, error) {
	rows, err := s.conn.Query(ctx, getLatestCommunitiesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query communities: %w", err)
	}
	defer rows.Close()

	type communityRow struct {
		internalID int64
		record     store.CommunityRecord
	}
	communities := make([]communityRow, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var row communityRow
		err := rows.Scan(
			&row.internalID, &row.record.PublicID, &row.record.Name,
			&row.record.Description, &row.record.MemberCount, &row.record.DetectionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community: %w", err)
		}
		communities = append(communities, row)
		ids = append(ids, row.internalID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(communities) == 0 {
		return []store.CommunityRecord{}, nil
	}

	memberRows, err := s.conn.Query(ctx, getCommunityMembersSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query community members: %w", err)
	}
	defer memberRows.Close()

	membersByCommunity := make(map[int64][]influence.CommunityMember)
	for memberRows.Next() {
		var communityID int64
		var m influence.CommunityMember
		if err := memberRows.Scan(&communityID, &m.ActorID, &m.MembershipStrength, &m.IsCoreMember); err != nil {
			return nil, fmt.Errorf("failed to scan community member: %w", err)
		}
		membersByCommunity[communityID] = append(membersByCommunity[communityID], m)
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}

	records := make([]store.CommunityRecord, len(communities))
	for i, row := range communities {
		row.record.Members = membersByCommunity[row.internalID]
		records[i] = row.record
	}
	return records, nil
}

// GetLatestSilos returns the silo metrics of the most recent detection run.
func (s *SnapshotDBStorage) GetLatestSilos(ctx context.Context) ([]store.SiloRecord, error) {
	rows, err := s.conn.Query(ctx, getLatestSilosSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query silos: %w", err)
	}
	defer rows.Close()

	silos := make([]store.SiloRecord, 0)
	for rows.Next() {
		var row store.SiloRecord
		err := rows.Scan(
			&row.Department, &row.InternalConnections, &row.ExternalConnections,
			&row.IsolationScore, &row.Risk, &row.DetectionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan silo: %w", err)
		}
		silos = append(silos, row)
	}
	return silos, rows.Err()
}

// GetLatestBridges returns the bridge metrics of the most recent detection
// run, ordered descending by bridge score and truncated to limit.
func (s *SnapshotDBStorage) GetLatestBridges(ctx context.Context, limit int) ([]store.BridgeRecord, error) {
	rows, err := s.conn.Query(ctx, getLatestBridgesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query bridges: %w", err)
	}
	defer rows.Close()

	bridges := make([]store.BridgeRecord, 0)
	for rows.Next() {
		var row store.BridgeRecord
		err := rows.Scan(
			&row.ActorID, &row.CommunitiesConnected, &row.BetweennessCentrality,
			&row.BridgeScore, &row.DetectionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bridge: %w", err)
		}
		bridges = append(bridges, row)
	}
	return bridges, rows.Err()
}

const getScoresSQL = `
SELECT a.id, a.name, a.role, a.department, a.country,
       s.email_score, s.teams_score, s.unified_score,
       s.dominant_channel, s.rank, s.badge
FROM actor_scores s
JOIN actors a ON a.id = s.actor_id
ORDER BY s.rank;
`

const getLinksSQL = `
SELECT source_id, target_id, weight
FROM influence_links
ORDER BY source_id, target_id;
`

const getLatestCommunitiesSQL = `
SELECT id, public_id, name, description, member_count, detection_date
FROM communities
WHERE detection_date = (SELECT max(detection_date) FROM communities)
ORDER BY id;
`

const getCommunityMembersSQL = `
SELECT community_id, actor_id, membership_strength, is_core_member
FROM community_members
WHERE community_id = ANY($1)
ORDER BY community_id, actor_id;
`

const getLatestSilosSQL = `
SELECT department, internal_connections, external_connections, isolation_score, risk, detection_date
FROM silo_metrics
WHERE detection_date = (SELECT max(detection_date) FROM silo_metrics)
ORDER BY isolation_score DESC, department;
`

const getLatestBridgesSQL = `
SELECT actor_id, communities_connected, betweenness_centrality, bridge_score, detection_date
FROM bridge_metrics
WHERE detection_date = (SELECT max(detection_date) FROM bridge_metrics)
ORDER BY bridge_score DESC, actor_id
LIMIT $1;
`
