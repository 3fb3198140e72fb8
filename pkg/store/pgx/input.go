package pgx

import (
	"context"
	"fmt"

	"github.com/orglens/backend/pkg/influence"
)

// GetActorAggregates loads the raw per-actor activity aggregates for the
// current lookback window.
func (s *SnapshotDBStorage) GetActorAggregates(ctx context.Context) ([]influence.ActorAggregate, error) {
	rows, err := s.conn.Query(ctx, getActorAggregatesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query actor aggregates: %w", err)
	}
	defer rows.Close()

	aggregates := make([]influence.ActorAggregate, 0)
	for rows.Next() {
		var a influence.ActorAggregate
		err := rows.Scan(
			&a.ID, &a.Name, &a.Role, &a.Department, &a.Country,
			&a.TotalEmailVolume, &a.AvgEmailResponseSeconds,
			&a.TotalMeetings, &a.AvgParticipants, &a.TotalDurationHours,
			&a.MeetingsOrganized, &a.VideoCalls,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan actor aggregate: %w", err)
		}
		aggregates = append(aggregates, a)
	}
	return aggregates, rows.Err()
}

// GetEmailVolumes loads the directed pairwise email interaction counts.
func (s *SnapshotDBStorage) GetEmailVolumes(ctx context.Context) ([]influence.VolumeTuple, error) {
	rows, err := s.conn.Query(ctx, getEmailVolumesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query email volumes: %w", err)
	}
	defer rows.Close()

	tuples := make([]influence.VolumeTuple, 0)
	for rows.Next() {
		var t influence.VolumeTuple
		if err := rows.Scan(&t.SourceID, &t.TargetID, &t.RawVolume); err != nil {
			return nil, fmt.Errorf("failed to scan email volume: %w", err)
		}
		tuples = append(tuples, t)
	}
	return tuples, rows.Err()
}

// GetCallRecords loads per-actor call participations for co-occurrence
// pairing.
func (s *SnapshotDBStorage) GetCallRecords(ctx context.Context) ([]influence.CallRecord, error) {
	rows, err := s.conn.Query(ctx, getCallRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query call records: %w", err)
	}
	defer rows.Close()

	records := make([]influence.CallRecord, 0)
	for rows.Next() {
		var r influence.CallRecord
		if err := rows.Scan(&r.ActorID, &r.StartedAt, &r.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan call record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetSettings loads the string-typed settings rows. Parsing and validation
// happen once per run in influence.FromSettings.
func (s *SnapshotDBStorage) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := s.conn.Query(ctx, getSettingsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

const getActorAggregatesSQL = `
SELECT id, name, role, department, country,
       total_email_volume, avg_email_response_seconds,
       total_meetings, avg_participants, total_duration_hours,
       meetings_organized, video_calls
FROM actors
ORDER BY id;
`

const getEmailVolumesSQL = `
SELECT source_id, target_id, raw_volume
FROM email_interactions
ORDER BY source_id, target_id;
`

const getCallRecordsSQL = `
SELECT actor_id, started_at, duration_seconds
FROM call_participations
ORDER BY started_at, actor_id;
`

const getSettingsSQL = `
SELECT key, value
FROM settings;
`
