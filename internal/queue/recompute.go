package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orglens/backend/pkg/leaselock"
	"github.com/orglens/backend/pkg/logger"
	"github.com/orglens/backend/pkg/pipeline"
	pgxstore "github.com/orglens/backend/pkg/store/pgx"
)

const recomputeLockKey = "influence_recompute"

// QueueRecomputeMsg is the payload of a recompute request.
type QueueRecomputeMsg struct {
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
	RequestedBy   string `json:"requested_by,omitempty"`
}

// ProcessRecompute runs one full influence recompute under the cluster-wide
// lease lock. A concurrent run holding the lock is not an error: the other
// run will commit an equivalent snapshot, so the message is dropped.
func ProcessRecompute(ctx context.Context, conn *pgxpool.Pool, msgBody string) error {
	var data QueueRecomputeMsg
	if err := json.Unmarshal([]byte(msgBody), &data); err != nil {
		return fmt.Errorf("failed to unmarshal recompute message: %w", err)
	}

	logger.Info("[Queue] Recompute requested",
		"correlation_id", data.CorrelationID,
		"requested_by", data.RequestedBy,
	)

	locks := leaselock.New(conn)
	runner := pipeline.NewRunner(pgxstore.NewSnapshotDBStorage(conn))

	err := locks.WithLease(ctx, recomputeLockKey, leaselock.Options{
		TTL: 10 * time.Minute,
	}, func(leaseCtx context.Context) error {
		_, err := runner.Run(leaseCtx)
		return err
	})
	if errors.Is(err, leaselock.ErrBusy) {
		logger.Info("[Queue] Recompute already in progress, dropping request",
			"correlation_id", data.CorrelationID,
		)
		return nil
	}
	return err
}
