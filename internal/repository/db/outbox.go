package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `
INSERT INTO outbox_events (id, organization_id, event_type, aggregate_type, aggregate_id, payload, status, attempts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 'PENDING', 0, $7)
`

type InsertOutboxEventParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	EventType      string
	AggregateType  string
	AggregateID    string
	Payload        []byte
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) error {
	_, err := q.db.Exec(ctx, insertOutboxEvent,
		arg.ID,
		arg.OrganizationID,
		arg.EventType,
		arg.AggregateType,
		arg.AggregateID,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

// claimOutboxEvents stamps the claimer on a batch of ready rows. The
// inner SELECT uses SKIP LOCKED so concurrent dispatchers never block
// each other; expired locks count as unclaimed.
const claimOutboxEvents = `
UPDATE outbox_events
SET locked_at = now(), locked_by = $1
WHERE id IN (
  SELECT id
  FROM outbox_events
  WHERE status = 'PENDING'
    AND (next_attempt_at IS NULL OR next_attempt_at <= now())
    AND (locked_at IS NULL OR locked_at < now() - make_interval(secs => $2))
  ORDER BY created_at
  LIMIT $3
  FOR UPDATE SKIP LOCKED
)
RETURNING id
`

type ClaimOutboxEventsParams struct {
	LockedBy       string
	LockTTLSeconds float64
	BatchSize      int32
}

func (q *Queries) ClaimOutboxEvents(ctx context.Context, arg ClaimOutboxEventsParams) ([]pgtype.UUID, error) {
	rows, err := q.db.Query(ctx, claimOutboxEvents, arg.LockedBy, arg.LockTTLSeconds, arg.BatchSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []pgtype.UUID{}
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	return items, rows.Err()
}

const getOutboxEvent = `
SELECT id, organization_id, event_type, aggregate_type, aggregate_id, payload, status, attempts, next_attempt_at, published_at, locked_at, locked_by, last_error_code, last_error_status, last_error_message, last_error_at, created_at
FROM outbox_events
WHERE id = $1
`

func (q *Queries) GetOutboxEvent(ctx context.Context, id pgtype.UUID) (OutboxEvent, error) {
	row := q.db.QueryRow(ctx, getOutboxEvent, id)
	var i OutboxEvent
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.EventType,
		&i.AggregateType,
		&i.AggregateID,
		&i.Payload,
		&i.Status,
		&i.Attempts,
		&i.NextAttemptAt,
		&i.PublishedAt,
		&i.LockedAt,
		&i.LockedBy,
		&i.LastErrorCode,
		&i.LastErrorStatus,
		&i.LastErrorMessage,
		&i.LastErrorAt,
		&i.CreatedAt,
	)
	return i, err
}

// reassertOutboxOwnership is the per-event CAS: it succeeds only while
// the row is still PENDING and either already ours or lock-expired.
const reassertOutboxOwnership = `
UPDATE outbox_events
SET locked_at = now(), locked_by = $2
WHERE id = $1
  AND status = 'PENDING'
  AND (locked_by = $2 OR locked_at IS NULL OR locked_at < now() - make_interval(secs => $3))
`

type ReassertOutboxOwnershipParams struct {
	ID             pgtype.UUID
	LockedBy       string
	LockTTLSeconds float64
}

func (q *Queries) ReassertOutboxOwnership(ctx context.Context, arg ReassertOutboxOwnershipParams) (int64, error) {
	tag, err := q.db.Exec(ctx, reassertOutboxOwnership, arg.ID, arg.LockedBy, arg.LockTTLSeconds)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markOutboxPublished = `
UPDATE outbox_events
SET status = 'PUBLISHED',
    published_at = now(),
    next_attempt_at = NULL,
    last_error_code = NULL,
    last_error_status = NULL,
    last_error_message = NULL,
    last_error_at = NULL
WHERE id = $1
`

func (q *Queries) MarkOutboxPublished(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, markOutboxPublished, id)
	return err
}

const markOutboxRetry = `
UPDATE outbox_events
SET attempts = attempts + 1,
    next_attempt_at = $2,
    last_error_code = $3,
    last_error_status = $4,
    last_error_message = $5,
    last_error_at = now()
WHERE id = $1
`

type MarkOutboxRetryParams struct {
	ID               pgtype.UUID
	NextAttemptAt    pgtype.Timestamptz
	LastErrorCode    pgtype.Text
	LastErrorStatus  pgtype.Int4
	LastErrorMessage pgtype.Text
}

func (q *Queries) MarkOutboxRetry(ctx context.Context, arg MarkOutboxRetryParams) error {
	_, err := q.db.Exec(ctx, markOutboxRetry,
		arg.ID,
		arg.NextAttemptAt,
		arg.LastErrorCode,
		arg.LastErrorStatus,
		arg.LastErrorMessage,
	)
	return err
}

const markOutboxFailed = `
UPDATE outbox_events
SET status = 'FAILED',
    attempts = attempts + 1,
    next_attempt_at = NULL,
    last_error_code = $2,
    last_error_status = $3,
    last_error_message = $4,
    last_error_at = now()
WHERE id = $1
`

type MarkOutboxFailedParams struct {
	ID               pgtype.UUID
	LastErrorCode    pgtype.Text
	LastErrorStatus  pgtype.Int4
	LastErrorMessage pgtype.Text
}

func (q *Queries) MarkOutboxFailed(ctx context.Context, arg MarkOutboxFailedParams) error {
	_, err := q.db.Exec(ctx, markOutboxFailed,
		arg.ID,
		arg.LastErrorCode,
		arg.LastErrorStatus,
		arg.LastErrorMessage,
	)
	return err
}

const releaseOutboxLock = `
UPDATE outbox_events
SET locked_at = NULL, locked_by = NULL
WHERE id = $1 AND locked_by = $2
`

type ReleaseOutboxLockParams struct {
	ID       pgtype.UUID
	LockedBy string
}

func (q *Queries) ReleaseOutboxLock(ctx context.Context, arg ReleaseOutboxLockParams) error {
	_, err := q.db.Exec(ctx, releaseOutboxLock, arg.ID, arg.LockedBy)
	return err
}

const releaseExpiredOutboxLocks = `
UPDATE outbox_events
SET locked_at = NULL, locked_by = NULL
WHERE status = 'PENDING'
  AND locked_at IS NOT NULL
  AND locked_at < now() - make_interval(secs => $1)
`

func (q *Queries) ReleaseExpiredOutboxLocks(ctx context.Context, lockTTLSeconds float64) (int64, error) {
	tag, err := q.db.Exec(ctx, releaseExpiredOutboxLocks, lockTTLSeconds)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// getOutboxStats feeds the observable gauges and the readiness probe.
// A row is "ready" when it is runnable now, "inflight" while any lock is
// stamped on it. A lock past its TTL counts as both until maintenance
// clears it; the readiness probe relies on such locks staying visible in
// oldest_inflight_seconds.
const getOutboxStats = `
SELECT
  COUNT(*) FILTER (WHERE status = 'PENDING'
    AND (next_attempt_at IS NULL OR next_attempt_at <= now())
    AND (locked_at IS NULL OR locked_at < now() - make_interval(secs => $1))) AS ready_count,
  COUNT(*) FILTER (WHERE status = 'PENDING'
    AND locked_at IS NOT NULL) AS inflight_count,
  COUNT(*) FILTER (WHERE status = 'FAILED') AS failed_count,
  COALESCE(EXTRACT(EPOCH FROM now() - MIN(COALESCE(next_attempt_at, created_at)) FILTER (WHERE status = 'PENDING'
    AND (next_attempt_at IS NULL OR next_attempt_at <= now())
    AND (locked_at IS NULL OR locked_at < now() - make_interval(secs => $1)))), 0)::float8 AS oldest_ready_seconds,
  COALESCE(EXTRACT(EPOCH FROM now() - MIN(locked_at) FILTER (WHERE status = 'PENDING'
    AND locked_at IS NOT NULL)), 0)::float8 AS oldest_inflight_seconds
FROM outbox_events
`

type GetOutboxStatsRow struct {
	ReadyCount            int64
	InflightCount         int64
	FailedCount           int64
	OldestReadySeconds    float64
	OldestInflightSeconds float64
}

func (q *Queries) GetOutboxStats(ctx context.Context, lockTTLSeconds float64) (GetOutboxStatsRow, error) {
	row := q.db.QueryRow(ctx, getOutboxStats, lockTTLSeconds)
	var i GetOutboxStatsRow
	err := row.Scan(
		&i.ReadyCount,
		&i.InflightCount,
		&i.FailedCount,
		&i.OldestReadySeconds,
		&i.OldestInflightSeconds,
	)
	return i, err
}
