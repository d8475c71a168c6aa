package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const auditLogExists = `
SELECT EXISTS (
  SELECT 1 FROM audit_logs WHERE organization_id = $1 AND event_key = $2
)
`

type AuditLogExistsParams struct {
	OrganizationID pgtype.UUID
	EventKey       string
}

func (q *Queries) AuditLogExists(ctx context.Context, arg AuditLogExistsParams) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, auditLogExists, arg.OrganizationID, arg.EventKey).Scan(&exists)
	return exists, err
}

const insertAuditLog = `
INSERT INTO audit_logs (id, organization_id, event_type, aggregate_type, aggregate_id, correlation_id, occurred_at, payload, event_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type InsertAuditLogParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	EventType      string
	AggregateType  pgtype.Text
	AggregateID    pgtype.Text
	CorrelationID  pgtype.Text
	OccurredAt     pgtype.Timestamptz
	Payload        []byte
	EventKey       string
}

func (q *Queries) InsertAuditLog(ctx context.Context, arg InsertAuditLogParams) error {
	_, err := q.db.Exec(ctx, insertAuditLog,
		arg.ID,
		arg.OrganizationID,
		arg.EventType,
		arg.AggregateType,
		arg.AggregateID,
		arg.CorrelationID,
		arg.OccurredAt,
		arg.Payload,
		arg.EventKey,
	)
	return err
}

const countAuditLogs = `
SELECT COUNT(*) FROM audit_logs WHERE organization_id = $1
`

func (q *Queries) CountAuditLogs(ctx context.Context, organizationID pgtype.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countAuditLogs, organizationID).Scan(&count)
	return count, err
}

const countAuditLogsByAggregate = `
SELECT COUNT(*) FROM audit_logs
WHERE organization_id = $1 AND aggregate_type = $2 AND aggregate_id = $3
`

type CountAuditLogsByAggregateParams struct {
	OrganizationID pgtype.UUID
	AggregateType  pgtype.Text
	AggregateID    pgtype.Text
}

func (q *Queries) CountAuditLogsByAggregate(ctx context.Context, arg CountAuditLogsByAggregateParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countAuditLogsByAggregate, arg.OrganizationID, arg.AggregateType, arg.AggregateID).Scan(&count)
	return count, err
}

const listAuditLogs = `
SELECT id, organization_id, event_type, aggregate_type, aggregate_id, correlation_id, occurred_at, payload, event_key, created_at
FROM audit_logs
WHERE organization_id = $1
ORDER BY occurred_at DESC
LIMIT $2 OFFSET $3
`

type ListAuditLogsParams struct {
	OrganizationID pgtype.UUID
	Limit          int32
	Offset         int32
}

func (q *Queries) ListAuditLogs(ctx context.Context, arg ListAuditLogsParams) ([]AuditLog, error) {
	rows, err := q.db.Query(ctx, listAuditLogs, arg.OrganizationID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AuditLog{}
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(
			&i.ID,
			&i.OrganizationID,
			&i.EventType,
			&i.AggregateType,
			&i.AggregateID,
			&i.CorrelationID,
			&i.OccurredAt,
			&i.Payload,
			&i.EventKey,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listAuditLogsByAggregate = `
SELECT id, organization_id, event_type, aggregate_type, aggregate_id, correlation_id, occurred_at, payload, event_key, created_at
FROM audit_logs
WHERE organization_id = $1 AND aggregate_type = $2 AND aggregate_id = $3
ORDER BY occurred_at DESC
LIMIT $4 OFFSET $5
`

type ListAuditLogsByAggregateParams struct {
	OrganizationID pgtype.UUID
	AggregateType  pgtype.Text
	AggregateID    pgtype.Text
	Limit          int32
	Offset         int32
}

func (q *Queries) ListAuditLogsByAggregate(ctx context.Context, arg ListAuditLogsByAggregateParams) ([]AuditLog, error) {
	rows, err := q.db.Query(ctx, listAuditLogsByAggregate,
		arg.OrganizationID,
		arg.AggregateType,
		arg.AggregateID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AuditLog{}
	for rows.Next() {
		var i AuditLog
		if err := rows.Scan(
			&i.ID,
			&i.OrganizationID,
			&i.EventType,
			&i.AggregateType,
			&i.AggregateID,
			&i.CorrelationID,
			&i.OccurredAt,
			&i.Payload,
			&i.EventKey,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
