package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getAttemptByIdempotencyKey = `
SELECT id, organization_id, device_id, area_id, subject_type, pass_direction, auth_method, subject_id, subject_document, idempotency_key, occurred_at, created_at, updated_at
FROM access_attempts
WHERE organization_id = $1 AND idempotency_key = $2
`

type GetAttemptByIdempotencyKeyParams struct {
	OrganizationID pgtype.UUID
	IdempotencyKey string
}

func (q *Queries) GetAttemptByIdempotencyKey(ctx context.Context, arg GetAttemptByIdempotencyKeyParams) (AccessAttempt, error) {
	row := q.db.QueryRow(ctx, getAttemptByIdempotencyKey, arg.OrganizationID, arg.IdempotencyKey)
	var i AccessAttempt
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.DeviceID,
		&i.AreaID,
		&i.SubjectType,
		&i.PassDirection,
		&i.AuthMethod,
		&i.SubjectID,
		&i.SubjectDocument,
		&i.IdempotencyKey,
		&i.OccurredAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertAttempt = `
INSERT INTO access_attempts (id, organization_id, device_id, area_id, subject_type, pass_direction, auth_method, subject_id, subject_document, idempotency_key, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, organization_id, device_id, area_id, subject_type, pass_direction, auth_method, subject_id, subject_document, idempotency_key, occurred_at, created_at, updated_at
`

type InsertAttemptParams struct {
	ID              pgtype.UUID
	OrganizationID  pgtype.UUID
	DeviceID        pgtype.UUID
	AreaID          pgtype.UUID
	SubjectType     string
	PassDirection   string
	AuthMethod      string
	SubjectID       pgtype.UUID
	SubjectDocument pgtype.Text
	IdempotencyKey  string
	OccurredAt      pgtype.Timestamptz
}

func (q *Queries) InsertAttempt(ctx context.Context, arg InsertAttemptParams) (AccessAttempt, error) {
	row := q.db.QueryRow(ctx, insertAttempt,
		arg.ID,
		arg.OrganizationID,
		arg.DeviceID,
		arg.AreaID,
		arg.SubjectType,
		arg.PassDirection,
		arg.AuthMethod,
		arg.SubjectID,
		arg.SubjectDocument,
		arg.IdempotencyKey,
		arg.OccurredAt,
	)
	var i AccessAttempt
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.DeviceID,
		&i.AreaID,
		&i.SubjectType,
		&i.PassDirection,
		&i.AuthMethod,
		&i.SubjectID,
		&i.SubjectDocument,
		&i.IdempotencyKey,
		&i.OccurredAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertDecision = `
INSERT INTO access_decisions (id, organization_id, attempt_id, result, reason_code, reason_detail, decided_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, organization_id, attempt_id, result, reason_code, reason_detail, decided_at, expires_at, created_at, updated_at
`

type InsertDecisionParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	AttemptID      pgtype.UUID
	Result         string
	ReasonCode     string
	ReasonDetail   pgtype.Text
	DecidedAt      pgtype.Timestamptz
	ExpiresAt      pgtype.Timestamptz
}

func (q *Queries) InsertDecision(ctx context.Context, arg InsertDecisionParams) (AccessDecision, error) {
	row := q.db.QueryRow(ctx, insertDecision,
		arg.ID,
		arg.OrganizationID,
		arg.AttemptID,
		arg.Result,
		arg.ReasonCode,
		arg.ReasonDetail,
		arg.DecidedAt,
		arg.ExpiresAt,
	)
	var i AccessDecision
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.AttemptID,
		&i.Result,
		&i.ReasonCode,
		&i.ReasonDetail,
		&i.DecidedAt,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDecisionByAttempt = `
SELECT id, organization_id, attempt_id, result, reason_code, reason_detail, decided_at, expires_at, created_at, updated_at
FROM access_decisions
WHERE attempt_id = $1
`

func (q *Queries) GetDecisionByAttempt(ctx context.Context, attemptID pgtype.UUID) (AccessDecision, error) {
	row := q.db.QueryRow(ctx, getDecisionByAttempt, attemptID)
	var i AccessDecision
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.AttemptID,
		&i.Result,
		&i.ReasonCode,
		&i.ReasonDetail,
		&i.DecidedAt,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertDeviceCommand = `
INSERT INTO device_commands (id, organization_id, attempt_id, device_id, command, message, state, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, organization_id, attempt_id, device_id, command, message, state, idempotency_key, sent_at, created_at, updated_at
`

type InsertDeviceCommandParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	AttemptID      pgtype.UUID
	DeviceID       pgtype.UUID
	Command        string
	Message        pgtype.Text
	State          string
	IdempotencyKey string
}

func (q *Queries) InsertDeviceCommand(ctx context.Context, arg InsertDeviceCommandParams) (DeviceCommand, error) {
	row := q.db.QueryRow(ctx, insertDeviceCommand,
		arg.ID,
		arg.OrganizationID,
		arg.AttemptID,
		arg.DeviceID,
		arg.Command,
		arg.Message,
		arg.State,
		arg.IdempotencyKey,
	)
	var i DeviceCommand
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.AttemptID,
		&i.DeviceID,
		&i.Command,
		&i.Message,
		&i.State,
		&i.IdempotencyKey,
		&i.SentAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCommandByAttempt = `
SELECT id, organization_id, attempt_id, device_id, command, message, state, idempotency_key, sent_at, created_at, updated_at
FROM device_commands
WHERE attempt_id = $1
`

func (q *Queries) GetCommandByAttempt(ctx context.Context, attemptID pgtype.UUID) (DeviceCommand, error) {
	row := q.db.QueryRow(ctx, getCommandByAttempt, attemptID)
	var i DeviceCommand
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.AttemptID,
		&i.DeviceID,
		&i.Command,
		&i.Message,
		&i.State,
		&i.IdempotencyKey,
		&i.SentAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
