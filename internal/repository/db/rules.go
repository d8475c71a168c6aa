package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertRule = `
INSERT INTO access_rules (id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
`

type InsertRuleParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	SubjectType    string
	DeviceID       pgtype.UUID
	PassDirection  pgtype.Text
	AuthMethod     pgtype.Text
	Action         string
	ValidFrom      pgtype.Timestamptz
	ValidTo        pgtype.Timestamptz
	DailyFrom      pgtype.Text
	DailyTo        pgtype.Text
	Priority       int32
	State          string
	Message        pgtype.Text
}

func (q *Queries) InsertRule(ctx context.Context, arg InsertRuleParams) (AccessRule, error) {
	row := q.db.QueryRow(ctx, insertRule,
		arg.ID,
		arg.OrganizationID,
		arg.AreaID,
		arg.SubjectType,
		arg.DeviceID,
		arg.PassDirection,
		arg.AuthMethod,
		arg.Action,
		arg.ValidFrom,
		arg.ValidTo,
		arg.DailyFrom,
		arg.DailyTo,
		arg.Priority,
		arg.State,
		arg.Message,
	)
	return scanRule(row)
}

const getRule = `
SELECT id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
FROM access_rules
WHERE organization_id = $1 AND id = $2
`

type GetRuleParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetRule(ctx context.Context, arg GetRuleParams) (AccessRule, error) {
	row := q.db.QueryRow(ctx, getRule, arg.OrganizationID, arg.ID)
	return scanRule(row)
}

const listRules = `
SELECT id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
FROM access_rules
WHERE organization_id = $1
  AND ($2::uuid IS NULL OR area_id = $2)
  AND ($3::uuid IS NULL OR device_id = $3)
  AND ($4::text IS NULL OR subject_type = $4)
  AND ($5::text IS NULL OR pass_direction = $5)
  AND ($6::text IS NULL OR auth_method = $6)
  AND ($7::text IS NULL OR action = $7)
  AND ($8::text IS NULL OR state = $8)
ORDER BY updated_at DESC
LIMIT $9 OFFSET $10
`

type ListRulesParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	DeviceID       pgtype.UUID
	SubjectType    pgtype.Text
	PassDirection  pgtype.Text
	AuthMethod     pgtype.Text
	Action         pgtype.Text
	State          pgtype.Text
	Limit          int32
	Offset         int32
}

func (q *Queries) ListRules(ctx context.Context, arg ListRulesParams) ([]AccessRule, error) {
	rows, err := q.db.Query(ctx, listRules,
		arg.OrganizationID,
		arg.AreaID,
		arg.DeviceID,
		arg.SubjectType,
		arg.PassDirection,
		arg.AuthMethod,
		arg.Action,
		arg.State,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRules(rows)
}

const countRules = `
SELECT COUNT(*)
FROM access_rules
WHERE organization_id = $1
  AND ($2::uuid IS NULL OR area_id = $2)
  AND ($3::uuid IS NULL OR device_id = $3)
  AND ($4::text IS NULL OR subject_type = $4)
  AND ($5::text IS NULL OR pass_direction = $5)
  AND ($6::text IS NULL OR auth_method = $6)
  AND ($7::text IS NULL OR action = $7)
  AND ($8::text IS NULL OR state = $8)
`

type CountRulesParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	DeviceID       pgtype.UUID
	SubjectType    pgtype.Text
	PassDirection  pgtype.Text
	AuthMethod     pgtype.Text
	Action         pgtype.Text
	State          pgtype.Text
}

func (q *Queries) CountRules(ctx context.Context, arg CountRulesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countRules,
		arg.OrganizationID,
		arg.AreaID,
		arg.DeviceID,
		arg.SubjectType,
		arg.PassDirection,
		arg.AuthMethod,
		arg.Action,
		arg.State,
	).Scan(&count)
	return count, err
}

// existsDuplicateRule treats NULL as a distinguished wildcard value:
// two rules are logical duplicates only when every optional matcher and
// window bound is pairwise identical, NULLs included. Soft-deleted
// (INACTIVE) rules do not block recreation.
const existsDuplicateRule = `
SELECT EXISTS (
  SELECT 1
  FROM access_rules
  WHERE organization_id = $1
    AND area_id = $2
    AND subject_type = $3
    AND action = $4
    AND device_id IS NOT DISTINCT FROM $5::uuid
    AND pass_direction IS NOT DISTINCT FROM $6::text
    AND auth_method IS NOT DISTINCT FROM $7::text
    AND valid_from IS NOT DISTINCT FROM $8::timestamptz
    AND valid_to IS NOT DISTINCT FROM $9::timestamptz
    AND daily_from IS NOT DISTINCT FROM $10::text
    AND daily_to IS NOT DISTINCT FROM $11::text
    AND state = 'ACTIVE'
    AND ($12::uuid IS NULL OR id <> $12)
)
`

type ExistsDuplicateRuleParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	SubjectType    string
	Action         string
	DeviceID       pgtype.UUID
	PassDirection  pgtype.Text
	AuthMethod     pgtype.Text
	ValidFrom      pgtype.Timestamptz
	ValidTo        pgtype.Timestamptz
	DailyFrom      pgtype.Text
	DailyTo        pgtype.Text
	ExcludeID      pgtype.UUID
}

func (q *Queries) ExistsDuplicateRule(ctx context.Context, arg ExistsDuplicateRuleParams) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, existsDuplicateRule,
		arg.OrganizationID,
		arg.AreaID,
		arg.SubjectType,
		arg.Action,
		arg.DeviceID,
		arg.PassDirection,
		arg.AuthMethod,
		arg.ValidFrom,
		arg.ValidTo,
		arg.DailyFrom,
		arg.DailyTo,
		arg.ExcludeID,
	).Scan(&exists)
	return exists, err
}

const findActiveRulesBase = `
SELECT id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
FROM access_rules
WHERE organization_id = $1 AND area_id = $2 AND subject_type = $3 AND state = 'ACTIVE'
ORDER BY priority DESC, updated_at DESC
`

type FindActiveRulesBaseParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	SubjectType    string
}

func (q *Queries) FindActiveRulesBase(ctx context.Context, arg FindActiveRulesBaseParams) ([]AccessRule, error) {
	rows, err := q.db.Query(ctx, findActiveRulesBase, arg.OrganizationID, arg.AreaID, arg.SubjectType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRules(rows)
}

// findCandidatesForIntent applies the wildcard matchers and the UTC
// validity window in SQL; the daily window still needs the effective
// zone and is evaluated by the engine.
const findCandidatesForIntent = `
SELECT id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
FROM access_rules
WHERE organization_id = $1
  AND area_id = $2
  AND subject_type = $3
  AND state = 'ACTIVE'
  AND (device_id IS NULL OR device_id = $4)
  AND (pass_direction IS NULL OR pass_direction = $5)
  AND (auth_method IS NULL OR auth_method = $6)
  AND (valid_from IS NULL OR valid_from <= $7)
  AND (valid_to IS NULL OR valid_to >= $7)
ORDER BY priority DESC, updated_at DESC
`

type FindCandidatesForIntentParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	SubjectType    string
	DeviceID       pgtype.UUID
	PassDirection  string
	AuthMethod     string
	OccurredAt     pgtype.Timestamptz
}

func (q *Queries) FindCandidatesForIntent(ctx context.Context, arg FindCandidatesForIntentParams) ([]AccessRule, error) {
	rows, err := q.db.Query(ctx, findCandidatesForIntent,
		arg.OrganizationID,
		arg.AreaID,
		arg.SubjectType,
		arg.DeviceID,
		arg.PassDirection,
		arg.AuthMethod,
		arg.OccurredAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRules(rows)
}

const updateRule = `
UPDATE access_rules
SET device_id = $3, pass_direction = $4, auth_method = $5, action = $6, valid_from = $7, valid_to = $8, daily_from = $9, daily_to = $10, priority = $11, message = $12, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
`

type UpdateRuleParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	DeviceID       pgtype.UUID
	PassDirection  pgtype.Text
	AuthMethod     pgtype.Text
	Action         string
	ValidFrom      pgtype.Timestamptz
	ValidTo        pgtype.Timestamptz
	DailyFrom      pgtype.Text
	DailyTo        pgtype.Text
	Priority       int32
	Message        pgtype.Text
}

func (q *Queries) UpdateRule(ctx context.Context, arg UpdateRuleParams) (AccessRule, error) {
	row := q.db.QueryRow(ctx, updateRule,
		arg.OrganizationID,
		arg.ID,
		arg.DeviceID,
		arg.PassDirection,
		arg.AuthMethod,
		arg.Action,
		arg.ValidFrom,
		arg.ValidTo,
		arg.DailyFrom,
		arg.DailyTo,
		arg.Priority,
		arg.Message,
	)
	return scanRule(row)
}

const updateRuleState = `
UPDATE access_rules
SET state = $3, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, area_id, subject_type, device_id, pass_direction, auth_method, action, valid_from, valid_to, daily_from, daily_to, priority, state, message, created_at, updated_at
`

type UpdateRuleStateParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	State          string
}

func (q *Queries) UpdateRuleState(ctx context.Context, arg UpdateRuleStateParams) (AccessRule, error) {
	row := q.db.QueryRow(ctx, updateRuleState, arg.OrganizationID, arg.ID, arg.State)
	return scanRule(row)
}

func scanRule(row pgx.Row) (AccessRule, error) {
	var i AccessRule
	err := row.Scan(
		&i.ID,
		&i.OrganizationID,
		&i.AreaID,
		&i.SubjectType,
		&i.DeviceID,
		&i.PassDirection,
		&i.AuthMethod,
		&i.Action,
		&i.ValidFrom,
		&i.ValidTo,
		&i.DailyFrom,
		&i.DailyTo,
		&i.Priority,
		&i.State,
		&i.Message,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanRules(rows pgx.Rows) ([]AccessRule, error) {
	items := []AccessRule{}
	for rows.Next() {
		i, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
