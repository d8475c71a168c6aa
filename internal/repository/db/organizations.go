package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrganization = `
INSERT INTO organizations (id, name, state, timezone_id, default_decision)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, state, timezone_id, default_decision, created_at, updated_at
`

type InsertOrganizationParams struct {
	ID              pgtype.UUID
	Name            string
	State           string
	TimezoneID      string
	DefaultDecision string
}

func (q *Queries) InsertOrganization(ctx context.Context, arg InsertOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, insertOrganization,
		arg.ID,
		arg.Name,
		arg.State,
		arg.TimezoneID,
		arg.DefaultDecision,
	)
	var i Organization
	err := row.Scan(&i.ID, &i.Name, &i.State, &i.TimezoneID, &i.DefaultDecision, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getOrganization = `
SELECT id, name, state, timezone_id, default_decision, created_at, updated_at
FROM organizations
WHERE id = $1
`

func (q *Queries) GetOrganization(ctx context.Context, id pgtype.UUID) (Organization, error) {
	row := q.db.QueryRow(ctx, getOrganization, id)
	var i Organization
	err := row.Scan(&i.ID, &i.Name, &i.State, &i.TimezoneID, &i.DefaultDecision, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listOrganizations = `
SELECT id, name, state, timezone_id, default_decision, created_at, updated_at
FROM organizations
ORDER BY name
LIMIT $1 OFFSET $2
`

type ListOrganizationsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListOrganizations(ctx context.Context, arg ListOrganizationsParams) ([]Organization, error) {
	rows, err := q.db.Query(ctx, listOrganizations, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Organization{}
	for rows.Next() {
		var i Organization
		if err := rows.Scan(&i.ID, &i.Name, &i.State, &i.TimezoneID, &i.DefaultDecision, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countOrganizations = `
SELECT COUNT(*) FROM organizations
`

func (q *Queries) CountOrganizations(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countOrganizations).Scan(&count)
	return count, err
}

const updateOrganization = `
UPDATE organizations
SET name = $2, state = $3, timezone_id = $4, default_decision = $5, updated_at = now()
WHERE id = $1
RETURNING id, name, state, timezone_id, default_decision, created_at, updated_at
`

type UpdateOrganizationParams struct {
	ID              pgtype.UUID
	Name            string
	State           string
	TimezoneID      string
	DefaultDecision string
}

func (q *Queries) UpdateOrganization(ctx context.Context, arg UpdateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, updateOrganization,
		arg.ID,
		arg.Name,
		arg.State,
		arg.TimezoneID,
		arg.DefaultDecision,
	)
	var i Organization
	err := row.Scan(&i.ID, &i.Name, &i.State, &i.TimezoneID, &i.DefaultDecision, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const softDeleteOrganization = `
UPDATE organizations
SET state = 'INACTIVE', updated_at = now()
WHERE id = $1
`

func (q *Queries) SoftDeleteOrganization(ctx context.Context, id pgtype.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteOrganization, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
