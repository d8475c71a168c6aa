package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertVisitor = `
INSERT INTO preauthorized_visitors (id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
`

type InsertVisitorParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	DocumentKind   string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          pgtype.Text
	Phone          pgtype.Text
	State          string
}

func (q *Queries) InsertVisitor(ctx context.Context, arg InsertVisitorParams) (PreauthorizedVisitor, error) {
	row := q.db.QueryRow(ctx, insertVisitor,
		arg.ID,
		arg.OrganizationID,
		arg.DocumentKind,
		arg.DocumentNumber,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Phone,
		arg.State,
	)
	var i PreauthorizedVisitor
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getVisitor = `
SELECT id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
FROM preauthorized_visitors
WHERE organization_id = $1 AND id = $2
`

type GetVisitorParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetVisitor(ctx context.Context, arg GetVisitorParams) (PreauthorizedVisitor, error) {
	row := q.db.QueryRow(ctx, getVisitor, arg.OrganizationID, arg.ID)
	var i PreauthorizedVisitor
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listVisitors = `
SELECT id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
FROM preauthorized_visitors
WHERE organization_id = $1
  AND ($2::text IS NULL OR state = $2)
ORDER BY last_name, first_name
LIMIT $3 OFFSET $4
`

type ListVisitorsParams struct {
	OrganizationID pgtype.UUID
	State          pgtype.Text
	Limit          int32
	Offset         int32
}

func (q *Queries) ListVisitors(ctx context.Context, arg ListVisitorsParams) ([]PreauthorizedVisitor, error) {
	rows, err := q.db.Query(ctx, listVisitors, arg.OrganizationID, arg.State, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PreauthorizedVisitor{}
	for rows.Next() {
		var i PreauthorizedVisitor
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countVisitors = `
SELECT COUNT(*)
FROM preauthorized_visitors
WHERE organization_id = $1
  AND ($2::text IS NULL OR state = $2)
`

type CountVisitorsParams struct {
	OrganizationID pgtype.UUID
	State          pgtype.Text
}

func (q *Queries) CountVisitors(ctx context.Context, arg CountVisitorsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countVisitors, arg.OrganizationID, arg.State).Scan(&count)
	return count, err
}

const updateVisitor = `
UPDATE preauthorized_visitors
SET document_kind = $3, document_number = $4, first_name = $5, last_name = $6, email = $7, phone = $8, state = $9, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
`

type UpdateVisitorParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	DocumentKind   string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          pgtype.Text
	Phone          pgtype.Text
	State          string
}

func (q *Queries) UpdateVisitor(ctx context.Context, arg UpdateVisitorParams) (PreauthorizedVisitor, error) {
	row := q.db.QueryRow(ctx, updateVisitor,
		arg.OrganizationID,
		arg.ID,
		arg.DocumentKind,
		arg.DocumentNumber,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Phone,
		arg.State,
	)
	var i PreauthorizedVisitor
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const softDeleteVisitor = `
UPDATE preauthorized_visitors
SET state = 'INACTIVE', updated_at = now()
WHERE organization_id = $1 AND id = $2
`

type SoftDeleteVisitorParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) SoftDeleteVisitor(ctx context.Context, arg SoftDeleteVisitorParams) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteVisitor, arg.OrganizationID, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countVisitorsByIDs = `
SELECT COUNT(*)
FROM preauthorized_visitors
WHERE organization_id = $1 AND id = ANY($2::uuid[])
`

type CountVisitorsByIDsParams struct {
	OrganizationID pgtype.UUID
	IDs            []pgtype.UUID
}

func (q *Queries) CountVisitorsByIDs(ctx context.Context, arg CountVisitorsByIDsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countVisitorsByIDs, arg.OrganizationID, arg.IDs).Scan(&count)
	return count, err
}
