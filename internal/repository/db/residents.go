package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertResident = `
INSERT INTO residents (id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
`

type InsertResidentParams struct {
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

func (q *Queries) InsertResident(ctx context.Context, arg InsertResidentParams) (Resident, error) {
	row := q.db.QueryRow(ctx, insertResident,
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
	var i Resident
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getResident = `
SELECT id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
FROM residents
WHERE organization_id = $1 AND id = $2
`

type GetResidentParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetResident(ctx context.Context, arg GetResidentParams) (Resident, error) {
	row := q.db.QueryRow(ctx, getResident, arg.OrganizationID, arg.ID)
	var i Resident
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listResidents = `
SELECT id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
FROM residents
WHERE organization_id = $1
  AND ($2::text IS NULL OR state = $2)
ORDER BY last_name, first_name
LIMIT $3 OFFSET $4
`

type ListResidentsParams struct {
	OrganizationID pgtype.UUID
	State          pgtype.Text
	Limit          int32
	Offset         int32
}

func (q *Queries) ListResidents(ctx context.Context, arg ListResidentsParams) ([]Resident, error) {
	rows, err := q.db.Query(ctx, listResidents, arg.OrganizationID, arg.State, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Resident{}
	for rows.Next() {
		var i Resident
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countResidents = `
SELECT COUNT(*)
FROM residents
WHERE organization_id = $1
  AND ($2::text IS NULL OR state = $2)
`

type CountResidentsParams struct {
	OrganizationID pgtype.UUID
	State          pgtype.Text
}

func (q *Queries) CountResidents(ctx context.Context, arg CountResidentsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countResidents, arg.OrganizationID, arg.State).Scan(&count)
	return count, err
}

const updateResident = `
UPDATE residents
SET document_kind = $3, document_number = $4, first_name = $5, last_name = $6, email = $7, phone = $8, state = $9, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, document_kind, document_number, first_name, last_name, email, phone, state, created_at, updated_at
`

type UpdateResidentParams struct {
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

func (q *Queries) UpdateResident(ctx context.Context, arg UpdateResidentParams) (Resident, error) {
	row := q.db.QueryRow(ctx, updateResident,
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
	var i Resident
	err := row.Scan(&i.ID, &i.OrganizationID, &i.DocumentKind, &i.DocumentNumber, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const softDeleteResident = `
UPDATE residents
SET state = 'INACTIVE', updated_at = now()
WHERE organization_id = $1 AND id = $2
`

type SoftDeleteResidentParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) SoftDeleteResident(ctx context.Context, arg SoftDeleteResidentParams) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteResident, arg.OrganizationID, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const countResidentsByIDs = `
SELECT COUNT(*)
FROM residents
WHERE organization_id = $1 AND id = ANY($2::uuid[])
`

type CountResidentsByIDsParams struct {
	OrganizationID pgtype.UUID
	IDs            []pgtype.UUID
}

func (q *Queries) CountResidentsByIDs(ctx context.Context, arg CountResidentsByIDsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countResidentsByIDs, arg.OrganizationID, arg.IDs).Scan(&count)
	return count, err
}
