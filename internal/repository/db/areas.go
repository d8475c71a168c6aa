package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertArea = `
INSERT INTO areas (id, organization_id, name, image_path, timezone_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, organization_id, name, image_path, timezone_id, created_at, updated_at
`

type InsertAreaParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	Name           string
	ImagePath      pgtype.Text
	TimezoneID     pgtype.Text
}

func (q *Queries) InsertArea(ctx context.Context, arg InsertAreaParams) (Area, error) {
	row := q.db.QueryRow(ctx, insertArea,
		arg.ID,
		arg.OrganizationID,
		arg.Name,
		arg.ImagePath,
		arg.TimezoneID,
	)
	var i Area
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Name, &i.ImagePath, &i.TimezoneID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getArea = `
SELECT id, organization_id, name, image_path, timezone_id, created_at, updated_at
FROM areas
WHERE organization_id = $1 AND id = $2
`

type GetAreaParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetArea(ctx context.Context, arg GetAreaParams) (Area, error) {
	row := q.db.QueryRow(ctx, getArea, arg.OrganizationID, arg.ID)
	var i Area
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Name, &i.ImagePath, &i.TimezoneID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listAreas = `
SELECT id, organization_id, name, image_path, timezone_id, created_at, updated_at
FROM areas
WHERE organization_id = $1
ORDER BY name
LIMIT $2 OFFSET $3
`

type ListAreasParams struct {
	OrganizationID pgtype.UUID
	Limit          int32
	Offset         int32
}

func (q *Queries) ListAreas(ctx context.Context, arg ListAreasParams) ([]Area, error) {
	rows, err := q.db.Query(ctx, listAreas, arg.OrganizationID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Area{}
	for rows.Next() {
		var i Area
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.Name, &i.ImagePath, &i.TimezoneID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countAreas = `
SELECT COUNT(*) FROM areas WHERE organization_id = $1
`

func (q *Queries) CountAreas(ctx context.Context, organizationID pgtype.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countAreas, organizationID).Scan(&count)
	return count, err
}

const updateArea = `
UPDATE areas
SET name = $3, image_path = $4, timezone_id = $5, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, name, image_path, timezone_id, created_at, updated_at
`

type UpdateAreaParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	Name           string
	ImagePath      pgtype.Text
	TimezoneID     pgtype.Text
}

func (q *Queries) UpdateArea(ctx context.Context, arg UpdateAreaParams) (Area, error) {
	row := q.db.QueryRow(ctx, updateArea,
		arg.OrganizationID,
		arg.ID,
		arg.Name,
		arg.ImagePath,
		arg.TimezoneID,
	)
	var i Area
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Name, &i.ImagePath, &i.TimezoneID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteArea = `
DELETE FROM areas
WHERE organization_id = $1 AND id = $2
`

type DeleteAreaParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) DeleteArea(ctx context.Context, arg DeleteAreaParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteArea, arg.OrganizationID, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
