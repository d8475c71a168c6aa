package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertDevice = `
INSERT INTO devices (id, organization_id, area_id, name, model, external_id, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, organization_id, area_id, name, model, external_id, active, created_at, updated_at
`

type InsertDeviceParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	Name           string
	Model          pgtype.Text
	ExternalID     pgtype.Text
	Active         bool
}

func (q *Queries) InsertDevice(ctx context.Context, arg InsertDeviceParams) (Device, error) {
	row := q.db.QueryRow(ctx, insertDevice,
		arg.ID,
		arg.OrganizationID,
		arg.AreaID,
		arg.Name,
		arg.Model,
		arg.ExternalID,
		arg.Active,
	)
	var i Device
	err := row.Scan(&i.ID, &i.OrganizationID, &i.AreaID, &i.Name, &i.Model, &i.ExternalID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getDevice = `
SELECT id, organization_id, area_id, name, model, external_id, active, created_at, updated_at
FROM devices
WHERE organization_id = $1 AND id = $2
`

type GetDeviceParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetDevice(ctx context.Context, arg GetDeviceParams) (Device, error) {
	row := q.db.QueryRow(ctx, getDevice, arg.OrganizationID, arg.ID)
	var i Device
	err := row.Scan(&i.ID, &i.OrganizationID, &i.AreaID, &i.Name, &i.Model, &i.ExternalID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listDevices = `
SELECT id, organization_id, area_id, name, model, external_id, active, created_at, updated_at
FROM devices
WHERE organization_id = $1
  AND ($2::uuid IS NULL OR area_id = $2)
ORDER BY name
LIMIT $3 OFFSET $4
`

type ListDevicesParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
	Limit          int32
	Offset         int32
}

func (q *Queries) ListDevices(ctx context.Context, arg ListDevicesParams) ([]Device, error) {
	rows, err := q.db.Query(ctx, listDevices, arg.OrganizationID, arg.AreaID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Device{}
	for rows.Next() {
		var i Device
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.AreaID, &i.Name, &i.Model, &i.ExternalID, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countDevices = `
SELECT COUNT(*)
FROM devices
WHERE organization_id = $1
  AND ($2::uuid IS NULL OR area_id = $2)
`

type CountDevicesParams struct {
	OrganizationID pgtype.UUID
	AreaID         pgtype.UUID
}

func (q *Queries) CountDevices(ctx context.Context, arg CountDevicesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countDevices, arg.OrganizationID, arg.AreaID).Scan(&count)
	return count, err
}

const updateDevice = `
UPDATE devices
SET area_id = $3, name = $4, model = $5, external_id = $6, active = $7, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, area_id, name, model, external_id, active, created_at, updated_at
`

type UpdateDeviceParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	AreaID         pgtype.UUID
	Name           string
	Model          pgtype.Text
	ExternalID     pgtype.Text
	Active         bool
}

func (q *Queries) UpdateDevice(ctx context.Context, arg UpdateDeviceParams) (Device, error) {
	row := q.db.QueryRow(ctx, updateDevice,
		arg.OrganizationID,
		arg.ID,
		arg.AreaID,
		arg.Name,
		arg.Model,
		arg.ExternalID,
		arg.Active,
	)
	var i Device
	err := row.Scan(&i.ID, &i.OrganizationID, &i.AreaID, &i.Name, &i.Model, &i.ExternalID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteDevice = `
DELETE FROM devices
WHERE organization_id = $1 AND id = $2
`

type DeleteDeviceParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) DeleteDevice(ctx context.Context, arg DeleteDeviceParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteDevice, arg.OrganizationID, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
