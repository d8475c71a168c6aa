package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertGroup = `
INSERT INTO subject_groups (id, organization_id, kind, name, state)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, organization_id, kind, name, state, created_at, updated_at
`

type InsertGroupParams struct {
	ID             pgtype.UUID
	OrganizationID pgtype.UUID
	Kind           string
	Name           string
	State          string
}

func (q *Queries) InsertGroup(ctx context.Context, arg InsertGroupParams) (SubjectGroup, error) {
	row := q.db.QueryRow(ctx, insertGroup,
		arg.ID,
		arg.OrganizationID,
		arg.Kind,
		arg.Name,
		arg.State,
	)
	var i SubjectGroup
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Kind, &i.Name, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getGroup = `
SELECT id, organization_id, kind, name, state, created_at, updated_at
FROM subject_groups
WHERE organization_id = $1 AND id = $2
`

type GetGroupParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) GetGroup(ctx context.Context, arg GetGroupParams) (SubjectGroup, error) {
	row := q.db.QueryRow(ctx, getGroup, arg.OrganizationID, arg.ID)
	var i SubjectGroup
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Kind, &i.Name, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listGroups = `
SELECT id, organization_id, kind, name, state, created_at, updated_at
FROM subject_groups
WHERE organization_id = $1
  AND ($2::text IS NULL OR kind = $2)
ORDER BY name
LIMIT $3 OFFSET $4
`

type ListGroupsParams struct {
	OrganizationID pgtype.UUID
	Kind           pgtype.Text
	Limit          int32
	Offset         int32
}

func (q *Queries) ListGroups(ctx context.Context, arg ListGroupsParams) ([]SubjectGroup, error) {
	rows, err := q.db.Query(ctx, listGroups, arg.OrganizationID, arg.Kind, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SubjectGroup{}
	for rows.Next() {
		var i SubjectGroup
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.Kind, &i.Name, &i.State, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countGroups = `
SELECT COUNT(*)
FROM subject_groups
WHERE organization_id = $1
  AND ($2::text IS NULL OR kind = $2)
`

type CountGroupsParams struct {
	OrganizationID pgtype.UUID
	Kind           pgtype.Text
}

func (q *Queries) CountGroups(ctx context.Context, arg CountGroupsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countGroups, arg.OrganizationID, arg.Kind).Scan(&count)
	return count, err
}

const updateGroup = `
UPDATE subject_groups
SET name = $3, state = $4, updated_at = now()
WHERE organization_id = $1 AND id = $2
RETURNING id, organization_id, kind, name, state, created_at, updated_at
`

type UpdateGroupParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
	Name           string
	State          string
}

func (q *Queries) UpdateGroup(ctx context.Context, arg UpdateGroupParams) (SubjectGroup, error) {
	row := q.db.QueryRow(ctx, updateGroup,
		arg.OrganizationID,
		arg.ID,
		arg.Name,
		arg.State,
	)
	var i SubjectGroup
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Kind, &i.Name, &i.State, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const softDeleteGroup = `
UPDATE subject_groups
SET state = 'INACTIVE', updated_at = now()
WHERE organization_id = $1 AND id = $2
`

type SoftDeleteGroupParams struct {
	OrganizationID pgtype.UUID
	ID             pgtype.UUID
}

func (q *Queries) SoftDeleteGroup(ctx context.Context, arg SoftDeleteGroupParams) (int64, error) {
	tag, err := q.db.Exec(ctx, softDeleteGroup, arg.OrganizationID, arg.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteGroupMembers = `
DELETE FROM subject_group_members WHERE group_id = $1
`

func (q *Queries) DeleteGroupMembers(ctx context.Context, groupID pgtype.UUID) error {
	_, err := q.db.Exec(ctx, deleteGroupMembers, groupID)
	return err
}

const insertGroupMember = `
INSERT INTO subject_group_members (group_id, organization_id, member_id)
VALUES ($1, $2, $3)
ON CONFLICT (group_id, member_id) DO NOTHING
`

type InsertGroupMemberParams struct {
	GroupID        pgtype.UUID
	OrganizationID pgtype.UUID
	MemberID       pgtype.UUID
}

func (q *Queries) InsertGroupMember(ctx context.Context, arg InsertGroupMemberParams) error {
	_, err := q.db.Exec(ctx, insertGroupMember, arg.GroupID, arg.OrganizationID, arg.MemberID)
	return err
}

const listGroupMembers = `
SELECT group_id, organization_id, member_id, created_at
FROM subject_group_members
WHERE group_id = $1
ORDER BY created_at
`

func (q *Queries) ListGroupMembers(ctx context.Context, groupID pgtype.UUID) ([]SubjectGroupMember, error) {
	rows, err := q.db.Query(ctx, listGroupMembers, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SubjectGroupMember{}
	for rows.Next() {
		var i SubjectGroupMember
		if err := rows.Scan(&i.GroupID, &i.OrganizationID, &i.MemberID, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
