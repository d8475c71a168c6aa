package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// GroupService manages subject groups. A group holds either residents
// or preauthorized visitors, never both; the kind is fixed at creation
// and every member is checked against the matching table of the same
// tenant before the membership is replaced.
type GroupService interface {
	CreateGroup(ctx context.Context, in CreateGroupInput) (db.SubjectGroup, error)
	GetGroup(ctx context.Context, groupID string) (db.SubjectGroup, error)
	ListGroups(ctx context.Context, in ListGroupsInput) ([]db.SubjectGroup, int64, error)
	UpdateGroup(ctx context.Context, groupID string, in UpdateGroupInput) (db.SubjectGroup, error)
	DeleteGroup(ctx context.Context, groupID string) error
	SetGroupMembers(ctx context.Context, groupID string, memberIDs []string) ([]db.SubjectGroupMember, error)
	ListGroupMembers(ctx context.Context, groupID string) ([]db.SubjectGroupMember, error)
}

type CreateGroupInput struct {
	Kind string
	Name string
}

type UpdateGroupInput struct {
	Name  string
	State string
}

type ListGroupsInput struct {
	Kind string
	Page PageInput
}

type groupService struct {
	store db.Store
	log   *zap.Logger
}

func NewGroupService(store db.Store, logger *zap.Logger) GroupService {
	return &groupService{store: store, log: logger}
}

func (s *groupService) CreateGroup(ctx context.Context, in CreateGroupInput) (db.SubjectGroup, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.SubjectGroup{}, err
	}
	var errs ValidationErrors
	if !domain.GroupKind(in.Kind).Valid() {
		errs = append(errs, ValidationError{Field: "kind", Reason: "must be one of RESIDENTS, VISITORS"})
	}
	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Reason: "is required"})
	}
	if len(errs) > 0 {
		return db.SubjectGroup{}, errs
	}

	group, err := s.store.InsertGroup(ctx, db.InsertGroupParams{
		ID:             newUUID(),
		OrganizationID: pgUUID(orgID),
		Kind:           in.Kind,
		Name:           in.Name,
		State:          string(domain.StateActive),
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.SubjectGroup{}, fmt.Errorf("%w: group name already in use", ErrConflict)
		}
		return db.SubjectGroup{}, fmt.Errorf("insert group: %w", err)
	}
	return group, nil
}

func (s *groupService) GetGroup(ctx context.Context, groupID string) (db.SubjectGroup, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.SubjectGroup{}, err
	}
	id, err := parseUUID("group_id", groupID)
	if err != nil {
		return db.SubjectGroup{}, err
	}
	group, err := s.store.GetGroup(ctx, db.GetGroupParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.SubjectGroup{}, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return db.SubjectGroup{}, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, in ListGroupsInput) ([]db.SubjectGroup, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}
	if in.Kind != "" && !domain.GroupKind(in.Kind).Valid() {
		return nil, 0, ValidationErrors{{Field: "kind", Reason: "must be one of RESIDENTS, VISITORS"}}
	}
	page := in.Page.normalized()
	groups, err := s.store.ListGroups(ctx, db.ListGroupsParams{
		OrganizationID: pgUUID(orgID),
		Kind:           pgText(in.Kind),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list groups: %w", err)
	}
	total, err := s.store.CountGroups(ctx, db.CountGroupsParams{OrganizationID: pgUUID(orgID), Kind: pgText(in.Kind)})
	if err != nil {
		return nil, 0, fmt.Errorf("count groups: %w", err)
	}
	return groups, total, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID string, in UpdateGroupInput) (db.SubjectGroup, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.SubjectGroup{}, err
	}
	id, err := parseUUID("group_id", groupID)
	if err != nil {
		return db.SubjectGroup{}, err
	}
	current, err := s.store.GetGroup(ctx, db.GetGroupParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.SubjectGroup{}, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return db.SubjectGroup{}, fmt.Errorf("get group: %w", err)
	}

	name := current.Name
	if in.Name != "" {
		name = in.Name
	}
	state := current.State
	if in.State != "" {
		if st := domain.EntityState(in.State); !st.Valid() {
			return db.SubjectGroup{}, ValidationErrors{{Field: "state", Reason: "must be one of ACTIVE, INACTIVE"}}
		}
		state = in.State
	}

	group, err := s.store.UpdateGroup(ctx, db.UpdateGroupParams{
		OrganizationID: pgUUID(orgID),
		ID:             pgUUID(id),
		Name:           name,
		State:          state,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.SubjectGroup{}, fmt.Errorf("%w: group name already in use", ErrConflict)
		}
		return db.SubjectGroup{}, fmt.Errorf("update group: %w", err)
	}
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}
	id, err := parseUUID("group_id", groupID)
	if err != nil {
		return err
	}
	rows, err := s.store.SoftDeleteGroup(ctx, db.SoftDeleteGroupParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return nil
}

// SetGroupMembers replaces the full membership. Every id must resolve
// to a row of the group's kind inside the same tenant; a single unknown
// id rejects the whole request so partial replacements never land.
func (s *groupService) SetGroupMembers(ctx context.Context, groupID string, memberIDs []string) ([]db.SubjectGroupMember, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseUUID("group_id", groupID)
	if err != nil {
		return nil, err
	}
	group, err := s.store.GetGroup(ctx, db.GetGroupParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	ids, err := parseMemberIDs(memberIDs)
	if err != nil {
		return nil, err
	}
	if err := s.checkMembersExist(ctx, orgID, domain.GroupKind(group.Kind), ids); err != nil {
		return nil, err
	}

	var members []db.SubjectGroupMember
	err = s.store.InTx(ctx, func(q db.Querier) error {
		if err := q.DeleteGroupMembers(ctx, pgUUID(id)); err != nil {
			return err
		}
		for _, memberID := range ids {
			err := q.InsertGroupMember(ctx, db.InsertGroupMemberParams{
				GroupID:        pgUUID(id),
				OrganizationID: pgUUID(orgID),
				MemberID:       memberID,
			})
			if err != nil {
				return err
			}
		}
		var err error
		members, err = q.ListGroupMembers(ctx, pgUUID(id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replace group members: %w", err)
	}
	s.log.Info("group members replaced",
		zap.String("org_id", orgID.String()),
		zap.String("group_id", groupID),
		zap.Int("members", len(members)))
	return members, nil
}

func (s *groupService) ListGroupMembers(ctx context.Context, groupID string) ([]db.SubjectGroupMember, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseUUID("group_id", groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetGroup(ctx, db.GetGroupParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)}); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	members, err := s.store.ListGroupMembers(ctx, pgUUID(id))
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return members, nil
}

func (s *groupService) checkMembersExist(ctx context.Context, orgID uuid.UUID, kind domain.GroupKind, ids []pgtype.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var (
		count int64
		err   error
	)
	switch kind {
	case domain.GroupVisitors:
		count, err = s.store.CountVisitorsByIDs(ctx, db.CountVisitorsByIDsParams{OrganizationID: pgUUID(orgID), IDs: ids})
	default:
		count, err = s.store.CountResidentsByIDs(ctx, db.CountResidentsByIDsParams{OrganizationID: pgUUID(orgID), IDs: ids})
	}
	if err != nil {
		return fmt.Errorf("check group members: %w", err)
	}
	if count != int64(len(ids)) {
		return ValidationErrors{{
			Field:  "member_ids",
			Reason: fmt.Sprintf("%d of %d members do not exist in this organization", int64(len(ids))-count, len(ids)),
		}}
	}
	return nil
}

// parseMemberIDs parses and dedupes the payload while keeping order.
func parseMemberIDs(raw []string) ([]pgtype.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]pgtype.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, ValidationErrors{{Field: "member_ids", Reason: fmt.Sprintf("%q is not a UUID", r)}}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, pgUUID(id))
	}
	return ids, nil
}
