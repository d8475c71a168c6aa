package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
)

type groupFixture struct {
	store   *mock.MockStore
	svc     GroupService
	ctx     context.Context
	orgID   uuid.UUID
	groupID uuid.UUID
}

func newGroupFixture(t *testing.T) *groupFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	f := &groupFixture{
		store:   store,
		orgID:   uuid.New(),
		groupID: uuid.New(),
	}
	f.svc = NewGroupService(store, zaptest.NewLogger(t))
	f.ctx = middleware.WithOrgID(context.Background(), f.orgID.String())
	return f
}

func (f *groupFixture) expectGroup(kind domain.GroupKind) {
	f.store.EXPECT().
		GetGroup(gomock.Any(), db.GetGroupParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(f.groupID)}).
		Return(db.SubjectGroup{
			ID:             pgUUID(f.groupID),
			OrganizationID: pgUUID(f.orgID),
			Kind:           string(kind),
			Name:           "night shift",
			State:          string(domain.StateActive),
		}, nil)
}

func TestCreateGroupValidatesKind(t *testing.T) {
	f := newGroupFixture(t)

	_, err := f.svc.CreateGroup(f.ctx, CreateGroupInput{Kind: "ROBOTS", Name: "night shift"})
	require.ErrorIs(t, err, ErrInvalidInput)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "kind", verrs[0].Field)
}

func TestSetGroupMembersReplacesAtomically(t *testing.T) {
	f := newGroupFixture(t)
	memberA := uuid.New()
	memberB := uuid.New()

	f.expectGroup(domain.GroupResidents)
	f.store.EXPECT().
		CountResidentsByIDs(gomock.Any(), db.CountResidentsByIDsParams{
			OrganizationID: pgUUID(f.orgID),
			IDs:            []pgtype.UUID{pgUUID(memberA), pgUUID(memberB)},
		}).
		Return(int64(2), nil)

	passthroughTx(f.store)
	gomock.InOrder(
		f.store.EXPECT().DeleteGroupMembers(gomock.Any(), pgUUID(f.groupID)).Return(nil),
		f.store.EXPECT().InsertGroupMember(gomock.Any(), db.InsertGroupMemberParams{
			GroupID:        pgUUID(f.groupID),
			OrganizationID: pgUUID(f.orgID),
			MemberID:       pgUUID(memberA),
		}).Return(nil),
		f.store.EXPECT().InsertGroupMember(gomock.Any(), db.InsertGroupMemberParams{
			GroupID:        pgUUID(f.groupID),
			OrganizationID: pgUUID(f.orgID),
			MemberID:       pgUUID(memberB),
		}).Return(nil),
		f.store.EXPECT().ListGroupMembers(gomock.Any(), pgUUID(f.groupID)).Return([]db.SubjectGroupMember{
			{GroupID: pgUUID(f.groupID), MemberID: pgUUID(memberA)},
			{GroupID: pgUUID(f.groupID), MemberID: pgUUID(memberB)},
		}, nil),
	)

	// Duplicated ids in the payload collapse to one insert each.
	members, err := f.svc.SetGroupMembers(f.ctx, f.groupID.String(), []string{
		memberA.String(), memberB.String(), memberA.String(),
	})
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestSetGroupMembersChecksVisitorTable(t *testing.T) {
	f := newGroupFixture(t)
	member := uuid.New()

	f.expectGroup(domain.GroupVisitors)
	f.store.EXPECT().
		CountVisitorsByIDs(gomock.Any(), db.CountVisitorsByIDsParams{
			OrganizationID: pgUUID(f.orgID),
			IDs:            []pgtype.UUID{pgUUID(member)},
		}).
		Return(int64(0), nil)

	_, err := f.svc.SetGroupMembers(f.ctx, f.groupID.String(), []string{member.String()})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "1 of 1 members do not exist")
}

func TestSetGroupMembersEmptyClearsGroup(t *testing.T) {
	f := newGroupFixture(t)

	f.expectGroup(domain.GroupResidents)
	passthroughTx(f.store)
	f.store.EXPECT().DeleteGroupMembers(gomock.Any(), pgUUID(f.groupID)).Return(nil)
	f.store.EXPECT().ListGroupMembers(gomock.Any(), pgUUID(f.groupID)).Return([]db.SubjectGroupMember{}, nil)

	members, err := f.svc.SetGroupMembers(f.ctx, f.groupID.String(), nil)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestSetGroupMembersRejectsMalformedID(t *testing.T) {
	f := newGroupFixture(t)
	f.expectGroup(domain.GroupResidents)

	_, err := f.svc.SetGroupMembers(f.ctx, f.groupID.String(), []string{"not-a-uuid"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
