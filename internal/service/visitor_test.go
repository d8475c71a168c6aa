package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
)

type visitorFixture struct {
	store *mock.MockStore
	svc   VisitorService
	ctx   context.Context
	orgID uuid.UUID
}

func newVisitorFixture(t *testing.T) *visitorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	f := &visitorFixture{store: store, orgID: uuid.New()}
	f.svc = NewVisitorService(store, zaptest.NewLogger(t))
	f.ctx = middleware.WithOrgID(context.Background(), f.orgID.String())
	return f
}

func TestGetVisitorNotFound(t *testing.T) {
	f := newVisitorFixture(t)

	f.store.EXPECT().
		GetVisitor(gomock.Any(), gomock.Any()).
		Return(db.PreauthorizedVisitor{}, pgx.ErrNoRows)

	_, err := f.svc.GetVisitor(f.ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateVisitorKeepsDocumentIdentity(t *testing.T) {
	f := newVisitorFixture(t)
	visitorID := uuid.New()

	f.store.EXPECT().
		GetVisitor(gomock.Any(), db.GetVisitorParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(visitorID)}).
		Return(db.PreauthorizedVisitor{
			ID:             pgUUID(visitorID),
			OrganizationID: pgUUID(f.orgID),
			DocumentKind:   "PASSPORT",
			DocumentNumber: "X123456",
			FirstName:      "Iris",
			LastName:       "Vega",
			State:          "ACTIVE",
		}, nil)

	f.store.EXPECT().
		UpdateVisitor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateVisitorParams) (db.PreauthorizedVisitor, error) {
			// Blank request fields mean keep the stored value.
			assert.Equal(t, "PASSPORT", arg.DocumentKind)
			assert.Equal(t, "X123456", arg.DocumentNumber)
			assert.Equal(t, "Iris Marina", arg.FirstName)
			assert.Equal(t, "Vega", arg.LastName)
			assert.Equal(t, "ACTIVE", arg.State)
			return db.PreauthorizedVisitor{ID: arg.ID, OrganizationID: arg.OrganizationID}, nil
		})

	_, err := f.svc.UpdateVisitor(f.ctx, visitorID.String(), PersonInput{FirstName: "Iris Marina"})
	require.NoError(t, err)
}

func TestUpdateVisitorDuplicateDocument(t *testing.T) {
	f := newVisitorFixture(t)
	visitorID := uuid.New()

	f.store.EXPECT().
		GetVisitor(gomock.Any(), gomock.Any()).
		Return(db.PreauthorizedVisitor{
			ID:             pgUUID(visitorID),
			OrganizationID: pgUUID(f.orgID),
			DocumentKind:   "CC",
			DocumentNumber: "900100200",
			FirstName:      "Iris",
			LastName:       "Vega",
			State:          "ACTIVE",
		}, nil)
	f.store.EXPECT().
		UpdateVisitor(gomock.Any(), gomock.Any()).
		Return(db.PreauthorizedVisitor{}, uniqueViolation())

	_, err := f.svc.UpdateVisitor(f.ctx, visitorID.String(), PersonInput{DocumentNumber: "900100201"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteVisitorSoftDeletes(t *testing.T) {
	f := newVisitorFixture(t)
	visitorID := uuid.New()

	f.store.EXPECT().
		SoftDeleteVisitor(gomock.Any(), db.SoftDeleteVisitorParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(visitorID)}).
		Return(int64(1), nil)

	require.NoError(t, f.svc.DeleteVisitor(f.ctx, visitorID.String()))
}

func TestDeleteVisitorNotFound(t *testing.T) {
	f := newVisitorFixture(t)

	f.store.EXPECT().
		SoftDeleteVisitor(gomock.Any(), gomock.Any()).
		Return(int64(0), nil)

	err := f.svc.DeleteVisitor(f.ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}
