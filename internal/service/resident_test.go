package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
)

type residentFixture struct {
	store *mock.MockStore
	svc   ResidentService
	ctx   context.Context
	orgID uuid.UUID
}

func newResidentFixture(t *testing.T) *residentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	f := &residentFixture{store: store, orgID: uuid.New()}
	f.svc = NewResidentService(store, zaptest.NewLogger(t))
	f.ctx = middleware.WithOrgID(context.Background(), f.orgID.String())
	return f
}

func TestCreateResidentRequiresDocumentIdentity(t *testing.T) {
	f := newResidentFixture(t)

	_, err := f.svc.CreateResident(f.ctx, PersonInput{FirstName: "Ana"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"document_kind", "document_number", "last_name"}, fields)
}

func TestCreateResidentDuplicateDocument(t *testing.T) {
	f := newResidentFixture(t)

	f.store.EXPECT().
		InsertResident(gomock.Any(), gomock.Any()).
		Return(db.Resident{}, uniqueViolation())

	_, err := f.svc.CreateResident(f.ctx, PersonInput{
		DocumentKind:   "CC",
		DocumentNumber: "1002003000",
		FirstName:      "Ana",
		LastName:       "Diaz",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateResidentClearsEmailKeepsPhone(t *testing.T) {
	f := newResidentFixture(t)
	residentID := uuid.New()

	f.store.EXPECT().
		GetResident(gomock.Any(), db.GetResidentParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(residentID)}).
		Return(db.Resident{
			ID:             pgUUID(residentID),
			OrganizationID: pgUUID(f.orgID),
			DocumentKind:   "CC",
			DocumentNumber: "1002003000",
			FirstName:      "Ana",
			LastName:       "Diaz",
			Email:          pgText("ana@example.com"),
			Phone:          pgText("+57 300 000 0000"),
			State:          "ACTIVE",
		}, nil)

	f.store.EXPECT().
		UpdateResident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateResidentParams) (db.Resident, error) {
			assert.False(t, arg.Email.Valid, "pointer to empty string clears the column")
			assert.Equal(t, pgText("+57 300 000 0000"), arg.Phone)
			assert.Equal(t, "Diaz Mora", arg.LastName)
			assert.Equal(t, "CC", arg.DocumentKind)
			assert.Equal(t, "ACTIVE", arg.State)
			return db.Resident{ID: arg.ID, OrganizationID: arg.OrganizationID}, nil
		})

	cleared := ""
	_, err := f.svc.UpdateResident(f.ctx, residentID.String(), PersonInput{
		LastName: "Diaz Mora",
		Email:    &cleared,
	})
	require.NoError(t, err)
}

func TestListResidentsRejectsBadStateFilter(t *testing.T) {
	f := newResidentFixture(t)

	_, _, err := f.svc.ListResidents(f.ctx, ListPersonsInput{State: "RETIRED"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListResidentsReturnsTotal(t *testing.T) {
	f := newResidentFixture(t)

	f.store.EXPECT().
		ListResidents(gomock.Any(), db.ListResidentsParams{
			OrganizationID: pgUUID(f.orgID),
			State:          pgText("ACTIVE"),
			Limit:          50,
			Offset:         0,
		}).
		Return([]db.Resident{{FirstName: "Ana"}, {FirstName: "Leo"}}, nil)
	f.store.EXPECT().
		CountResidents(gomock.Any(), db.CountResidentsParams{OrganizationID: pgUUID(f.orgID), State: pgText("ACTIVE")}).
		Return(int64(41), nil)

	residents, total, err := f.svc.ListResidents(f.ctx, ListPersonsInput{State: "ACTIVE"})
	require.NoError(t, err)
	assert.Len(t, residents, 2)
	assert.EqualValues(t, 41, total)
}
