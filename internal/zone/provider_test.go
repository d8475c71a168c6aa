package zone

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	mockdb "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
)

func pgID(u uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: u, Valid: true}
}

func TestZoneForOrgCachesValidZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetOrganization(gomock.Any(), pgID(orgID)).Return(db.Organization{
		ID:         pgID(orgID),
		TimezoneID: "America/Bogota",
	}, nil).Times(1)

	p := NewProvider(q, zaptest.NewLogger(t))

	loc := p.ZoneForOrg(context.Background(), orgID)
	require.NotNil(t, loc)
	assert.Equal(t, "America/Bogota", loc.String())

	// Second resolution must be served from the cache (Times(1) above).
	assert.Equal(t, loc, p.ZoneForOrg(context.Background(), orgID))
}

func TestZoneForOrgInvalidZoneFallsBackToUTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetOrganization(gomock.Any(), pgID(orgID)).Return(db.Organization{
		ID:         pgID(orgID),
		TimezoneID: "Mars/Olympus_Mons",
	}, nil).Times(1)

	p := NewProvider(q, zaptest.NewLogger(t))

	assert.Equal(t, "UTC", p.ZoneForOrg(context.Background(), orgID).String())
	// The deterministic fallback is cached too.
	assert.Equal(t, "UTC", p.ZoneForOrg(context.Background(), orgID).String())
}

func TestZoneForOrgLookupFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetOrganization(gomock.Any(), pgID(orgID)).
		Return(db.Organization{}, errors.New("connection refused")).Times(2)

	p := NewProvider(q, zaptest.NewLogger(t))

	assert.Equal(t, "UTC", p.ZoneForOrg(context.Background(), orgID).String())
	// Failure was not cached, so the lookup runs again.
	assert.Equal(t, "UTC", p.ZoneForOrg(context.Background(), orgID).String())
}

func TestZoneForAreaOverrideWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	areaID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetArea(gomock.Any(), db.GetAreaParams{
		ID:             pgID(areaID),
		OrganizationID: pgID(orgID),
	}).Return(db.Area{
		ID:             pgID(areaID),
		OrganizationID: pgID(orgID),
		TimezoneID:     pgtype.Text{String: "Europe/Madrid", Valid: true},
	}, nil).Times(1)

	p := NewProvider(q, zaptest.NewLogger(t))

	loc := p.ZoneForArea(context.Background(), orgID, areaID)
	assert.Equal(t, "Europe/Madrid", loc.String())
}

func TestZoneForAreaInheritsOrgZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	areaID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)
	q.EXPECT().GetArea(gomock.Any(), db.GetAreaParams{
		ID:             pgID(areaID),
		OrganizationID: pgID(orgID),
	}).Return(db.Area{
		ID:             pgID(areaID),
		OrganizationID: pgID(orgID),
	}, nil)
	q.EXPECT().GetOrganization(gomock.Any(), pgID(orgID)).Return(db.Organization{
		ID:         pgID(orgID),
		TimezoneID: "America/Bogota",
	}, nil)

	p := NewProvider(q, zaptest.NewLogger(t))

	loc := p.ZoneForArea(context.Background(), orgID, areaID)
	assert.Equal(t, "America/Bogota", loc.String())
}

func TestInvalidateOrgDropsDependentAreas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	areaID := uuid.New()
	q := mockdb.NewMockQuerier(ctrl)

	// First pass populates both caches, second pass reloads both.
	q.EXPECT().GetArea(gomock.Any(), gomock.Any()).Return(db.Area{
		ID:             pgID(areaID),
		OrganizationID: pgID(orgID),
	}, nil).Times(2)
	q.EXPECT().GetOrganization(gomock.Any(), pgID(orgID)).Return(db.Organization{
		ID:         pgID(orgID),
		TimezoneID: "Asia/Tokyo",
	}, nil).Times(2)

	p := NewProvider(q, zaptest.NewLogger(t))

	assert.Equal(t, "Asia/Tokyo", p.ZoneForArea(context.Background(), orgID, areaID).String())

	p.InvalidateOrg(orgID)

	assert.Equal(t, "Asia/Tokyo", p.ZoneForArea(context.Background(), orgID, areaID).String())
}
