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

type deviceFixture struct {
	store  *mock.MockStore
	svc    DeviceService
	ctx    context.Context
	orgID  uuid.UUID
	areaID uuid.UUID
}

func newDeviceFixture(t *testing.T) *deviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)

	f := &deviceFixture{
		store:  store,
		orgID:  uuid.New(),
		areaID: uuid.New(),
	}
	f.svc = NewDeviceService(store, zaptest.NewLogger(t))
	f.ctx = middleware.WithOrgID(context.Background(), f.orgID.String())
	return f
}

func TestCreateDeviceDefaultsToActive(t *testing.T) {
	f := newDeviceFixture(t)

	f.store.EXPECT().
		GetArea(gomock.Any(), db.GetAreaParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(f.areaID)}).
		Return(db.Area{ID: pgUUID(f.areaID), OrganizationID: pgUUID(f.orgID)}, nil)

	var inserted db.InsertDeviceParams
	f.store.EXPECT().
		InsertDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertDeviceParams) (db.Device, error) {
			inserted = arg
			return db.Device{ID: arg.ID, OrganizationID: arg.OrganizationID, AreaID: arg.AreaID, Name: arg.Name, Active: arg.Active}, nil
		})

	device, err := f.svc.CreateDevice(f.ctx, CreateDeviceInput{
		AreaID: f.areaID.String(),
		Name:   "north gate",
	})
	require.NoError(t, err)
	assert.True(t, inserted.Active)
	assert.True(t, device.Active)
}

func TestCreateDeviceUnknownArea(t *testing.T) {
	f := newDeviceFixture(t)

	f.store.EXPECT().
		GetArea(gomock.Any(), gomock.Any()).
		Return(db.Area{}, pgx.ErrNoRows)

	_, err := f.svc.CreateDevice(f.ctx, CreateDeviceInput{
		AreaID: f.areaID.String(),
		Name:   "north gate",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDeviceDuplicateExternalID(t *testing.T) {
	f := newDeviceFixture(t)

	f.store.EXPECT().
		GetArea(gomock.Any(), gomock.Any()).
		Return(db.Area{ID: pgUUID(f.areaID), OrganizationID: pgUUID(f.orgID)}, nil)
	f.store.EXPECT().
		InsertDevice(gomock.Any(), gomock.Any()).
		Return(db.Device{}, uniqueViolation())

	_, err := f.svc.CreateDevice(f.ctx, CreateDeviceInput{
		AreaID:     f.areaID.String(),
		Name:       "north gate",
		ExternalID: "GATE-001",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateDeviceMergesOverCurrent(t *testing.T) {
	f := newDeviceFixture(t)
	deviceID := uuid.New()

	f.store.EXPECT().
		GetDevice(gomock.Any(), db.GetDeviceParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(deviceID)}).
		Return(db.Device{
			ID:             pgUUID(deviceID),
			OrganizationID: pgUUID(f.orgID),
			AreaID:         pgUUID(f.areaID),
			Name:           "north gate",
			Model:          pgText("ZK-400"),
			ExternalID:     pgText("GATE-001"),
			Active:         true,
		}, nil)

	f.store.EXPECT().
		UpdateDevice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateDeviceParams) (db.Device, error) {
			// Untouched fields ride along; Active flips; ExternalID clears.
			assert.Equal(t, "north gate", arg.Name)
			assert.Equal(t, pgText("ZK-400"), arg.Model)
			assert.False(t, arg.ExternalID.Valid)
			assert.False(t, arg.Active)
			return db.Device{ID: arg.ID, OrganizationID: arg.OrganizationID, AreaID: arg.AreaID, Name: arg.Name, Active: arg.Active}, nil
		})

	off := false
	cleared := ""
	_, err := f.svc.UpdateDevice(f.ctx, deviceID.String(), UpdateDeviceInput{
		Active:     &off,
		ExternalID: &cleared,
	})
	require.NoError(t, err)
}

func TestDeleteDeviceWithHistory(t *testing.T) {
	f := newDeviceFixture(t)
	deviceID := uuid.New()

	f.store.EXPECT().
		DeleteDevice(gomock.Any(), db.DeleteDeviceParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(deviceID)}).
		Return(int64(0), foreignKeyViolation())

	err := f.svc.DeleteDevice(f.ctx, deviceID.String())
	assert.ErrorIs(t, err, ErrConflict)
}
