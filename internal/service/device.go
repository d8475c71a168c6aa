package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// DeviceService manages the physical access points. Devices always
// belong to exactly one area of the same tenant; intake derives the
// attempt's area from the device row.
type DeviceService interface {
	CreateDevice(ctx context.Context, in CreateDeviceInput) (db.Device, error)
	GetDevice(ctx context.Context, deviceID string) (db.Device, error)
	ListDevices(ctx context.Context, in ListDevicesInput) ([]db.Device, int64, error)
	UpdateDevice(ctx context.Context, deviceID string, in UpdateDeviceInput) (db.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
}

type CreateDeviceInput struct {
	AreaID     string
	Name       string
	Model      string
	ExternalID string
	Active     *bool
}

// UpdateDeviceInput merges over the current row: empty strings and nil
// pointers keep current values, pointer-to-empty clears nullable fields.
type UpdateDeviceInput struct {
	AreaID     string
	Name       string
	Model      *string
	ExternalID *string
	Active     *bool
}

type ListDevicesInput struct {
	AreaID string
	Page   PageInput
}

type deviceService struct {
	store db.Store
	log   *zap.Logger
}

func NewDeviceService(store db.Store, logger *zap.Logger) DeviceService {
	return &deviceService{store: store, log: logger}
}

func (s *deviceService) CreateDevice(ctx context.Context, in CreateDeviceInput) (db.Device, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Device{}, err
	}
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Reason: "is required"})
	}
	areaID, aerr := uuid.Parse(in.AreaID)
	if in.AreaID == "" {
		errs = append(errs, ValidationError{Field: "area_id", Reason: "is required"})
	} else if aerr != nil {
		errs = append(errs, ValidationError{Field: "area_id", Reason: "must be a UUID"})
	}
	if len(errs) > 0 {
		return db.Device{}, errs
	}
	if _, err := s.store.GetArea(ctx, db.GetAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(areaID)}); err != nil {
		if isNoRows(err) {
			return db.Device{}, fmt.Errorf("%w: area %s", ErrNotFound, in.AreaID)
		}
		return db.Device{}, fmt.Errorf("get area: %w", err)
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	device, err := s.store.InsertDevice(ctx, db.InsertDeviceParams{
		ID:             newUUID(),
		OrganizationID: pgUUID(orgID),
		AreaID:         pgUUID(areaID),
		Name:           in.Name,
		Model:          pgText(in.Model),
		ExternalID:     pgText(in.ExternalID),
		Active:         active,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Device{}, fmt.Errorf("%w: external id already registered", ErrConflict)
		}
		return db.Device{}, fmt.Errorf("insert device: %w", err)
	}
	return device, nil
}

func (s *deviceService) GetDevice(ctx context.Context, deviceID string) (db.Device, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Device{}, err
	}
	id, err := parseUUID("device_id", deviceID)
	if err != nil {
		return db.Device{}, err
	}
	device, err := s.store.GetDevice(ctx, db.GetDeviceParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Device{}, fmt.Errorf("%w: device %s", ErrNotFound, deviceID)
		}
		return db.Device{}, fmt.Errorf("get device: %w", err)
	}
	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, in ListDevicesInput) ([]db.Device, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}
	var areaID pgtype.UUID
	if in.AreaID != "" {
		id, err := parseUUID("area_id", in.AreaID)
		if err != nil {
			return nil, 0, err
		}
		areaID = pgUUID(id)
	}
	page := in.Page.normalized()
	devices, err := s.store.ListDevices(ctx, db.ListDevicesParams{
		OrganizationID: pgUUID(orgID),
		AreaID:         areaID,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list devices: %w", err)
	}
	total, err := s.store.CountDevices(ctx, db.CountDevicesParams{OrganizationID: pgUUID(orgID), AreaID: areaID})
	if err != nil {
		return nil, 0, fmt.Errorf("count devices: %w", err)
	}
	return devices, total, nil
}

func (s *deviceService) UpdateDevice(ctx context.Context, deviceID string, in UpdateDeviceInput) (db.Device, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Device{}, err
	}
	id, err := parseUUID("device_id", deviceID)
	if err != nil {
		return db.Device{}, err
	}
	current, err := s.store.GetDevice(ctx, db.GetDeviceParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Device{}, fmt.Errorf("%w: device %s", ErrNotFound, deviceID)
		}
		return db.Device{}, fmt.Errorf("get device: %w", err)
	}

	areaID := current.AreaID
	if in.AreaID != "" {
		parsed, err := parseUUID("area_id", in.AreaID)
		if err != nil {
			return db.Device{}, err
		}
		if _, err := s.store.GetArea(ctx, db.GetAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(parsed)}); err != nil {
			if isNoRows(err) {
				return db.Device{}, fmt.Errorf("%w: area %s", ErrNotFound, in.AreaID)
			}
			return db.Device{}, fmt.Errorf("get area: %w", err)
		}
		areaID = pgUUID(parsed)
	}
	name := current.Name
	if in.Name != "" {
		name = in.Name
	}
	model := current.Model
	if in.Model != nil {
		model = pgText(*in.Model)
	}
	externalID := current.ExternalID
	if in.ExternalID != nil {
		externalID = pgText(*in.ExternalID)
	}
	active := current.Active
	if in.Active != nil {
		active = *in.Active
	}

	device, err := s.store.UpdateDevice(ctx, db.UpdateDeviceParams{
		OrganizationID: pgUUID(orgID),
		ID:             pgUUID(id),
		AreaID:         areaID,
		Name:           name,
		Model:          model,
		ExternalID:     externalID,
		Active:         active,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Device{}, fmt.Errorf("%w: external id already registered", ErrConflict)
		}
		return db.Device{}, fmt.Errorf("update device: %w", err)
	}
	return device, nil
}

// DeleteDevice removes the device row. Attempts and commands keep their
// device reference with RESTRICT, so devices with history stay.
func (s *deviceService) DeleteDevice(ctx context.Context, deviceID string) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}
	id, err := parseUUID("device_id", deviceID)
	if err != nil {
		return err
	}
	rows, err := s.store.DeleteDevice(ctx, db.DeleteDeviceParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: device has recorded attempts", ErrConflict)
		}
		return fmt.Errorf("delete device: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: device %s", ErrNotFound, deviceID)
	}
	return nil
}
