package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/zone"
)

// AreaService manages areas within one tenant. An area may override the
// organization timezone; setting or clearing that override commits a
// PolicyChanged(AREA_ZONE_UPDATED) event so peers drop the cached zone.
type AreaService interface {
	CreateArea(ctx context.Context, in CreateAreaInput) (db.Area, error)
	GetArea(ctx context.Context, areaID string) (db.Area, error)
	ListAreas(ctx context.Context, page PageInput) ([]db.Area, int64, error)
	UpdateArea(ctx context.Context, areaID string, in UpdateAreaInput) (db.Area, error)
	DeleteArea(ctx context.Context, areaID string) error
}

type CreateAreaInput struct {
	Name       string
	ImagePath  string
	TimezoneID string
}

// UpdateAreaInput uses pointers for the nullable columns: nil keeps the
// current value, an empty string clears it. Clearing TimezoneID reverts
// the area to the organization timezone.
type UpdateAreaInput struct {
	Name       string
	ImagePath  *string
	TimezoneID *string
}

type areaService struct {
	store  db.Store
	events *outbox.Writer
	zones  *zone.Provider
	clock  clock.Clock
	log    *zap.Logger
}

func NewAreaService(store db.Store, events *outbox.Writer, zones *zone.Provider, clk clock.Clock, logger *zap.Logger) AreaService {
	return &areaService{store: store, events: events, zones: zones, clock: clk, log: logger}
}

const maxAreaNameLen = 60

func (s *areaService) CreateArea(ctx context.Context, in CreateAreaInput) (db.Area, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Area{}, err
	}
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Reason: "is required"})
	} else if len(in.Name) > maxAreaNameLen {
		errs = append(errs, ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", maxAreaNameLen)})
	}
	if in.TimezoneID != "" && !validTimezone(in.TimezoneID) {
		errs = append(errs, ValidationError{Field: "timezone_id", Reason: "must be a valid IANA timezone"})
	}
	if len(errs) > 0 {
		return db.Area{}, errs
	}

	area, err := s.store.InsertArea(ctx, db.InsertAreaParams{
		ID:             newUUID(),
		OrganizationID: pgUUID(orgID),
		Name:           in.Name,
		ImagePath:      pgText(in.ImagePath),
		TimezoneID:     pgText(in.TimezoneID),
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Area{}, fmt.Errorf("%w: area name already in use", ErrConflict)
		}
		return db.Area{}, fmt.Errorf("insert area: %w", err)
	}
	return area, nil
}

func (s *areaService) GetArea(ctx context.Context, areaID string) (db.Area, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Area{}, err
	}
	id, err := parseUUID("area_id", areaID)
	if err != nil {
		return db.Area{}, err
	}
	area, err := s.store.GetArea(ctx, db.GetAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Area{}, fmt.Errorf("%w: area %s", ErrNotFound, areaID)
		}
		return db.Area{}, fmt.Errorf("get area: %w", err)
	}
	return area, nil
}

func (s *areaService) ListAreas(ctx context.Context, page PageInput) ([]db.Area, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}
	page = page.normalized()
	areas, err := s.store.ListAreas(ctx, db.ListAreasParams{
		OrganizationID: pgUUID(orgID),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list areas: %w", err)
	}
	total, err := s.store.CountAreas(ctx, pgUUID(orgID))
	if err != nil {
		return nil, 0, fmt.Errorf("count areas: %w", err)
	}
	return areas, total, nil
}

func (s *areaService) UpdateArea(ctx context.Context, areaID string, in UpdateAreaInput) (db.Area, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Area{}, err
	}
	id, err := parseUUID("area_id", areaID)
	if err != nil {
		return db.Area{}, err
	}
	current, err := s.store.GetArea(ctx, db.GetAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Area{}, fmt.Errorf("%w: area %s", ErrNotFound, areaID)
		}
		return db.Area{}, fmt.Errorf("get area: %w", err)
	}

	name := current.Name
	if in.Name != "" {
		name = in.Name
	}
	imagePath := current.ImagePath
	if in.ImagePath != nil {
		imagePath = pgText(*in.ImagePath)
	}
	tz := current.TimezoneID
	if in.TimezoneID != nil {
		tz = pgText(*in.TimezoneID)
	}

	var errs ValidationErrors
	if len(name) > maxAreaNameLen {
		errs = append(errs, ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", maxAreaNameLen)})
	}
	if tz.Valid && !validTimezone(tz.String) {
		errs = append(errs, ValidationError{Field: "timezone_id", Reason: "must be a valid IANA timezone"})
	}
	if len(errs) > 0 {
		return db.Area{}, errs
	}

	zoneChanged := tz != current.TimezoneID

	var area db.Area
	err = s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		area, err = q.UpdateArea(ctx, db.UpdateAreaParams{
			OrganizationID: pgUUID(orgID),
			ID:             pgUUID(id),
			Name:           name,
			ImagePath:      imagePath,
			TimezoneID:     tz,
		})
		if err != nil {
			return err
		}
		if !zoneChanged {
			return nil
		}
		aid := id
		return s.events.Publish(ctx, q, domain.PolicyChanged{
			ID:         uuid.New(),
			OrgID:      orgID,
			AreaID:     &aid,
			ChangeType: domain.ChangeAreaZoneUpdated,
			OccurredAt: s.clock.Now(),
		})
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Area{}, fmt.Errorf("%w: area name already in use", ErrConflict)
		}
		return db.Area{}, fmt.Errorf("update area: %w", err)
	}

	if zoneChanged {
		s.zones.InvalidateArea(orgID, id)
		s.log.Info("area timezone updated",
			zap.String("org_id", orgID.String()),
			zap.String("area_id", areaID),
			zap.String("timezone", tz.String))
	}
	return area, nil
}

// DeleteArea removes the area outright. Devices and rules reference
// areas with RESTRICT, so a populated area surfaces as a conflict.
func (s *areaService) DeleteArea(ctx context.Context, areaID string) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}
	id, err := parseUUID("area_id", areaID)
	if err != nil {
		return err
	}
	rows, err := s.store.DeleteArea(ctx, db.DeleteAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: area still has devices or rules", ErrConflict)
		}
		return fmt.Errorf("delete area: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: area %s", ErrNotFound, areaID)
	}
	s.zones.InvalidateArea(orgID, id)
	return nil
}
