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

// OrganizationService manages the tenancy roots. Unlike every other
// service it does not read the tenant from the request context: the
// organization surface is the control plane that creates tenants.
//
// Timezone updates commit a PolicyChanged(ORG_ZONE_UPDATED) event in the
// same transaction so every node drops its cached zone for the tenant.
type OrganizationService interface {
	CreateOrganization(ctx context.Context, in OrganizationInput) (db.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (db.Organization, error)
	ListOrganizations(ctx context.Context, page PageInput) ([]db.Organization, int64, error)
	UpdateOrganization(ctx context.Context, orgID string, in OrganizationInput) (db.Organization, error)
	DeleteOrganization(ctx context.Context, orgID string) error
}

// OrganizationInput carries create and update payloads. On update,
// empty fields keep the current value.
type OrganizationInput struct {
	Name            string
	TimezoneID      string
	DefaultDecision string
	State           string
}

type organizationService struct {
	store  db.Store
	events *outbox.Writer
	zones  *zone.Provider
	clock  clock.Clock
	// defaultTZ is stamped on new organizations created without an
	// explicit timezone.
	defaultTZ string
	log       *zap.Logger
}

func NewOrganizationService(store db.Store, events *outbox.Writer, zones *zone.Provider, clk clock.Clock, defaultTZ string, logger *zap.Logger) OrganizationService {
	if !validTimezone(defaultTZ) {
		defaultTZ = "UTC"
	}
	return &organizationService{store: store, events: events, zones: zones, clock: clk, defaultTZ: defaultTZ, log: logger}
}

const maxOrgNameLen = 80

func (s *organizationService) CreateOrganization(ctx context.Context, in OrganizationInput) (db.Organization, error) {
	if in.DefaultDecision == "" {
		in.DefaultDecision = string(domain.DecisionAllow)
	}
	if in.TimezoneID == "" {
		in.TimezoneID = s.defaultTZ
	}
	if errs := validateOrganizationInput(in); len(errs) > 0 {
		return db.Organization{}, errs
	}

	org, err := s.store.InsertOrganization(ctx, db.InsertOrganizationParams{
		ID:              newUUID(),
		Name:            in.Name,
		State:           string(domain.StateActive),
		TimezoneID:      in.TimezoneID,
		DefaultDecision: in.DefaultDecision,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Organization{}, fmt.Errorf("%w: organization name already in use", ErrConflict)
		}
		return db.Organization{}, fmt.Errorf("insert organization: %w", err)
	}
	s.log.Info("organization created",
		zap.String("org_id", uuid.UUID(org.ID.Bytes).String()),
		zap.String("timezone", org.TimezoneID))
	return org, nil
}

func (s *organizationService) GetOrganization(ctx context.Context, orgID string) (db.Organization, error) {
	id, err := parseUUID("org_id", orgID)
	if err != nil {
		return db.Organization{}, err
	}
	org, err := s.store.GetOrganization(ctx, pgUUID(id))
	if err != nil {
		if isNoRows(err) {
			return db.Organization{}, fmt.Errorf("%w: organization %s", ErrNotFound, orgID)
		}
		return db.Organization{}, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ListOrganizations(ctx context.Context, page PageInput) ([]db.Organization, int64, error) {
	page = page.normalized()
	orgs, err := s.store.ListOrganizations(ctx, db.ListOrganizationsParams{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}
	total, err := s.store.CountOrganizations(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count organizations: %w", err)
	}
	return orgs, total, nil
}

func (s *organizationService) UpdateOrganization(ctx context.Context, orgID string, in OrganizationInput) (db.Organization, error) {
	id, err := parseUUID("org_id", orgID)
	if err != nil {
		return db.Organization{}, err
	}
	current, err := s.store.GetOrganization(ctx, pgUUID(id))
	if err != nil {
		if isNoRows(err) {
			return db.Organization{}, fmt.Errorf("%w: organization %s", ErrNotFound, orgID)
		}
		return db.Organization{}, fmt.Errorf("get organization: %w", err)
	}

	merged := OrganizationInput{
		Name:            current.Name,
		TimezoneID:      current.TimezoneID,
		DefaultDecision: current.DefaultDecision,
		State:           current.State,
	}
	if in.Name != "" {
		merged.Name = in.Name
	}
	if in.TimezoneID != "" {
		merged.TimezoneID = in.TimezoneID
	}
	if in.DefaultDecision != "" {
		merged.DefaultDecision = in.DefaultDecision
	}
	if in.State != "" {
		merged.State = in.State
	}
	if errs := validateOrganizationInput(merged); len(errs) > 0 {
		return db.Organization{}, errs
	}

	zoneChanged := merged.TimezoneID != current.TimezoneID

	var org db.Organization
	err = s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		org, err = q.UpdateOrganization(ctx, db.UpdateOrganizationParams{
			ID:              pgUUID(id),
			Name:            merged.Name,
			State:           merged.State,
			TimezoneID:      merged.TimezoneID,
			DefaultDecision: merged.DefaultDecision,
		})
		if err != nil {
			return err
		}
		if !zoneChanged {
			return nil
		}
		return s.events.Publish(ctx, q, domain.PolicyChanged{
			ID:         uuid.New(),
			OrgID:      id,
			ChangeType: domain.ChangeOrgZoneUpdated,
			OccurredAt: s.clock.Now(),
		})
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.Organization{}, fmt.Errorf("%w: organization name already in use", ErrConflict)
		}
		return db.Organization{}, fmt.Errorf("update organization: %w", err)
	}

	if zoneChanged {
		s.zones.InvalidateOrg(id)
		s.log.Info("organization timezone updated",
			zap.String("org_id", orgID),
			zap.String("timezone", merged.TimezoneID))
	}
	return org, nil
}

func (s *organizationService) DeleteOrganization(ctx context.Context, orgID string) error {
	id, err := parseUUID("org_id", orgID)
	if err != nil {
		return err
	}
	rows, err := s.store.SoftDeleteOrganization(ctx, pgUUID(id))
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: organization %s", ErrNotFound, orgID)
	}
	s.log.Info("organization deactivated", zap.String("org_id", orgID))
	return nil
}

func validateOrganizationInput(in OrganizationInput) ValidationErrors {
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Reason: "is required"})
	} else if len(in.Name) > maxOrgNameLen {
		errs = append(errs, ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", maxOrgNameLen)})
	}
	if !validTimezone(in.TimezoneID) {
		errs = append(errs, ValidationError{Field: "timezone_id", Reason: "must be a valid IANA timezone"})
	}
	if d := domain.DecisionResult(in.DefaultDecision); d != domain.DecisionAllow && d != domain.DecisionDeny {
		errs = append(errs, ValidationError{Field: "default_decision", Reason: "must be one of ALLOW, DENY"})
	}
	if in.State != "" {
		if st := domain.EntityState(in.State); !st.Valid() {
			errs = append(errs, ValidationError{Field: "state", Reason: "must be one of ACTIVE, INACTIVE"})
		}
	}
	return errs
}
