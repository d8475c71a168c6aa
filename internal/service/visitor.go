package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// VisitorService manages preauthorized visitors. The shape mirrors
// ResidentService over its own table; the engine only ever sees the
// subject type, never the person rows.
type VisitorService interface {
	CreateVisitor(ctx context.Context, in PersonInput) (db.PreauthorizedVisitor, error)
	GetVisitor(ctx context.Context, visitorID string) (db.PreauthorizedVisitor, error)
	ListVisitors(ctx context.Context, in ListPersonsInput) ([]db.PreauthorizedVisitor, int64, error)
	UpdateVisitor(ctx context.Context, visitorID string, in PersonInput) (db.PreauthorizedVisitor, error)
	DeleteVisitor(ctx context.Context, visitorID string) error
}

type visitorService struct {
	store db.Store
	log   *zap.Logger
}

func NewVisitorService(store db.Store, logger *zap.Logger) VisitorService {
	return &visitorService{store: store, log: logger}
}

func (s *visitorService) CreateVisitor(ctx context.Context, in PersonInput) (db.PreauthorizedVisitor, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.PreauthorizedVisitor{}, err
	}
	if errs := validatePersonInput(in, true); len(errs) > 0 {
		return db.PreauthorizedVisitor{}, errs
	}
	visitor, err := s.store.InsertVisitor(ctx, db.InsertVisitorParams{
		ID:             newUUID(),
		OrganizationID: pgUUID(orgID),
		DocumentKind:   in.DocumentKind,
		DocumentNumber: in.DocumentNumber,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          optText(in.Email),
		Phone:          optText(in.Phone),
		State:          string(domain.StateActive),
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.PreauthorizedVisitor{}, fmt.Errorf("%w: document already registered", ErrConflict)
		}
		return db.PreauthorizedVisitor{}, fmt.Errorf("insert visitor: %w", err)
	}
	return visitor, nil
}

func (s *visitorService) GetVisitor(ctx context.Context, visitorID string) (db.PreauthorizedVisitor, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.PreauthorizedVisitor{}, err
	}
	id, err := parseUUID("visitor_id", visitorID)
	if err != nil {
		return db.PreauthorizedVisitor{}, err
	}
	visitor, err := s.store.GetVisitor(ctx, db.GetVisitorParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.PreauthorizedVisitor{}, fmt.Errorf("%w: visitor %s", ErrNotFound, visitorID)
		}
		return db.PreauthorizedVisitor{}, fmt.Errorf("get visitor: %w", err)
	}
	return visitor, nil
}

func (s *visitorService) ListVisitors(ctx context.Context, in ListPersonsInput) ([]db.PreauthorizedVisitor, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}
	state, err := stateFilter(in.State)
	if err != nil {
		return nil, 0, err
	}
	page := in.Page.normalized()
	visitors, err := s.store.ListVisitors(ctx, db.ListVisitorsParams{
		OrganizationID: pgUUID(orgID),
		State:          state,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list visitors: %w", err)
	}
	total, err := s.store.CountVisitors(ctx, db.CountVisitorsParams{OrganizationID: pgUUID(orgID), State: state})
	if err != nil {
		return nil, 0, fmt.Errorf("count visitors: %w", err)
	}
	return visitors, total, nil
}

func (s *visitorService) UpdateVisitor(ctx context.Context, visitorID string, in PersonInput) (db.PreauthorizedVisitor, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.PreauthorizedVisitor{}, err
	}
	id, err := parseUUID("visitor_id", visitorID)
	if err != nil {
		return db.PreauthorizedVisitor{}, err
	}
	current, err := s.store.GetVisitor(ctx, db.GetVisitorParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.PreauthorizedVisitor{}, fmt.Errorf("%w: visitor %s", ErrNotFound, visitorID)
		}
		return db.PreauthorizedVisitor{}, fmt.Errorf("get visitor: %w", err)
	}

	merged := mergePersonInput(in, personRow{
		DocumentKind:   current.DocumentKind,
		DocumentNumber: current.DocumentNumber,
		FirstName:      current.FirstName,
		LastName:       current.LastName,
		Email:          current.Email,
		Phone:          current.Phone,
		State:          current.State,
	})
	if errs := validatePersonInput(merged.input, false); len(errs) > 0 {
		return db.PreauthorizedVisitor{}, errs
	}

	visitor, err := s.store.UpdateVisitor(ctx, db.UpdateVisitorParams{
		OrganizationID: pgUUID(orgID),
		ID:             pgUUID(id),
		DocumentKind:   merged.input.DocumentKind,
		DocumentNumber: merged.input.DocumentNumber,
		FirstName:      merged.input.FirstName,
		LastName:       merged.input.LastName,
		Email:          merged.email,
		Phone:          merged.phone,
		State:          merged.input.State,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			return db.PreauthorizedVisitor{}, fmt.Errorf("%w: document already registered", ErrConflict)
		}
		return db.PreauthorizedVisitor{}, fmt.Errorf("update visitor: %w", err)
	}
	return visitor, nil
}

func (s *visitorService) DeleteVisitor(ctx context.Context, visitorID string) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}
	id, err := parseUUID("visitor_id", visitorID)
	if err != nil {
		return err
	}
	rows, err := s.store.SoftDeleteVisitor(ctx, db.SoftDeleteVisitorParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		return fmt.Errorf("delete visitor: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: visitor %s", ErrNotFound, visitorID)
	}
	return nil
}
