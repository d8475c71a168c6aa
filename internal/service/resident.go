package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// ResidentService manages the people who live behind the access points.
// A resident is identified within the tenant by the document pair
// (kind, number); duplicates are rejected with a conflict.
type ResidentService interface {
	CreateResident(ctx context.Context, in PersonInput) (db.Resident, error)
	GetResident(ctx context.Context, residentID string) (db.Resident, error)
	ListResidents(ctx context.Context, in ListPersonsInput) ([]db.Resident, int64, error)
	UpdateResident(ctx context.Context, residentID string, in PersonInput) (db.Resident, error)
	DeleteResident(ctx context.Context, residentID string) error
}

// PersonInput is shared by residents and preauthorized visitors: both
// carry the same document identity and contact fields. On update, empty
// strings and nil pointers keep the stored values.
type PersonInput struct {
	DocumentKind   string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	State          string
}

type ListPersonsInput struct {
	State string
	Page  PageInput
}

type residentService struct {
	store db.Store
	log   *zap.Logger
}

func NewResidentService(store db.Store, logger *zap.Logger) ResidentService {
	return &residentService{store: store, log: logger}
}

func (s *residentService) CreateResident(ctx context.Context, in PersonInput) (db.Resident, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Resident{}, err
	}
	if errs := validatePersonInput(in, true); len(errs) > 0 {
		return db.Resident{}, errs
	}
	resident, err := s.store.InsertResident(ctx, db.InsertResidentParams{
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
			return db.Resident{}, fmt.Errorf("%w: document already registered", ErrConflict)
		}
		return db.Resident{}, fmt.Errorf("insert resident: %w", err)
	}
	return resident, nil
}

func (s *residentService) GetResident(ctx context.Context, residentID string) (db.Resident, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Resident{}, err
	}
	id, err := parseUUID("resident_id", residentID)
	if err != nil {
		return db.Resident{}, err
	}
	resident, err := s.store.GetResident(ctx, db.GetResidentParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Resident{}, fmt.Errorf("%w: resident %s", ErrNotFound, residentID)
		}
		return db.Resident{}, fmt.Errorf("get resident: %w", err)
	}
	return resident, nil
}

func (s *residentService) ListResidents(ctx context.Context, in ListPersonsInput) ([]db.Resident, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}
	state, err := stateFilter(in.State)
	if err != nil {
		return nil, 0, err
	}
	page := in.Page.normalized()
	residents, err := s.store.ListResidents(ctx, db.ListResidentsParams{
		OrganizationID: pgUUID(orgID),
		State:          state,
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list residents: %w", err)
	}
	total, err := s.store.CountResidents(ctx, db.CountResidentsParams{OrganizationID: pgUUID(orgID), State: state})
	if err != nil {
		return nil, 0, fmt.Errorf("count residents: %w", err)
	}
	return residents, total, nil
}

func (s *residentService) UpdateResident(ctx context.Context, residentID string, in PersonInput) (db.Resident, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.Resident{}, err
	}
	id, err := parseUUID("resident_id", residentID)
	if err != nil {
		return db.Resident{}, err
	}
	current, err := s.store.GetResident(ctx, db.GetResidentParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.Resident{}, fmt.Errorf("%w: resident %s", ErrNotFound, residentID)
		}
		return db.Resident{}, fmt.Errorf("get resident: %w", err)
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
		return db.Resident{}, errs
	}

	resident, err := s.store.UpdateResident(ctx, db.UpdateResidentParams{
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
			return db.Resident{}, fmt.Errorf("%w: document already registered", ErrConflict)
		}
		return db.Resident{}, fmt.Errorf("update resident: %w", err)
	}
	return resident, nil
}

func (s *residentService) DeleteResident(ctx context.Context, residentID string) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}
	id, err := parseUUID("resident_id", residentID)
	if err != nil {
		return err
	}
	rows, err := s.store.SoftDeleteResident(ctx, db.SoftDeleteResidentParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		return fmt.Errorf("delete resident: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: resident %s", ErrNotFound, residentID)
	}
	return nil
}

// personRow carries the stored person columns into the merge.
type personRow struct {
	DocumentKind   string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          pgtype.Text
	Phone          pgtype.Text
	State          string
}

type mergedPerson struct {
	input PersonInput
	email pgtype.Text
	phone pgtype.Text
}

func mergePersonInput(in PersonInput, current personRow) mergedPerson {
	m := mergedPerson{input: in, email: current.Email, phone: current.Phone}
	if m.input.DocumentKind == "" {
		m.input.DocumentKind = current.DocumentKind
	}
	if m.input.DocumentNumber == "" {
		m.input.DocumentNumber = current.DocumentNumber
	}
	if m.input.FirstName == "" {
		m.input.FirstName = current.FirstName
	}
	if m.input.LastName == "" {
		m.input.LastName = current.LastName
	}
	if in.Email != nil {
		m.email = pgText(*in.Email)
	}
	if in.Phone != nil {
		m.phone = pgText(*in.Phone)
	}
	if m.input.State == "" {
		m.input.State = current.State
	}
	return m
}

func validatePersonInput(in PersonInput, create bool) ValidationErrors {
	var errs ValidationErrors
	if in.DocumentKind == "" {
		errs = append(errs, ValidationError{Field: "document_kind", Reason: "is required"})
	}
	if in.DocumentNumber == "" {
		errs = append(errs, ValidationError{Field: "document_number", Reason: "is required"})
	}
	if in.FirstName == "" {
		errs = append(errs, ValidationError{Field: "first_name", Reason: "is required"})
	}
	if in.LastName == "" {
		errs = append(errs, ValidationError{Field: "last_name", Reason: "is required"})
	}
	if !create && in.State != "" {
		if st := domain.EntityState(in.State); !st.Valid() {
			errs = append(errs, ValidationError{Field: "state", Reason: "must be one of ACTIVE, INACTIVE"})
		}
	}
	return errs
}

func optText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgText(*s)
}

// stateFilter parses the optional ?state= list filter.
func stateFilter(state string) (pgtype.Text, error) {
	if state == "" {
		return pgtype.Text{}, nil
	}
	if st := domain.EntityState(state); !st.Valid() {
		return pgtype.Text{}, ValidationErrors{{Field: "state", Reason: "must be one of ACTIVE, INACTIVE"}}
	}
	return pgText(state), nil
}
