package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
)

// RuleService owns rule CRUD and the policy-change fanout. Every
// successful mutation commits a PolicyChanged event with the rule, and
// invalidates this node's candidate snapshots; peers invalidate theirs
// when the event comes back around on the bus. Rejections are recorded
// best-effort as ChangeRejected events and never block the error reply.
type RuleService interface {
	CreateRule(ctx context.Context, in RuleInput) (db.AccessRule, error)
	GetRule(ctx context.Context, ruleID string) (db.AccessRule, error)
	ListRules(ctx context.Context, in ListRulesInput) ([]db.AccessRule, int64, error)
	FindCandidateRules(ctx context.Context, in CandidateQuery) ([]db.AccessRule, error)
	UpdateRule(ctx context.Context, ruleID string, in RuleInput) (db.AccessRule, error)
	ActivateRule(ctx context.Context, ruleID string) (db.AccessRule, error)
	InactivateRule(ctx context.Context, ruleID string) (db.AccessRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	InvalidateAllCaches(ctx context.Context) error
}

// RuleInput is the CRUD payload. Pointer/empty fields are wildcards.
type RuleInput struct {
	AreaID        string
	SubjectType   string
	DeviceID      string
	PassDirection string
	AuthMethod    string
	Action        string
	ValidFrom     *time.Time
	ValidTo       *time.Time
	DailyFrom     string
	DailyTo       string
	Priority      int32
	Message       string
}

type ListRulesInput struct {
	AreaID        string
	DeviceID      string
	SubjectType   string
	PassDirection string
	AuthMethod    string
	Action        string
	State         string
	Page          PageInput
}

// CandidateQuery describes a hypothetical intent to probe the rule set
// with. A nil At means now.
type CandidateQuery struct {
	DeviceID      string
	SubjectType   string
	PassDirection string
	AuthMethod    string
	At            *time.Time
}

type ruleService struct {
	store  db.Store
	events *outbox.Writer
	cache  *rulecache.Cache
	clock  clock.Clock
	log    *zap.Logger
}

func NewRuleService(store db.Store, events *outbox.Writer, cache *rulecache.Cache, clk clock.Clock, logger *zap.Logger) RuleService {
	return &ruleService{store: store, events: events, cache: cache, clock: clk, log: logger}
}

// Operation names recorded on ChangeRejected events.
const (
	opCreateRule     = "CREATE_RULE"
	opUpdateRule     = "UPDATE_RULE"
	opActivateRule   = "ACTIVATE_RULE"
	opInactivateRule = "INACTIVATE_RULE"
	opDeleteRule     = "DELETE_RULE"
)

func (s *ruleService) CreateRule(ctx context.Context, in RuleInput) (db.AccessRule, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.AccessRule{}, err
	}
	norm, err := s.validateRuleInput(ctx, orgID, in)
	if err != nil {
		s.recordRejection(ctx, orgID, norm.areaID, opCreateRule, err)
		return db.AccessRule{}, err
	}

	dup, err := s.store.ExistsDuplicateRule(ctx, norm.duplicateParams(orgID, uuid.Nil))
	if err != nil {
		return db.AccessRule{}, fmt.Errorf("duplicate check: %w", err)
	}
	if dup {
		err := fmt.Errorf("%w: an equivalent active rule already exists", ErrConflict)
		s.recordRejection(ctx, orgID, norm.areaID, opCreateRule, err)
		return db.AccessRule{}, err
	}

	var rule db.AccessRule
	err = s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		rule, err = q.InsertRule(ctx, db.InsertRuleParams{
			ID:             newUUID(),
			OrganizationID: pgUUID(orgID),
			AreaID:         pgUUID(norm.areaID),
			SubjectType:    string(norm.subjectType),
			DeviceID:       norm.deviceID,
			PassDirection:  norm.passDirection,
			AuthMethod:     norm.authMethod,
			Action:         string(norm.action),
			ValidFrom:      norm.validFrom,
			ValidTo:        norm.validTo,
			DailyFrom:      norm.dailyFrom,
			DailyTo:        norm.dailyTo,
			Priority:       norm.priority,
			State:          string(domain.RuleActive),
			Message:        norm.message,
		})
		if err != nil {
			return fmt.Errorf("insert rule: %w", err)
		}
		return s.publishPolicyChanged(ctx, q, orgID, norm.areaID, uuid.UUID(rule.ID.Bytes), domain.ChangeCreated)
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			err = fmt.Errorf("%w: an equivalent active rule already exists", ErrConflict)
			s.recordRejection(ctx, orgID, norm.areaID, opCreateRule, err)
			return db.AccessRule{}, err
		}
		return db.AccessRule{}, err
	}

	s.cache.InvalidateArea(orgID, norm.areaID)
	return rule, nil
}

func (s *ruleService) GetRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.AccessRule{}, err
	}
	id, err := parseUUID("rule_id", ruleID)
	if err != nil {
		return db.AccessRule{}, err
	}
	rule, err := s.store.GetRule(ctx, db.GetRuleParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.AccessRule{}, fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
		}
		return db.AccessRule{}, fmt.Errorf("get rule: %w", err)
	}
	return rule, nil
}

func (s *ruleService) ListRules(ctx context.Context, in ListRulesInput) ([]db.AccessRule, int64, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, 0, err
	}

	var areaID, deviceID pgtype.UUID
	if in.AreaID != "" {
		id, err := parseUUID("area_id", in.AreaID)
		if err != nil {
			return nil, 0, err
		}
		areaID = pgUUID(id)
	}
	if in.DeviceID != "" {
		id, err := parseUUID("device_id", in.DeviceID)
		if err != nil {
			return nil, 0, err
		}
		deviceID = pgUUID(id)
	}

	page := in.Page.normalized()
	rules, err := s.store.ListRules(ctx, db.ListRulesParams{
		OrganizationID: pgUUID(orgID),
		AreaID:         areaID,
		DeviceID:       deviceID,
		SubjectType:    pgText(in.SubjectType),
		PassDirection:  pgText(in.PassDirection),
		AuthMethod:     pgText(in.AuthMethod),
		Action:         pgText(in.Action),
		State:          pgText(in.State),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list rules: %w", err)
	}
	total, err := s.store.CountRules(ctx, db.CountRulesParams{
		OrganizationID: pgUUID(orgID),
		AreaID:         areaID,
		DeviceID:       deviceID,
		SubjectType:    pgText(in.SubjectType),
		PassDirection:  pgText(in.PassDirection),
		AuthMethod:     pgText(in.AuthMethod),
		Action:         pgText(in.Action),
		State:          pgText(in.State),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count rules: %w", err)
	}
	return rules, total, nil
}

// FindCandidateRules lists the active rules matching a hypothetical
// intent, read straight from the store rather than this node's snapshot.
// Daily windows are not applied; those need the effective zone and are
// evaluated by the engine.
func (s *ruleService) FindCandidateRules(ctx context.Context, in CandidateQuery) ([]db.AccessRule, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return nil, err
	}

	var errs ValidationErrors
	deviceID, err := uuid.Parse(in.DeviceID)
	if in.DeviceID == "" {
		errs = append(errs, ValidationError{Field: "device_id", Reason: "is required"})
	} else if err != nil {
		errs = append(errs, ValidationError{Field: "device_id", Reason: "must be a UUID"})
	}
	st := domain.SubjectType(in.SubjectType)
	if !st.Valid() {
		errs = append(errs, ValidationError{Field: "subject_type", Reason: "must be one of RESIDENT, PREAUTHORIZED_VISITOR, GROUP_MEMBER, UNKNOWN"})
	}
	pd := domain.PassDirection(in.PassDirection)
	if !pd.Valid() {
		errs = append(errs, ValidationError{Field: "pass_direction", Reason: "must be IN or OUT"})
	}
	am := domain.AuthMethod(in.AuthMethod)
	if !am.Valid() {
		errs = append(errs, ValidationError{Field: "auth_method", Reason: "must be one of QR, RFID, PIN, FACIAL, PLATE, MANUAL"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	device, err := s.store.GetDevice(ctx, db.GetDeviceParams{OrganizationID: pgUUID(orgID), ID: pgUUID(deviceID)})
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: device %s", ErrNotFound, in.DeviceID)
		}
		return nil, fmt.Errorf("load device: %w", err)
	}

	at := s.clock.Now()
	if in.At != nil {
		at = in.At.UTC()
	}

	rules, err := s.store.FindCandidatesForIntent(ctx, db.FindCandidatesForIntentParams{
		OrganizationID: pgUUID(orgID),
		AreaID:         device.AreaID,
		SubjectType:    string(st),
		DeviceID:       pgUUID(deviceID),
		PassDirection:  string(pd),
		AuthMethod:     string(am),
		OccurredAt:     pgTime(at),
	})
	if err != nil {
		return nil, fmt.Errorf("find candidate rules: %w", err)
	}
	return rules, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, ruleID string, in RuleInput) (db.AccessRule, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.AccessRule{}, err
	}
	id, err := parseUUID("rule_id", ruleID)
	if err != nil {
		return db.AccessRule{}, err
	}

	current, err := s.store.GetRule(ctx, db.GetRuleParams{OrganizationID: pgUUID(orgID), ID: pgUUID(id)})
	if err != nil {
		if isNoRows(err) {
			return db.AccessRule{}, fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
		}
		return db.AccessRule{}, fmt.Errorf("get rule: %w", err)
	}
	areaID := uuid.UUID(current.AreaID.Bytes)

	// The area and subject type are the rule's identity; updates move
	// everything else.
	in.AreaID = areaID.String()
	in.SubjectType = current.SubjectType
	norm, err := s.validateRuleInput(ctx, orgID, in)
	if err != nil {
		s.recordRejection(ctx, orgID, areaID, opUpdateRule, err)
		return db.AccessRule{}, err
	}

	dup, err := s.store.ExistsDuplicateRule(ctx, norm.duplicateParams(orgID, id))
	if err != nil {
		return db.AccessRule{}, fmt.Errorf("duplicate check: %w", err)
	}
	if dup {
		err := fmt.Errorf("%w: an equivalent active rule already exists", ErrConflict)
		s.recordRejection(ctx, orgID, areaID, opUpdateRule, err)
		return db.AccessRule{}, err
	}

	var rule db.AccessRule
	err = s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		rule, err = q.UpdateRule(ctx, db.UpdateRuleParams{
			OrganizationID: pgUUID(orgID),
			ID:             pgUUID(id),
			DeviceID:       norm.deviceID,
			PassDirection:  norm.passDirection,
			AuthMethod:     norm.authMethod,
			Action:         string(norm.action),
			ValidFrom:      norm.validFrom,
			ValidTo:        norm.validTo,
			DailyFrom:      norm.dailyFrom,
			DailyTo:        norm.dailyTo,
			Priority:       norm.priority,
			Message:        norm.message,
		})
		if err != nil {
			if isNoRows(err) {
				return fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
			}
			return fmt.Errorf("update rule: %w", err)
		}
		return s.publishPolicyChanged(ctx, q, orgID, areaID, id, domain.ChangeUpdated)
	})
	if err != nil {
		return db.AccessRule{}, err
	}

	s.cache.InvalidateArea(orgID, areaID)
	return rule, nil
}

func (s *ruleService) ActivateRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	return s.transitionRule(ctx, ruleID, domain.RuleActive, domain.ChangeActivated, opActivateRule)
}

func (s *ruleService) InactivateRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	return s.transitionRule(ctx, ruleID, domain.RuleInactive, domain.ChangeInactivated, opInactivateRule)
}

// DeleteRule is a soft delete: the rule drops out of evaluation but
// stays queryable for audits.
func (s *ruleService) DeleteRule(ctx context.Context, ruleID string) error {
	_, err := s.transitionRule(ctx, ruleID, domain.RuleInactive, domain.ChangeSoftDeleted, opDeleteRule)
	return err
}

func (s *ruleService) transitionRule(ctx context.Context, ruleID string, state domain.RuleState, change domain.ChangeType, op string) (db.AccessRule, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return db.AccessRule{}, err
	}
	id, err := parseUUID("rule_id", ruleID)
	if err != nil {
		return db.AccessRule{}, err
	}

	var rule db.AccessRule
	err = s.store.InTx(ctx, func(q db.Querier) error {
		var err error
		rule, err = q.UpdateRuleState(ctx, db.UpdateRuleStateParams{
			OrganizationID: pgUUID(orgID),
			ID:             pgUUID(id),
			State:          string(state),
		})
		if err != nil {
			if isNoRows(err) {
				return fmt.Errorf("%w: rule %s", ErrNotFound, ruleID)
			}
			return fmt.Errorf("update rule state: %w", err)
		}
		return s.publishPolicyChanged(ctx, q, orgID, uuid.UUID(rule.AreaID.Bytes), id, change)
	})
	if err != nil {
		s.recordRejection(ctx, orgID, uuid.Nil, op, err)
		return db.AccessRule{}, err
	}

	s.cache.InvalidateArea(orgID, uuid.UUID(rule.AreaID.Bytes))
	return rule, nil
}

// InvalidateAllCaches drops this node's snapshots immediately and fans
// the request out so every peer does the same.
func (s *ruleService) InvalidateAllCaches(ctx context.Context) error {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return err
	}

	err = s.store.InTx(ctx, func(q db.Querier) error {
		return s.events.Publish(ctx, q, domain.PolicyChanged{
			ID:         uuid.New(),
			OrgID:      orgID,
			ChangeType: domain.ChangeInvalidateAllReq,
			OccurredAt: s.clock.Now(),
		})
	})
	if err != nil {
		return fmt.Errorf("publish invalidate-all: %w", err)
	}

	s.cache.InvalidateAll()
	return nil
}

func (s *ruleService) publishPolicyChanged(ctx context.Context, q db.Querier, orgID, areaID, ruleID uuid.UUID, change domain.ChangeType) error {
	area := areaID
	rule := ruleID
	return s.events.Publish(ctx, q, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      orgID,
		AreaID:     &area,
		RuleID:     &rule,
		ChangeType: change,
		OccurredAt: s.clock.Now(),
	})
}

// recordRejection writes a ChangeRejected event in its own short
// transaction. It is best-effort: failures are logged and swallowed so
// the caller's error reply is never displaced.
func (s *ruleService) recordRejection(ctx context.Context, orgID, areaID uuid.UUID, op string, cause error) {
	if orgID == uuid.Nil || areaID == uuid.Nil {
		return
	}

	reason, status := rejectionOf(cause)
	area := areaID
	err := s.store.InTx(ctx, func(q db.Querier) error {
		return s.events.Publish(ctx, q, domain.ChangeRejected{
			ID:         uuid.New(),
			OrgID:      orgID,
			AreaID:     &area,
			Operation:  op,
			ReasonCode: reason,
			HTTPStatus: status,
			Message:    cause.Error(),
			OccurredAt: s.clock.Now(),
		})
	})
	if err != nil {
		s.log.Warn("change-rejected event not recorded",
			zap.String("operation", op),
			zap.String("org_id", orgID.String()),
			zap.Error(err),
		)
	}
}

func rejectionOf(err error) (code string, status int) {
	switch {
	case errors.Is(err, ErrConflict):
		return domain.RejectDuplicateRule, http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return domain.RejectRuleNotFound, http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return domain.RejectValidation, http.StatusBadRequest
	default:
		return domain.RejectInternal, http.StatusInternalServerError
	}
}

// normalizedRule carries validated rule fields in storage shape.
type normalizedRule struct {
	areaID        uuid.UUID
	subjectType   domain.SubjectType
	deviceID      pgtype.UUID
	passDirection pgtype.Text
	authMethod    pgtype.Text
	action        domain.RuleAction
	validFrom     pgtype.Timestamptz
	validTo       pgtype.Timestamptz
	dailyFrom     pgtype.Text
	dailyTo       pgtype.Text
	priority      int32
	message       pgtype.Text
}

func (n normalizedRule) duplicateParams(orgID, excludeID uuid.UUID) db.ExistsDuplicateRuleParams {
	p := db.ExistsDuplicateRuleParams{
		OrganizationID: pgUUID(orgID),
		AreaID:         pgUUID(n.areaID),
		SubjectType:    string(n.subjectType),
		Action:         string(n.action),
		DeviceID:       n.deviceID,
		PassDirection:  n.passDirection,
		AuthMethod:     n.authMethod,
		ValidFrom:      n.validFrom,
		ValidTo:        n.validTo,
		DailyFrom:      n.dailyFrom,
		DailyTo:        n.dailyTo,
	}
	if excludeID != uuid.Nil {
		p.ExcludeID = pgUUID(excludeID)
	}
	return p
}

// validateRuleInput checks shape and referential integrity: windows are
// both-or-neither, daily times are HH:mm and unequal, and a device
// matcher must point into the rule's own area.
func (s *ruleService) validateRuleInput(ctx context.Context, orgID uuid.UUID, in RuleInput) (normalizedRule, error) {
	var errs ValidationErrors
	var norm normalizedRule

	areaID, err := uuid.Parse(in.AreaID)
	if in.AreaID == "" {
		errs = append(errs, ValidationError{Field: "area_id", Reason: "is required"})
	} else if err != nil {
		errs = append(errs, ValidationError{Field: "area_id", Reason: "must be a UUID"})
	} else {
		norm.areaID = areaID
	}

	norm.subjectType = domain.SubjectType(in.SubjectType)
	if !norm.subjectType.Valid() || norm.subjectType == domain.SubjectUnknown {
		errs = append(errs, ValidationError{Field: "subject_type", Reason: "must be one of RESIDENT, PREAUTHORIZED_VISITOR, GROUP_MEMBER"})
	}

	norm.action = domain.RuleAction(in.Action)
	if !norm.action.Valid() {
		errs = append(errs, ValidationError{Field: "action", Reason: "must be ALLOW or DENY"})
	}

	if in.PassDirection != "" {
		if !domain.PassDirection(in.PassDirection).Valid() {
			errs = append(errs, ValidationError{Field: "pass_direction", Reason: "must be IN or OUT"})
		}
		norm.passDirection = pgText(in.PassDirection)
	}
	if in.AuthMethod != "" {
		if !domain.AuthMethod(in.AuthMethod).Valid() {
			errs = append(errs, ValidationError{Field: "auth_method", Reason: "must be one of QR, RFID, PIN, FACIAL, PLATE, MANUAL"})
		}
		norm.authMethod = pgText(in.AuthMethod)
	}

	switch {
	case in.ValidFrom != nil && in.ValidTo != nil:
		if !in.ValidTo.After(*in.ValidFrom) {
			errs = append(errs, ValidationError{Field: "valid_to", Reason: "must be after valid_from"})
		}
		norm.validFrom = pgTime(in.ValidFrom.UTC())
		norm.validTo = pgTime(in.ValidTo.UTC())
	case in.ValidFrom != nil || in.ValidTo != nil:
		errs = append(errs, ValidationError{Field: "valid_from", Reason: "valid_from and valid_to must be provided together"})
	}

	switch {
	case in.DailyFrom != "" && in.DailyTo != "":
		fromOK := isWallClock(in.DailyFrom)
		toOK := isWallClock(in.DailyTo)
		if !fromOK {
			errs = append(errs, ValidationError{Field: "daily_from", Reason: "must be HH:mm"})
		}
		if !toOK {
			errs = append(errs, ValidationError{Field: "daily_to", Reason: "must be HH:mm"})
		}
		if fromOK && toOK && in.DailyFrom == in.DailyTo {
			errs = append(errs, ValidationError{Field: "daily_to", Reason: "must differ from daily_from"})
		}
		norm.dailyFrom = pgText(in.DailyFrom)
		norm.dailyTo = pgText(in.DailyTo)
	case in.DailyFrom != "" || in.DailyTo != "":
		errs = append(errs, ValidationError{Field: "daily_from", Reason: "daily_from and daily_to must be provided together"})
	}

	norm.priority = in.Priority
	norm.message = pgText(in.Message)

	if len(errs) > 0 {
		return norm, errs
	}

	if _, err := s.store.GetArea(ctx, db.GetAreaParams{OrganizationID: pgUUID(orgID), ID: pgUUID(norm.areaID)}); err != nil {
		if isNoRows(err) {
			return norm, fmt.Errorf("%w: area %s", ErrNotFound, in.AreaID)
		}
		return norm, fmt.Errorf("load area: %w", err)
	}

	if in.DeviceID != "" {
		deviceID, err := uuid.Parse(in.DeviceID)
		if err != nil {
			return norm, ValidationErrors{{Field: "device_id", Reason: "must be a UUID"}}
		}
		device, err := s.store.GetDevice(ctx, db.GetDeviceParams{OrganizationID: pgUUID(orgID), ID: pgUUID(deviceID)})
		if err != nil {
			if isNoRows(err) {
				return norm, fmt.Errorf("%w: device %s", ErrNotFound, in.DeviceID)
			}
			return norm, fmt.Errorf("load device: %w", err)
		}
		if uuid.UUID(device.AreaID.Bytes) != norm.areaID {
			return norm, ValidationErrors{{Field: "device_id", Reason: "device does not belong to the rule's area"}}
		}
		norm.deviceID = pgUUID(deviceID)
	}

	return norm, nil
}

// isWallClock accepts strict 24h HH:mm.
func isWallClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for _, c := range []byte{s[0], s[1], s[3], s[4]} {
		if c < '0' || c > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh <= 23 && mm <= 59
}
