package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/engine"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/zone"
)

const maxIdempotencyKeyLen = 120

// AttemptService registers access attempts: idempotent intake, rule
// evaluation, and transactional persistence of the attempt, its decision,
// the optional device command, and the outbox events describing them.
type AttemptService interface {
	RegisterAttempt(ctx context.Context, in RegisterAttemptInput) (AttemptResult, error)
}

// RegisterAttemptInput is the intake payload after HTTP binding. Subject
// fields are optional; OccurredAt defaults to the current instant.
type RegisterAttemptInput struct {
	DeviceID        string
	SubjectType     string
	PassDirection   string
	AuthMethod      string
	SubjectID       string
	SubjectDocument string
	IdempotencyKey  string
	OccurredAt      *time.Time
}

// AttemptResult mirrors the stored decision; replays of the same
// idempotency key return it unchanged. Raced is set when the caller lost
// an insert race and got the winner's rows, so the HTTP layer can answer
// 409 instead of 200 for concurrent duplicates.
type AttemptResult struct {
	AttemptID string          `json:"attempt_id"`
	Decision  DecisionSummary `json:"decision"`
	Command   *CommandSummary `json:"command,omitempty"`
	Raced     bool            `json:"-"`
}

type DecisionSummary struct {
	ID           string     `json:"id"`
	Result       string     `json:"result"`
	ReasonCode   string     `json:"reason_code"`
	ReasonDetail string     `json:"reason_detail,omitempty"`
	DecidedAt    time.Time  `json:"decided_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type CommandSummary struct {
	ID      string `json:"id"`
	Command string `json:"command"`
	Message string `json:"message,omitempty"`
}

type attemptService struct {
	store  db.Store
	events *outbox.Writer
	zones  *zone.Provider
	cache  *rulecache.Cache
	clock  clock.Clock
	log    *zap.Logger

	// defaultDecision is the process-wide fallback applied when the
	// organization row is unreadable or carries no override.
	defaultDecision domain.DecisionResult
}

func NewAttemptService(
	store db.Store,
	events *outbox.Writer,
	zones *zone.Provider,
	cache *rulecache.Cache,
	clk clock.Clock,
	defaultDecision string,
	logger *zap.Logger,
) AttemptService {
	dd := domain.DecisionAllow
	if defaultDecision == string(domain.DecisionDeny) {
		dd = domain.DecisionDeny
	}
	return &attemptService{
		store:           store,
		events:          events,
		zones:           zones,
		cache:           cache,
		clock:           clk,
		log:             logger,
		defaultDecision: dd,
	}
}

func (s *attemptService) RegisterAttempt(ctx context.Context, in RegisterAttemptInput) (AttemptResult, error) {
	orgID, err := mustGetOrgID(ctx)
	if err != nil {
		return AttemptResult{}, err
	}
	norm, err := validateAttemptInput(in)
	if err != nil {
		return AttemptResult{}, err
	}

	// Replay: the first call with this key owns the attempt; everyone
	// after it gets the stored result back.
	existing, err := s.store.GetAttemptByIdempotencyKey(ctx, db.GetAttemptByIdempotencyKeyParams{
		OrganizationID: pgUUID(orgID),
		IdempotencyKey: norm.idempotencyKey,
	})
	if err == nil {
		return s.replayResult(ctx, existing)
	}
	if !isNoRows(err) {
		return AttemptResult{}, fmt.Errorf("idempotency lookup: %w", err)
	}

	device, err := s.store.GetDevice(ctx, db.GetDeviceParams{
		OrganizationID: pgUUID(orgID),
		ID:             pgUUID(norm.deviceID),
	})
	if err != nil {
		if isNoRows(err) {
			return AttemptResult{}, fmt.Errorf("%w: device %s", ErrNotFound, norm.deviceID)
		}
		return AttemptResult{}, fmt.Errorf("load device: %w", err)
	}

	areaID := uuid.UUID(device.AreaID.Bytes)
	occurredAt := s.clock.Now()
	if in.OccurredAt != nil {
		occurredAt = in.OccurredAt.UTC()
	}

	attemptID := uuid.New()
	dc := engine.DecisionContext{
		OrgID:     orgID,
		AttemptID: attemptID,
		AreaID:    areaID,
		Device: engine.DeviceSnapshot{
			ID:     uuid.UUID(device.ID.Bytes),
			OrgID:  uuid.UUID(device.OrganizationID.Bytes),
			AreaID: areaID,
			Active: device.Active,
		},
		SubjectType:     norm.subjectType,
		PassDirection:   norm.passDirection,
		AuthMethod:      norm.authMethod,
		OccurredAt:      occurredAt,
		EffectiveZone:   s.zones.ZoneForArea(ctx, orgID, areaID),
		DefaultDecision: s.tenantDefault(ctx, orgID),
	}

	candidates, err := s.loadCandidates(ctx, orgID, areaID, norm.subjectType)
	if err != nil {
		return AttemptResult{}, fmt.Errorf("load rule candidates: %w", err)
	}

	out := engine.Evaluate(dc, candidates, s.clock.Now())

	result, err := s.persistDecision(ctx, orgID, attemptID, areaID, norm, occurredAt, out)
	if err != nil {
		if isDuplicateKeyError(err) {
			// Two requests raced the same key past the lookup; the loser
			// returns the winner's rows.
			replayed, rerr := s.store.GetAttemptByIdempotencyKey(ctx, db.GetAttemptByIdempotencyKeyParams{
				OrganizationID: pgUUID(orgID),
				IdempotencyKey: norm.idempotencyKey,
			})
			if rerr != nil {
				return AttemptResult{}, fmt.Errorf("%w: idempotency race lost and replay failed: %v", ErrConflict, rerr)
			}
			res, rerr := s.replayResult(ctx, replayed)
			if rerr != nil {
				return AttemptResult{}, rerr
			}
			res.Raced = true
			return res, nil
		}
		return AttemptResult{}, err
	}

	return result, nil
}

// normalizedAttempt is the validated intake payload.
type normalizedAttempt struct {
	deviceID        uuid.UUID
	subjectType     domain.SubjectType
	passDirection   domain.PassDirection
	authMethod      domain.AuthMethod
	subjectID       pgtype.UUID
	subjectDocument pgtype.Text
	idempotencyKey  string
}

func validateAttemptInput(in RegisterAttemptInput) (normalizedAttempt, error) {
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

	if in.IdempotencyKey == "" {
		errs = append(errs, ValidationError{Field: "idempotency_key", Reason: "is required"})
	} else if len(in.IdempotencyKey) > maxIdempotencyKeyLen {
		errs = append(errs, ValidationError{Field: "idempotency_key", Reason: fmt.Sprintf("must be at most %d characters", maxIdempotencyKeyLen)})
	}

	var subjectID pgtype.UUID
	if in.SubjectID != "" {
		parsed, err := uuid.Parse(in.SubjectID)
		if err != nil {
			errs = append(errs, ValidationError{Field: "subject.id", Reason: "must be a UUID"})
		} else {
			subjectID = pgUUID(parsed)
		}
	}

	if len(errs) > 0 {
		return normalizedAttempt{}, errs
	}

	return normalizedAttempt{
		deviceID:        deviceID,
		subjectType:     st,
		passDirection:   pd,
		authMethod:      am,
		subjectID:       subjectID,
		subjectDocument: pgText(in.SubjectDocument),
		idempotencyKey:  in.IdempotencyKey,
	}, nil
}

// tenantDefault reads the organization's no-match decision. Failures fall
// back to the process default so intake never stalls on the org row.
func (s *attemptService) tenantDefault(ctx context.Context, orgID uuid.UUID) domain.DecisionResult {
	org, err := s.store.GetOrganization(ctx, pgUUID(orgID))
	if err != nil {
		if !isNoRows(err) {
			s.log.Warn("default decision lookup failed, using process default",
				zap.String("org_id", orgID.String()), zap.Error(err))
		}
		return s.defaultDecision
	}
	if org.DefaultDecision == string(domain.DecisionDeny) {
		return domain.DecisionDeny
	}
	if org.DefaultDecision == string(domain.DecisionAllow) {
		return domain.DecisionAllow
	}
	return s.defaultDecision
}

func (s *attemptService) loadCandidates(ctx context.Context, orgID, areaID uuid.UUID, st domain.SubjectType) ([]engine.CandidateRule, error) {
	rules, err := s.cache.Get(ctx, rulecache.Key{OrgID: orgID, AreaID: areaID, SubjectType: st},
		func(ctx context.Context) ([]db.AccessRule, error) {
			return s.store.FindActiveRulesBase(ctx, db.FindActiveRulesBaseParams{
				OrganizationID: pgUUID(orgID),
				AreaID:         pgUUID(areaID),
				SubjectType:    string(st),
			})
		})
	if err != nil {
		return nil, err
	}
	return toCandidates(rules), nil
}

func toCandidates(rules []db.AccessRule) []engine.CandidateRule {
	out := make([]engine.CandidateRule, 0, len(rules))
	for _, r := range rules {
		c := engine.CandidateRule{
			ID:        uuid.UUID(r.ID.Bytes),
			Action:    domain.RuleAction(r.Action),
			DailyFrom: r.DailyFrom.String,
			DailyTo:   r.DailyTo.String,
			Priority:  r.Priority,
			Message:   r.Message.String,
			UpdatedAt: r.UpdatedAt.Time,
		}
		if r.DeviceID.Valid {
			id := uuid.UUID(r.DeviceID.Bytes)
			c.DeviceID = &id
		}
		if r.PassDirection.Valid {
			pd := domain.PassDirection(r.PassDirection.String)
			c.PassDirection = &pd
		}
		if r.AuthMethod.Valid {
			am := domain.AuthMethod(r.AuthMethod.String)
			c.AuthMethod = &am
		}
		if r.ValidFrom.Valid {
			from := r.ValidFrom.Time
			c.ValidFrom = &from
		}
		if r.ValidTo.Valid {
			to := r.ValidTo.Time
			c.ValidTo = &to
		}
		out = append(out, c)
	}
	return out
}

// persistDecision writes the attempt, decision, optional command, and
// their outbox events in one transaction.
func (s *attemptService) persistDecision(
	ctx context.Context,
	orgID uuid.UUID,
	attemptID uuid.UUID,
	areaID uuid.UUID,
	norm normalizedAttempt,
	occurredAt time.Time,
	out engine.DecisionOutput,
) (AttemptResult, error) {
	var result AttemptResult

	err := s.store.InTx(ctx, func(q db.Querier) error {
		attempt, err := q.InsertAttempt(ctx, db.InsertAttemptParams{
			ID:              pgUUID(attemptID),
			OrganizationID:  pgUUID(orgID),
			DeviceID:        pgUUID(norm.deviceID),
			AreaID:          pgUUID(areaID),
			SubjectType:     string(norm.subjectType),
			PassDirection:   string(norm.passDirection),
			AuthMethod:      string(norm.authMethod),
			SubjectID:       norm.subjectID,
			SubjectDocument: norm.subjectDocument,
			IdempotencyKey:  norm.idempotencyKey,
			OccurredAt:      pgTime(occurredAt),
		})
		if err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}

		var expiresAt pgtype.Timestamptz
		if out.ExpiresAt != nil {
			expiresAt = pgTime(*out.ExpiresAt)
		}
		decision, err := q.InsertDecision(ctx, db.InsertDecisionParams{
			ID:             newUUID(),
			OrganizationID: pgUUID(orgID),
			AttemptID:      attempt.ID,
			Result:         string(out.Result),
			ReasonCode:     out.ReasonCode,
			ReasonDetail:   pgText(out.ReasonDetail),
			DecidedAt:      pgTime(out.DecidedAt),
			ExpiresAt:      expiresAt,
		})
		if err != nil {
			return fmt.Errorf("insert decision: %w", err)
		}

		var command *db.DeviceCommand
		if out.SuggestedCommand != "" {
			cmd, err := q.InsertDeviceCommand(ctx, db.InsertDeviceCommandParams{
				ID:             newUUID(),
				OrganizationID: pgUUID(orgID),
				AttemptID:      attempt.ID,
				DeviceID:       pgUUID(norm.deviceID),
				Command:        string(out.SuggestedCommand),
				Message:        pgText(out.SuggestedMessage),
				State:          string(domain.CommandCreated),
				IdempotencyKey: "cmd:" + attemptID.String(),
			})
			if err != nil {
				return fmt.Errorf("insert device command: %w", err)
			}
			command = &cmd
		}

		if err := s.events.Publish(ctx, q, domain.AttemptRegistered{
			ID:            uuid.New(),
			OrgID:         orgID,
			AttemptID:     attemptID,
			DeviceID:      norm.deviceID,
			AreaID:        areaID,
			SubjectType:   norm.subjectType,
			SubjectID:     uuidPtr(norm.subjectID),
			PassDirection: norm.passDirection,
			AuthMethod:    norm.authMethod,
			OccurredAt:    occurredAt,
		}); err != nil {
			return err
		}
		if err := s.events.Publish(ctx, q, domain.DecisionTaken{
			ID:           uuid.New(),
			OrgID:        orgID,
			AttemptID:    attemptID,
			DecisionID:   uuid.UUID(decision.ID.Bytes),
			Result:       out.Result,
			ReasonCode:   out.ReasonCode,
			ReasonDetail: out.ReasonDetail,
			DecidedAt:    out.DecidedAt,
		}); err != nil {
			return err
		}
		if command != nil {
			if err := s.events.Publish(ctx, q, domain.CommandEmitted{
				ID:        uuid.New(),
				OrgID:     orgID,
				AttemptID: attemptID,
				CommandID: uuid.UUID(command.ID.Bytes),
				DeviceID:  norm.deviceID,
				Command:   domain.CommandType(command.Command),
				Message:   command.Message.String,
				EmittedAt: out.DecidedAt,
			}); err != nil {
				return err
			}
		}

		result = buildResult(attempt, decision, command)
		return nil
	})
	if err != nil {
		return AttemptResult{}, err
	}
	return result, nil
}

// replayResult rebuilds the original response from the stored rows.
func (s *attemptService) replayResult(ctx context.Context, attempt db.AccessAttempt) (AttemptResult, error) {
	decision, err := s.store.GetDecisionByAttempt(ctx, attempt.ID)
	if err != nil {
		return AttemptResult{}, fmt.Errorf("replay decision: %w", err)
	}

	var command *db.DeviceCommand
	cmd, err := s.store.GetCommandByAttempt(ctx, attempt.ID)
	if err == nil {
		command = &cmd
	} else if !isNoRows(err) {
		return AttemptResult{}, fmt.Errorf("replay command: %w", err)
	}

	return buildResult(attempt, decision, command), nil
}

func buildResult(attempt db.AccessAttempt, decision db.AccessDecision, command *db.DeviceCommand) AttemptResult {
	res := AttemptResult{
		AttemptID: uuid.UUID(attempt.ID.Bytes).String(),
		Decision: DecisionSummary{
			ID:           uuid.UUID(decision.ID.Bytes).String(),
			Result:       decision.Result,
			ReasonCode:   decision.ReasonCode,
			ReasonDetail: decision.ReasonDetail.String,
			DecidedAt:    decision.DecidedAt.Time,
		},
	}
	if decision.ExpiresAt.Valid {
		t := decision.ExpiresAt.Time
		res.Decision.ExpiresAt = &t
	}
	if command != nil {
		res.Command = &CommandSummary{
			ID:      uuid.UUID(command.ID.Bytes).String(),
			Command: command.Command,
			Message: command.Message.String,
		}
	}
	return res
}

func uuidPtr(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	u := uuid.UUID(id.Bytes)
	return &u
}
