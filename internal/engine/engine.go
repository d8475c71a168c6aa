// Package engine decides access intents against candidate rules. Evaluation
// is pure: no I/O, no ambient clock, no logging. Callers assemble the
// context, resolve the candidate snapshot and supply the instant.
package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
)

// DeviceSnapshot carries the device fields evaluation needs. It is a plain
// record detached from storage.
type DeviceSnapshot struct {
	ID     uuid.UUID
	OrgID  uuid.UUID
	AreaID uuid.UUID
	Active bool
}

// CandidateRule is one ACTIVE rule projected for evaluation. Nil matcher
// pointers are wildcards; daily window strings are HH:mm in the effective
// zone and empty when the rule has no daily window.
type CandidateRule struct {
	ID            uuid.UUID
	DeviceID      *uuid.UUID
	PassDirection *domain.PassDirection
	AuthMethod    *domain.AuthMethod
	Action        domain.RuleAction
	ValidFrom     *time.Time
	ValidTo       *time.Time
	DailyFrom     string
	DailyTo       string
	Priority      int32
	Message       string
	UpdatedAt     time.Time
}

// DecisionContext is the full input of one evaluation.
type DecisionContext struct {
	OrgID         uuid.UUID
	AttemptID     uuid.UUID
	AreaID        uuid.UUID
	Device        DeviceSnapshot
	SubjectType   domain.SubjectType
	PassDirection domain.PassDirection
	AuthMethod    domain.AuthMethod
	OccurredAt    time.Time
	EffectiveZone *time.Location

	// DefaultDecision applies when no rule survives filtering. Tenant
	// configurable; ALLOW unless the organization overrides it.
	DefaultDecision domain.DecisionResult
}

// DecisionOutput is the engine's verdict for one attempt.
type DecisionOutput struct {
	Result           domain.DecisionResult
	ReasonCode       string
	ReasonDetail     string
	DecidedAt        time.Time
	SuggestedCommand domain.CommandType
	SuggestedMessage string
	ExpiresAt        *time.Time
	MatchedRuleID    *uuid.UUID
}

// Evaluate runs the decision for one attempt. First match wins:
// inactive device, unresolved subject, then the best surviving rule,
// then the tenant default.
func Evaluate(dc DecisionContext, candidates []CandidateRule, now time.Time) DecisionOutput {
	if detail, ok := missingInput(dc); !ok {
		return DecisionOutput{
			Result:       domain.DecisionError,
			ReasonCode:   domain.ReasonPolicyError,
			ReasonDetail: detail,
			DecidedAt:    now.UTC(),
		}
	}

	if !dc.Device.Active {
		return DecisionOutput{
			Result:           domain.DecisionDeny,
			ReasonCode:       domain.ReasonDeviceInactive,
			DecidedAt:        now.UTC(),
			SuggestedCommand: domain.CommandDenyWithSignal,
		}
	}

	if dc.SubjectType == "" || dc.SubjectType == domain.SubjectUnknown {
		return DecisionOutput{
			Result:           domain.DecisionDeny,
			ReasonCode:       domain.ReasonSubjectUnknown,
			DecidedAt:        now.UTC(),
			SuggestedCommand: domain.CommandDenyWithSignal,
		}
	}

	zone := dc.EffectiveZone
	if zone == nil {
		zone = time.UTC
	}

	matched := make([]CandidateRule, 0, len(candidates))
	for _, r := range candidates {
		if r.matches(dc) && r.coversInstant(dc.OccurredAt, zone) {
			matched = append(matched, r)
		}
	}

	if len(matched) == 0 {
		if dc.DefaultDecision == domain.DecisionDeny {
			return DecisionOutput{
				Result:           domain.DecisionDeny,
				ReasonCode:       domain.ReasonDefaultDeny,
				DecidedAt:        now.UTC(),
				SuggestedCommand: domain.CommandDenyWithSignal,
			}
		}
		return DecisionOutput{
			Result:           domain.DecisionAllow,
			ReasonCode:       domain.ReasonAllow,
			DecidedAt:        now.UTC(),
			SuggestedCommand: domain.CommandOpenDoor,
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if sa, sb := a.specificity(), b.specificity(); sa != sb {
			return sa > sb
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	winner := matched[0]
	out := DecisionOutput{
		ReasonCode:       domain.ReasonRuleMatch,
		ReasonDetail:     "rule " + winner.ID.String(),
		DecidedAt:        now.UTC(),
		SuggestedMessage: winner.Message,
		ExpiresAt:        winner.expiry(dc.OccurredAt, zone),
		MatchedRuleID:    &winner.ID,
	}
	if winner.Action == domain.ActionAllow {
		out.Result = domain.DecisionAllow
		out.SuggestedCommand = domain.CommandOpenDoor
	} else {
		out.Result = domain.DecisionDeny
		out.SuggestedCommand = domain.CommandDenyWithSignal
	}
	return out
}

// missingInput reports the first absent precondition field.
func missingInput(dc DecisionContext) (string, bool) {
	switch {
	case dc.OrgID == uuid.Nil:
		return "missing orgId", false
	case dc.AttemptID == uuid.Nil:
		return "missing attemptId", false
	case dc.AreaID == uuid.Nil:
		return "missing areaId", false
	case dc.PassDirection == "":
		return "missing passDirection", false
	case dc.AuthMethod == "":
		return "missing authMethod", false
	case dc.Device.ID == uuid.Nil || dc.Device.OrgID == uuid.Nil || dc.Device.AreaID == uuid.Nil:
		return "missing device snapshot", false
	}
	return "", true
}

// matches applies the wildcard matchers: a nil field matches anything,
// a set field must equal the intent's.
func (r CandidateRule) matches(dc DecisionContext) bool {
	if r.DeviceID != nil && *r.DeviceID != dc.Device.ID {
		return false
	}
	if r.PassDirection != nil && *r.PassDirection != dc.PassDirection {
		return false
	}
	if r.AuthMethod != nil && *r.AuthMethod != dc.AuthMethod {
		return false
	}
	return true
}

// coversInstant applies both time windows to the attempt instant. The UTC
// validity window is half-open [from, to). The daily window compares
// wall-clock minutes in the effective zone, wrapping past midnight when
// from > to.
func (r CandidateRule) coversInstant(occurredAt time.Time, zone *time.Location) bool {
	if r.ValidFrom != nil && r.ValidTo != nil {
		t := occurredAt.UTC()
		if t.Before(r.ValidFrom.UTC()) || !t.Before(r.ValidTo.UTC()) {
			return false
		}
	}

	if r.DailyFrom != "" && r.DailyTo != "" {
		from, err1 := parseMinutes(r.DailyFrom)
		to, err2 := parseMinutes(r.DailyTo)
		if err1 != nil || err2 != nil {
			// Malformed windows are rejected at rule creation; a rule that
			// slipped through never matches.
			return false
		}
		local := occurredAt.In(zone)
		cur := local.Hour()*60 + local.Minute()
		if from < to {
			if cur < from || cur >= to {
				return false
			}
		} else {
			if cur < from && cur >= to {
				return false
			}
		}
	}

	return true
}

// specificity counts the constraints present on the rule: one per set
// matcher plus one per present window pair. Used as the ordering tiebreaker
// after priority.
func (r CandidateRule) specificity() int {
	n := 0
	if r.DeviceID != nil {
		n++
	}
	if r.PassDirection != nil {
		n++
	}
	if r.AuthMethod != nil {
		n++
	}
	if r.ValidFrom != nil && r.ValidTo != nil {
		n++
	}
	if r.DailyFrom != "" && r.DailyTo != "" {
		n++
	}
	return n
}

// expiry returns the instant the bounding window that admitted the rule
// closes: the earlier of the UTC validity end and the end of the current
// daily window occurrence. Nil when the rule has no windows.
func (r CandidateRule) expiry(occurredAt time.Time, zone *time.Location) *time.Time {
	var ends []time.Time

	if r.ValidFrom != nil && r.ValidTo != nil {
		ends = append(ends, r.ValidTo.UTC())
	}

	if r.DailyFrom != "" && r.DailyTo != "" {
		from, err1 := parseMinutes(r.DailyFrom)
		to, err2 := parseMinutes(r.DailyTo)
		if err1 == nil && err2 == nil {
			local := occurredAt.In(zone)
			cur := local.Hour()*60 + local.Minute()
			day := local
			if from >= to && cur >= from {
				// Overnight window entered before midnight closes tomorrow.
				day = day.AddDate(0, 0, 1)
			}
			end := time.Date(day.Year(), day.Month(), day.Day(), to/60, to%60, 0, 0, zone)
			ends = append(ends, end.UTC())
		}
	}

	if len(ends) == 0 {
		return nil
	}
	min := ends[0]
	for _, e := range ends[1:] {
		if e.Before(min) {
			min = e
		}
	}
	return &min
}

// parseMinutes converts an HH:mm string to minutes since local midnight.
func parseMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid HH:mm value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
