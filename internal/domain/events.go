package domain

import (
	"time"

	"github.com/google/uuid"
)

// Fully qualified event types carried on the bus envelope.
const (
	EventTypeAttemptRegistered = "access.attempt.registered"
	EventTypeDecisionTaken     = "access.decision.taken"
	EventTypeCommandEmitted    = "access.command.emitted"
	EventTypeCommandExecuted   = "access.command.executed"
	EventTypePolicyChanged     = "policy.rule.changed"
	EventTypeChangeRejected    = "policy.change.rejected"
)

// Aggregate types recorded on outbox rows and audit entries.
const (
	AggregateAccessAttempt  = "ACCESS_ATTEMPT"
	AggregateAccessDecision = "ACCESS_DECISION"
	AggregateDeviceCommand  = "DEVICE_COMMAND"
	AggregateAccessRule     = "ACCESS_RULE"
	AggregateUnknown        = "UNKNOWN"
)

// Event is implemented by every domain event written to the outbox.
// OrganizationID must never be zero; the outbox writer treats a zero
// tenant as a programming error and aborts the surrounding transaction.
type Event interface {
	EventType() string
	OrganizationID() uuid.UUID
	AggregateType() string
	AggregateID() string
}

// Identifiable is implemented by events that carry their own unique id.
// The outbox writer reuses it as the row id so the on-wire envelope and
// the payload agree on event identity.
type Identifiable interface {
	EventID() uuid.UUID
}

// AttemptRegistered is emitted once per newly registered access attempt.
type AttemptRegistered struct {
	ID            uuid.UUID     `json:"event_id"`
	OrgID         uuid.UUID     `json:"org_id"`
	AttemptID     uuid.UUID     `json:"attempt_id"`
	DeviceID      uuid.UUID     `json:"device_id"`
	AreaID        uuid.UUID     `json:"area_id"`
	SubjectType   SubjectType   `json:"subject_type"`
	SubjectID     *uuid.UUID    `json:"subject_id,omitempty"`
	PassDirection PassDirection `json:"pass_direction"`
	AuthMethod    AuthMethod    `json:"auth_method"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

func (e AttemptRegistered) EventType() string         { return EventTypeAttemptRegistered }
func (e AttemptRegistered) OrganizationID() uuid.UUID { return e.OrgID }
func (e AttemptRegistered) AggregateType() string     { return AggregateAccessAttempt }
func (e AttemptRegistered) AggregateID() string       { return e.AttemptID.String() }
func (e AttemptRegistered) EventID() uuid.UUID        { return e.ID }

// DecisionTaken is emitted with the decision row of an attempt.
type DecisionTaken struct {
	ID           uuid.UUID      `json:"event_id"`
	OrgID        uuid.UUID      `json:"org_id"`
	AttemptID    uuid.UUID      `json:"attempt_id"`
	DecisionID   uuid.UUID      `json:"decision_id"`
	Result       DecisionResult `json:"result"`
	ReasonCode   string         `json:"reason_code"`
	ReasonDetail string         `json:"reason_detail,omitempty"`
	DecidedAt    time.Time      `json:"decided_at"`
}

func (e DecisionTaken) EventType() string         { return EventTypeDecisionTaken }
func (e DecisionTaken) OrganizationID() uuid.UUID { return e.OrgID }
func (e DecisionTaken) AggregateType() string     { return AggregateAccessDecision }
func (e DecisionTaken) AggregateID() string       { return e.DecisionID.String() }
func (e DecisionTaken) EventID() uuid.UUID        { return e.ID }

// CommandEmitted is emitted when a decision produced a device command.
type CommandEmitted struct {
	ID        uuid.UUID   `json:"event_id"`
	OrgID     uuid.UUID   `json:"org_id"`
	AttemptID uuid.UUID   `json:"attempt_id"`
	CommandID uuid.UUID   `json:"command_id"`
	DeviceID  uuid.UUID   `json:"device_id"`
	Command   CommandType `json:"command"`
	Message   string      `json:"message,omitempty"`
	EmittedAt time.Time   `json:"emitted_at"`
}

func (e CommandEmitted) EventType() string         { return EventTypeCommandEmitted }
func (e CommandEmitted) OrganizationID() uuid.UUID { return e.OrgID }
func (e CommandEmitted) AggregateType() string     { return AggregateDeviceCommand }
func (e CommandEmitted) AggregateID() string       { return e.CommandID.String() }
func (e CommandEmitted) EventID() uuid.UUID        { return e.ID }

// CommandExecuted reports the device-side outcome of a command. It is
// produced by the inbound confirmation flow and consumed by the audit
// pipeline; the intake pipeline never emits it.
type CommandExecuted struct {
	ID         uuid.UUID    `json:"event_id"`
	OrgID      uuid.UUID    `json:"org_id"`
	CommandID  uuid.UUID    `json:"command_id"`
	DeviceID   uuid.UUID    `json:"device_id"`
	State      CommandState `json:"state"`
	Detail     string       `json:"detail,omitempty"`
	ExecutedAt time.Time    `json:"executed_at"`
}

func (e CommandExecuted) EventType() string         { return EventTypeCommandExecuted }
func (e CommandExecuted) OrganizationID() uuid.UUID { return e.OrgID }
func (e CommandExecuted) AggregateType() string     { return AggregateDeviceCommand }
func (e CommandExecuted) AggregateID() string       { return e.CommandID.String() }
func (e CommandExecuted) EventID() uuid.UUID        { return e.ID }

// PolicyChanged fans out rule and timezone configuration changes so
// every node invalidates its local caches.
type PolicyChanged struct {
	ID         uuid.UUID  `json:"event_id"`
	OrgID      uuid.UUID  `json:"org_id"`
	AreaID     *uuid.UUID `json:"area_id,omitempty"`
	RuleID     *uuid.UUID `json:"rule_id,omitempty"`
	ChangeType ChangeType `json:"change_type"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func (e PolicyChanged) EventType() string         { return EventTypePolicyChanged }
func (e PolicyChanged) OrganizationID() uuid.UUID { return e.OrgID }
func (e PolicyChanged) EventID() uuid.UUID        { return e.ID }

func (e PolicyChanged) AggregateType() string {
	if e.RuleID != nil {
		return AggregateAccessRule
	}
	return AggregateUnknown
}

func (e PolicyChanged) AggregateID() string {
	if e.RuleID != nil {
		return e.RuleID.String()
	}
	return ""
}

// ChangeRejected records a failed policy change for the audit trail.
// Publication is best-effort and never blocks the rejecting call.
type ChangeRejected struct {
	ID         uuid.UUID  `json:"event_id"`
	OrgID      uuid.UUID  `json:"org_id"`
	AreaID     *uuid.UUID `json:"area_id,omitempty"`
	Operation  string     `json:"operation"`
	ReasonCode string     `json:"reason_code"`
	HTTPStatus int        `json:"http_status"`
	Message    string     `json:"message"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func (e ChangeRejected) EventType() string         { return EventTypeChangeRejected }
func (e ChangeRejected) OrganizationID() uuid.UUID { return e.OrgID }
func (e ChangeRejected) AggregateType() string     { return AggregateUnknown }
func (e ChangeRejected) AggregateID() string       { return "" }
func (e ChangeRejected) EventID() uuid.UUID        { return e.ID }
