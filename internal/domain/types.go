// Package domain holds the shared vocabulary of the access-control
// platform: subject/rule/decision enums, reason codes, and the domain
// events that flow through the transactional outbox.
package domain

// SubjectType identifies who is requesting passage.
type SubjectType string

const (
	SubjectResident             SubjectType = "RESIDENT"
	SubjectPreauthorizedVisitor SubjectType = "PREAUTHORIZED_VISITOR"
	SubjectGroupMember          SubjectType = "GROUP_MEMBER"
	SubjectUnknown              SubjectType = "UNKNOWN"
)

func (s SubjectType) Valid() bool {
	switch s {
	case SubjectResident, SubjectPreauthorizedVisitor, SubjectGroupMember, SubjectUnknown:
		return true
	}
	return false
}

// PassDirection is the direction of the attempted passage.
type PassDirection string

const (
	DirectionIn  PassDirection = "IN"
	DirectionOut PassDirection = "OUT"
)

func (d PassDirection) Valid() bool { return d == DirectionIn || d == DirectionOut }

// AuthMethod is how the subject identified itself at the device.
type AuthMethod string

const (
	AuthQR     AuthMethod = "QR"
	AuthRFID   AuthMethod = "RFID"
	AuthPIN    AuthMethod = "PIN"
	AuthFacial AuthMethod = "FACIAL"
	AuthPlate  AuthMethod = "PLATE"
	AuthManual AuthMethod = "MANUAL"
)

func (a AuthMethod) Valid() bool {
	switch a {
	case AuthQR, AuthRFID, AuthPIN, AuthFacial, AuthPlate, AuthManual:
		return true
	}
	return false
}

// RuleAction is what a matching rule decides.
type RuleAction string

const (
	ActionAllow RuleAction = "ALLOW"
	ActionDeny  RuleAction = "DENY"
)

func (a RuleAction) Valid() bool { return a == ActionAllow || a == ActionDeny }

// RuleState governs whether a rule participates in evaluation.
type RuleState string

const (
	RuleActive   RuleState = "ACTIVE"
	RuleInactive RuleState = "INACTIVE"
)

// DecisionResult is the outcome category of an evaluated attempt.
type DecisionResult string

const (
	DecisionAllow   DecisionResult = "ALLOW"
	DecisionDeny    DecisionResult = "DENY"
	DecisionPending DecisionResult = "PENDING"
	DecisionError   DecisionResult = "ERROR"
)

// CommandType is the opaque instruction sent to a device.
type CommandType string

const (
	CommandOpenDoor       CommandType = "OPEN_DOOR"
	CommandDenyWithSignal CommandType = "DENY_WITH_SIGNAL"
)

// CommandState tracks the device-command lifecycle. Only CREATED is
// produced by the intake pipeline; the rest belong to the inbound
// device-confirmation flow.
type CommandState string

const (
	CommandCreated       CommandState = "CREATED"
	CommandSent          CommandState = "SENT"
	CommandReceived      CommandState = "RECEIVED"
	CommandExecutedOK    CommandState = "EXECUTED_OK"
	CommandExecutedError CommandState = "EXECUTED_ERROR"
	CommandTimeout       CommandState = "TIMEOUT"
)

// EntityState is the soft-delete state shared by organizations,
// residents, visitors, and groups.
type EntityState string

const (
	StateActive   EntityState = "ACTIVE"
	StateInactive EntityState = "INACTIVE"
)

func (s EntityState) Valid() bool { return s == StateActive || s == StateInactive }

// GroupKind discriminates resident groups from visitor groups.
type GroupKind string

const (
	GroupResidents GroupKind = "RESIDENTS"
	GroupVisitors  GroupKind = "VISITORS"
)

func (k GroupKind) Valid() bool { return k == GroupResidents || k == GroupVisitors }

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "PENDING"
	OutboxPublished OutboxStatus = "PUBLISHED"
	OutboxFailed    OutboxStatus = "FAILED"
)

// ChangeType classifies a policy change for cache invalidation.
type ChangeType string

const (
	ChangeCreated          ChangeType = "CREATED"
	ChangeUpdated          ChangeType = "UPDATED"
	ChangeActivated        ChangeType = "ACTIVATED"
	ChangeInactivated      ChangeType = "INACTIVATED"
	ChangeSoftDeleted      ChangeType = "SOFT_DELETED"
	ChangeOrgZoneUpdated   ChangeType = "ORG_ZONE_UPDATED"
	ChangeAreaZoneUpdated  ChangeType = "AREA_ZONE_UPDATED"
	ChangeInvalidateAllReq ChangeType = "INVALIDATE_ALL_REQUESTED"
)

// Decision reason codes persisted with every decision and seeded in the
// reason catalog.
const (
	ReasonAllow          = "ALLOW"
	ReasonDefaultDeny    = "DEFAULT_DENY"
	ReasonRuleMatch      = "RULE_MATCH"
	ReasonDeviceInactive = "DEVICE_INACTIVE"
	ReasonSubjectUnknown = "SUBJECT_UNKNOWN"
	ReasonPolicyError    = "POLICY_ERROR"
)

// Rejection reason codes carried by ChangeRejected events.
const (
	RejectValidation      = "VALIDATION_ERROR"
	RejectDuplicateRule   = "DUPLICATE_RULE"
	RejectDeviceNotInArea = "DEVICE_NOT_IN_AREA"
	RejectRuleNotFound    = "RULE_NOT_FOUND"
	RejectInternal        = "INTERNAL_ERROR"
)
