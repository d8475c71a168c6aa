package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Organization struct {
	ID              pgtype.UUID        `json:"id"`
	Name            string             `json:"name"`
	State           string             `json:"state"`
	TimezoneID      string             `json:"timezone_id"`
	DefaultDecision string             `json:"default_decision"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type Area struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	Name           string             `json:"name"`
	ImagePath      pgtype.Text        `json:"image_path"`
	TimezoneID     pgtype.Text        `json:"timezone_id"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Device struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	AreaID         pgtype.UUID        `json:"area_id"`
	Name           string             `json:"name"`
	Model          pgtype.Text        `json:"model"`
	ExternalID     pgtype.Text        `json:"external_id"`
	Active         bool               `json:"active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Resident struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	DocumentKind   string             `json:"document_kind"`
	DocumentNumber string             `json:"document_number"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          pgtype.Text        `json:"email"`
	Phone          pgtype.Text        `json:"phone"`
	State          string             `json:"state"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type PreauthorizedVisitor struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	DocumentKind   string             `json:"document_kind"`
	DocumentNumber string             `json:"document_number"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          pgtype.Text        `json:"email"`
	Phone          pgtype.Text        `json:"phone"`
	State          string             `json:"state"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type SubjectGroup struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	Kind           string             `json:"kind"`
	Name           string             `json:"name"`
	State          string             `json:"state"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type SubjectGroupMember struct {
	GroupID        pgtype.UUID        `json:"group_id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	MemberID       pgtype.UUID        `json:"member_id"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type AccessRule struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	AreaID         pgtype.UUID        `json:"area_id"`
	SubjectType    string             `json:"subject_type"`
	DeviceID       pgtype.UUID        `json:"device_id"`
	PassDirection  pgtype.Text        `json:"pass_direction"`
	AuthMethod     pgtype.Text        `json:"auth_method"`
	Action         string             `json:"action"`
	ValidFrom      pgtype.Timestamptz `json:"valid_from"`
	ValidTo        pgtype.Timestamptz `json:"valid_to"`
	DailyFrom      pgtype.Text        `json:"daily_from"`
	DailyTo        pgtype.Text        `json:"daily_to"`
	Priority       int32              `json:"priority"`
	State          string             `json:"state"`
	Message        pgtype.Text        `json:"message"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type AccessAttempt struct {
	ID              pgtype.UUID        `json:"id"`
	OrganizationID  pgtype.UUID        `json:"organization_id"`
	DeviceID        pgtype.UUID        `json:"device_id"`
	AreaID          pgtype.UUID        `json:"area_id"`
	SubjectType     string             `json:"subject_type"`
	PassDirection   string             `json:"pass_direction"`
	AuthMethod      string             `json:"auth_method"`
	SubjectID       pgtype.UUID        `json:"subject_id"`
	SubjectDocument pgtype.Text        `json:"subject_document"`
	IdempotencyKey  string             `json:"idempotency_key"`
	OccurredAt      pgtype.Timestamptz `json:"occurred_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type AccessDecision struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	AttemptID      pgtype.UUID        `json:"attempt_id"`
	Result         string             `json:"result"`
	ReasonCode     string             `json:"reason_code"`
	ReasonDetail   pgtype.Text        `json:"reason_detail"`
	DecidedAt      pgtype.Timestamptz `json:"decided_at"`
	ExpiresAt      pgtype.Timestamptz `json:"expires_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type DeviceCommand struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	AttemptID      pgtype.UUID        `json:"attempt_id"`
	DeviceID       pgtype.UUID        `json:"device_id"`
	Command        string             `json:"command"`
	Message        pgtype.Text        `json:"message"`
	State          string             `json:"state"`
	IdempotencyKey string             `json:"idempotency_key"`
	SentAt         pgtype.Timestamptz `json:"sent_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type OutboxEvent struct {
	ID               pgtype.UUID        `json:"id"`
	OrganizationID   pgtype.UUID        `json:"organization_id"`
	EventType        string             `json:"event_type"`
	AggregateType    string             `json:"aggregate_type"`
	AggregateID      string             `json:"aggregate_id"`
	Payload          []byte             `json:"payload"`
	Status           string             `json:"status"`
	Attempts         int32              `json:"attempts"`
	NextAttemptAt    pgtype.Timestamptz `json:"next_attempt_at"`
	PublishedAt      pgtype.Timestamptz `json:"published_at"`
	LockedAt         pgtype.Timestamptz `json:"locked_at"`
	LockedBy         pgtype.Text        `json:"locked_by"`
	LastErrorCode    pgtype.Text        `json:"last_error_code"`
	LastErrorStatus  pgtype.Int4        `json:"last_error_status"`
	LastErrorMessage pgtype.Text        `json:"last_error_message"`
	LastErrorAt      pgtype.Timestamptz `json:"last_error_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
}

type AuditLog struct {
	ID             pgtype.UUID        `json:"id"`
	OrganizationID pgtype.UUID        `json:"organization_id"`
	EventType      string             `json:"event_type"`
	AggregateType  pgtype.Text        `json:"aggregate_type"`
	AggregateID    pgtype.Text        `json:"aggregate_id"`
	CorrelationID  pgtype.Text        `json:"correlation_id"`
	OccurredAt     pgtype.Timestamptz `json:"occurred_at"`
	Payload        []byte             `json:"payload"`
	EventKey       string             `json:"event_key"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type Reason struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
