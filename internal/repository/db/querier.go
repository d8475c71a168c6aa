package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the full query surface of the platform. Services receive
// it either pool-bound (reads) or transaction-bound (via Store.InTx).
type Querier interface {
	AuditLogExists(ctx context.Context, arg AuditLogExistsParams) (bool, error)
	ClaimOutboxEvents(ctx context.Context, arg ClaimOutboxEventsParams) ([]pgtype.UUID, error)
	CountAreas(ctx context.Context, organizationID pgtype.UUID) (int64, error)
	CountAuditLogs(ctx context.Context, organizationID pgtype.UUID) (int64, error)
	CountAuditLogsByAggregate(ctx context.Context, arg CountAuditLogsByAggregateParams) (int64, error)
	CountDevices(ctx context.Context, arg CountDevicesParams) (int64, error)
	CountGroups(ctx context.Context, arg CountGroupsParams) (int64, error)
	CountOrganizations(ctx context.Context) (int64, error)
	CountResidents(ctx context.Context, arg CountResidentsParams) (int64, error)
	CountResidentsByIDs(ctx context.Context, arg CountResidentsByIDsParams) (int64, error)
	CountRules(ctx context.Context, arg CountRulesParams) (int64, error)
	CountVisitors(ctx context.Context, arg CountVisitorsParams) (int64, error)
	CountVisitorsByIDs(ctx context.Context, arg CountVisitorsByIDsParams) (int64, error)
	DeleteArea(ctx context.Context, arg DeleteAreaParams) (int64, error)
	DeleteDevice(ctx context.Context, arg DeleteDeviceParams) (int64, error)
	DeleteGroupMembers(ctx context.Context, groupID pgtype.UUID) error
	ExistsDuplicateRule(ctx context.Context, arg ExistsDuplicateRuleParams) (bool, error)
	FindActiveRulesBase(ctx context.Context, arg FindActiveRulesBaseParams) ([]AccessRule, error)
	FindCandidatesForIntent(ctx context.Context, arg FindCandidatesForIntentParams) ([]AccessRule, error)
	GetArea(ctx context.Context, arg GetAreaParams) (Area, error)
	GetAttemptByIdempotencyKey(ctx context.Context, arg GetAttemptByIdempotencyKeyParams) (AccessAttempt, error)
	GetCommandByAttempt(ctx context.Context, attemptID pgtype.UUID) (DeviceCommand, error)
	GetDecisionByAttempt(ctx context.Context, attemptID pgtype.UUID) (AccessDecision, error)
	GetDevice(ctx context.Context, arg GetDeviceParams) (Device, error)
	GetGroup(ctx context.Context, arg GetGroupParams) (SubjectGroup, error)
	GetOrganization(ctx context.Context, id pgtype.UUID) (Organization, error)
	GetOutboxEvent(ctx context.Context, id pgtype.UUID) (OutboxEvent, error)
	GetOutboxStats(ctx context.Context, lockTTLSeconds float64) (GetOutboxStatsRow, error)
	GetReason(ctx context.Context, code string) (Reason, error)
	GetResident(ctx context.Context, arg GetResidentParams) (Resident, error)
	GetRule(ctx context.Context, arg GetRuleParams) (AccessRule, error)
	GetVisitor(ctx context.Context, arg GetVisitorParams) (PreauthorizedVisitor, error)
	InsertArea(ctx context.Context, arg InsertAreaParams) (Area, error)
	InsertAttempt(ctx context.Context, arg InsertAttemptParams) (AccessAttempt, error)
	InsertAuditLog(ctx context.Context, arg InsertAuditLogParams) error
	InsertDecision(ctx context.Context, arg InsertDecisionParams) (AccessDecision, error)
	InsertDevice(ctx context.Context, arg InsertDeviceParams) (Device, error)
	InsertDeviceCommand(ctx context.Context, arg InsertDeviceCommandParams) (DeviceCommand, error)
	InsertGroup(ctx context.Context, arg InsertGroupParams) (SubjectGroup, error)
	InsertGroupMember(ctx context.Context, arg InsertGroupMemberParams) error
	InsertOrganization(ctx context.Context, arg InsertOrganizationParams) (Organization, error)
	InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) error
	InsertResident(ctx context.Context, arg InsertResidentParams) (Resident, error)
	InsertRule(ctx context.Context, arg InsertRuleParams) (AccessRule, error)
	InsertVisitor(ctx context.Context, arg InsertVisitorParams) (PreauthorizedVisitor, error)
	ListAreas(ctx context.Context, arg ListAreasParams) ([]Area, error)
	ListAuditLogs(ctx context.Context, arg ListAuditLogsParams) ([]AuditLog, error)
	ListAuditLogsByAggregate(ctx context.Context, arg ListAuditLogsByAggregateParams) ([]AuditLog, error)
	ListDevices(ctx context.Context, arg ListDevicesParams) ([]Device, error)
	ListGroupMembers(ctx context.Context, groupID pgtype.UUID) ([]SubjectGroupMember, error)
	ListGroups(ctx context.Context, arg ListGroupsParams) ([]SubjectGroup, error)
	ListOrganizations(ctx context.Context, arg ListOrganizationsParams) ([]Organization, error)
	ListReasons(ctx context.Context) ([]Reason, error)
	ListResidents(ctx context.Context, arg ListResidentsParams) ([]Resident, error)
	ListRules(ctx context.Context, arg ListRulesParams) ([]AccessRule, error)
	ListVisitors(ctx context.Context, arg ListVisitorsParams) ([]PreauthorizedVisitor, error)
	MarkOutboxFailed(ctx context.Context, arg MarkOutboxFailedParams) error
	MarkOutboxPublished(ctx context.Context, id pgtype.UUID) error
	MarkOutboxRetry(ctx context.Context, arg MarkOutboxRetryParams) error
	ReassertOutboxOwnership(ctx context.Context, arg ReassertOutboxOwnershipParams) (int64, error)
	ReleaseExpiredOutboxLocks(ctx context.Context, lockTTLSeconds float64) (int64, error)
	ReleaseOutboxLock(ctx context.Context, arg ReleaseOutboxLockParams) error
	SoftDeleteGroup(ctx context.Context, arg SoftDeleteGroupParams) (int64, error)
	SoftDeleteOrganization(ctx context.Context, id pgtype.UUID) (int64, error)
	SoftDeleteResident(ctx context.Context, arg SoftDeleteResidentParams) (int64, error)
	SoftDeleteVisitor(ctx context.Context, arg SoftDeleteVisitorParams) (int64, error)
	UpdateArea(ctx context.Context, arg UpdateAreaParams) (Area, error)
	UpdateDevice(ctx context.Context, arg UpdateDeviceParams) (Device, error)
	UpdateGroup(ctx context.Context, arg UpdateGroupParams) (SubjectGroup, error)
	UpdateOrganization(ctx context.Context, arg UpdateOrganizationParams) (Organization, error)
	UpdateResident(ctx context.Context, arg UpdateResidentParams) (Resident, error)
	UpdateRule(ctx context.Context, arg UpdateRuleParams) (AccessRule, error)
	UpdateRuleState(ctx context.Context, arg UpdateRuleStateParams) (AccessRule, error)
	UpdateVisitor(ctx context.Context, arg UpdateVisitorParams) (PreauthorizedVisitor, error)
}

var _ Querier = (*Queries)(nil)
