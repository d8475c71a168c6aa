package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/handler"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/service"
)

// ── Helpers ────────────────────────────────────────────────────────────────

func toError(v interface{}) error {
	if v == nil {
		return nil
	}
	return v.(error)
}

// routerFixture wires the full router so middleware (tenantScope) is
// exercised exactly as in production.
type routerFixture struct {
	e        *echo.Echo
	attempts *MockAttemptService
	orgs     *MockOrganizationService
	rules    *MockRuleService
	store    *mock.MockStore
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &routerFixture{
		e:        echo.New(),
		attempts: NewMockAttemptService(ctrl),
		orgs:     NewMockOrganizationService(ctrl),
		rules:    NewMockRuleService(ctrl),
		store:    mock.NewMockStore(ctrl),
	}
	logger := zaptest.NewLogger(t)
	handler.RegisterRoutes(f.e, handler.Services{
		Attempts:      f.attempts,
		Organizations: f.orgs,
		Rules:         f.rules,
	}, handler.NewHealthHandler(f.store, 300*time.Second, logger), logger)
	handler.NewReasonHandler(f.store, logger).Register(f.e)
	return f
}

func (f *routerFixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ── Mock: AttemptService ───────────────────────────────────────────────────

type MockAttemptService struct {
	ctrl *gomock.Controller
	rec  *MockAttemptServiceRecorder
}
type MockAttemptServiceRecorder struct{ m *MockAttemptService }

func NewMockAttemptService(ctrl *gomock.Controller) *MockAttemptService {
	m := &MockAttemptService{ctrl: ctrl}
	m.rec = &MockAttemptServiceRecorder{m}
	return m
}
func (m *MockAttemptService) EXPECT() *MockAttemptServiceRecorder { return m.rec }

func (m *MockAttemptService) RegisterAttempt(ctx context.Context, in service.RegisterAttemptInput) (service.AttemptResult, error) {
	ret := m.ctrl.Call(m, "RegisterAttempt", ctx, in)
	return ret[0].(service.AttemptResult), toError(ret[1])
}
func (r *MockAttemptServiceRecorder) RegisterAttempt(ctx, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "RegisterAttempt", ctx, in)
}

// ── Mock: OrganizationService ──────────────────────────────────────────────

type MockOrganizationService struct {
	ctrl *gomock.Controller
	rec  *MockOrganizationServiceRecorder
}
type MockOrganizationServiceRecorder struct{ m *MockOrganizationService }

func NewMockOrganizationService(ctrl *gomock.Controller) *MockOrganizationService {
	m := &MockOrganizationService{ctrl: ctrl}
	m.rec = &MockOrganizationServiceRecorder{m}
	return m
}
func (m *MockOrganizationService) EXPECT() *MockOrganizationServiceRecorder { return m.rec }

func (m *MockOrganizationService) CreateOrganization(ctx context.Context, in service.OrganizationInput) (db.Organization, error) {
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, in)
	return ret[0].(db.Organization), toError(ret[1])
}
func (r *MockOrganizationServiceRecorder) CreateOrganization(ctx, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "CreateOrganization", ctx, in)
}

func (m *MockOrganizationService) GetOrganization(ctx context.Context, orgID string) (db.Organization, error) {
	ret := m.ctrl.Call(m, "GetOrganization", ctx, orgID)
	return ret[0].(db.Organization), toError(ret[1])
}
func (r *MockOrganizationServiceRecorder) GetOrganization(ctx, orgID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "GetOrganization", ctx, orgID)
}

func (m *MockOrganizationService) ListOrganizations(ctx context.Context, page service.PageInput) ([]db.Organization, int64, error) {
	ret := m.ctrl.Call(m, "ListOrganizations", ctx, page)
	v, _ := ret[0].([]db.Organization)
	total, _ := ret[1].(int64)
	return v, total, toError(ret[2])
}
func (r *MockOrganizationServiceRecorder) ListOrganizations(ctx, page any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "ListOrganizations", ctx, page)
}

func (m *MockOrganizationService) UpdateOrganization(ctx context.Context, orgID string, in service.OrganizationInput) (db.Organization, error) {
	ret := m.ctrl.Call(m, "UpdateOrganization", ctx, orgID, in)
	return ret[0].(db.Organization), toError(ret[1])
}
func (r *MockOrganizationServiceRecorder) UpdateOrganization(ctx, orgID, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "UpdateOrganization", ctx, orgID, in)
}

func (m *MockOrganizationService) DeleteOrganization(ctx context.Context, orgID string) error {
	ret := m.ctrl.Call(m, "DeleteOrganization", ctx, orgID)
	return toError(ret[0])
}
func (r *MockOrganizationServiceRecorder) DeleteOrganization(ctx, orgID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "DeleteOrganization", ctx, orgID)
}

// ── Mock: RuleService ──────────────────────────────────────────────────────

type MockRuleService struct {
	ctrl *gomock.Controller
	rec  *MockRuleServiceRecorder
}
type MockRuleServiceRecorder struct{ m *MockRuleService }

func NewMockRuleService(ctrl *gomock.Controller) *MockRuleService {
	m := &MockRuleService{ctrl: ctrl}
	m.rec = &MockRuleServiceRecorder{m}
	return m
}
func (m *MockRuleService) EXPECT() *MockRuleServiceRecorder { return m.rec }

func (m *MockRuleService) CreateRule(ctx context.Context, in service.RuleInput) (db.AccessRule, error) {
	ret := m.ctrl.Call(m, "CreateRule", ctx, in)
	return ret[0].(db.AccessRule), toError(ret[1])
}
func (r *MockRuleServiceRecorder) CreateRule(ctx, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "CreateRule", ctx, in)
}

func (m *MockRuleService) GetRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	ret := m.ctrl.Call(m, "GetRule", ctx, ruleID)
	return ret[0].(db.AccessRule), toError(ret[1])
}
func (r *MockRuleServiceRecorder) GetRule(ctx, ruleID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "GetRule", ctx, ruleID)
}

func (m *MockRuleService) ListRules(ctx context.Context, in service.ListRulesInput) ([]db.AccessRule, int64, error) {
	ret := m.ctrl.Call(m, "ListRules", ctx, in)
	v, _ := ret[0].([]db.AccessRule)
	total, _ := ret[1].(int64)
	return v, total, toError(ret[2])
}
func (r *MockRuleServiceRecorder) ListRules(ctx, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "ListRules", ctx, in)
}

func (m *MockRuleService) FindCandidateRules(ctx context.Context, in service.CandidateQuery) ([]db.AccessRule, error) {
	ret := m.ctrl.Call(m, "FindCandidateRules", ctx, in)
	v, _ := ret[0].([]db.AccessRule)
	return v, toError(ret[1])
}
func (r *MockRuleServiceRecorder) FindCandidateRules(ctx, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "FindCandidateRules", ctx, in)
}

func (m *MockRuleService) UpdateRule(ctx context.Context, ruleID string, in service.RuleInput) (db.AccessRule, error) {
	ret := m.ctrl.Call(m, "UpdateRule", ctx, ruleID, in)
	return ret[0].(db.AccessRule), toError(ret[1])
}
func (r *MockRuleServiceRecorder) UpdateRule(ctx, ruleID, in any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "UpdateRule", ctx, ruleID, in)
}

func (m *MockRuleService) ActivateRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	ret := m.ctrl.Call(m, "ActivateRule", ctx, ruleID)
	return ret[0].(db.AccessRule), toError(ret[1])
}
func (r *MockRuleServiceRecorder) ActivateRule(ctx, ruleID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "ActivateRule", ctx, ruleID)
}

func (m *MockRuleService) InactivateRule(ctx context.Context, ruleID string) (db.AccessRule, error) {
	ret := m.ctrl.Call(m, "InactivateRule", ctx, ruleID)
	return ret[0].(db.AccessRule), toError(ret[1])
}
func (r *MockRuleServiceRecorder) InactivateRule(ctx, ruleID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "InactivateRule", ctx, ruleID)
}

func (m *MockRuleService) DeleteRule(ctx context.Context, ruleID string) error {
	ret := m.ctrl.Call(m, "DeleteRule", ctx, ruleID)
	return toError(ret[0])
}
func (r *MockRuleServiceRecorder) DeleteRule(ctx, ruleID any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "DeleteRule", ctx, ruleID)
}

func (m *MockRuleService) InvalidateAllCaches(ctx context.Context) error {
	ret := m.ctrl.Call(m, "InvalidateAllCaches", ctx)
	return toError(ret[0])
}
func (r *MockRuleServiceRecorder) InvalidateAllCaches(ctx any) *gomock.Call {
	return r.m.ctrl.RecordCall(r.m, "InvalidateAllCaches", ctx)
}

// ══════════════════════════════════════════════════════════════════════════
// Intake
// ══════════════════════════════════════════════════════════════════════════

const intakeBody = `{"device_id":"7b5f66a4-9aee-4df5-96f8-ea843bb65014","idempotency_key":"k1","subject_type":"RESIDENT","pass_direction":"IN","auth_method":"QR"}`

func TestIntake_Accepted(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.attempts.EXPECT().RegisterAttempt(gomock.Any(), gomock.Any()).Return(service.AttemptResult{
		AttemptID: uuid.New().String(),
		Decision:  service.DecisionSummary{Result: "ALLOW", ReasonCode: "ALLOW"},
		Command:   &service.CommandSummary{Command: "OPEN_DOOR"},
	}, nil)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/accesses/attempts", intakeBody, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	decision := body["decision"].(map[string]interface{})
	assert.Equal(t, "ALLOW", decision["result"])
	command := body["command"].(map[string]interface{})
	assert.Equal(t, "OPEN_DOOR", command["command"])
}

func TestIntake_RacedDuplicateAnswers409(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.attempts.EXPECT().RegisterAttempt(gomock.Any(), gomock.Any()).Return(service.AttemptResult{
		AttemptID: uuid.New().String(),
		Decision:  service.DecisionSummary{Result: "ALLOW", ReasonCode: "ALLOW"},
		Raced:     true,
	}, nil)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/accesses/attempts", intakeBody, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	// The stored outcome rides along so the losing caller still learns
	// the decision.
	assert.NotEmpty(t, body["attempt_id"])
}

func TestIntake_ValidationEnvelope(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.attempts.EXPECT().RegisterAttempt(gomock.Any(), gomock.Any()).Return(
		service.AttemptResult{},
		service.ValidationErrors{{Field: "device_id", Reason: "is required"}},
	)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/accesses/attempts", `{"idempotency_key":"k1"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.EqualValues(t, http.StatusBadRequest, body["status"])
	assert.Equal(t, "/v1/organizations/"+orgID+"/accesses/attempts", body["path"])
	assert.NotEmpty(t, body["timestamp"])
	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	first := details[0].(map[string]interface{})
	assert.Equal(t, "device_id", first["field"])
	assert.Equal(t, "is required", first["reason"])
}

func TestIntake_UnknownDevice(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.attempts.EXPECT().RegisterAttempt(gomock.Any(), gomock.Any()).Return(
		service.AttemptResult{},
		service.ErrNotFound,
	)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/accesses/attempts", intakeBody, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec)["code"])
}

func TestIntake_TenantMismatchForbidden(t *testing.T) {
	f := newRouterFixture(t)
	pathOrg := uuid.New().String()
	headerOrg := uuid.New().String()

	// The service must never be reached.
	rec := f.do(http.MethodPost, "/v1/organizations/"+pathOrg+"/accesses/attempts", intakeBody,
		map[string]string{"X-Internal-Org-Id": headerOrg})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec)["code"])
}

func TestIntake_MatchingHeaderPasses(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.attempts.EXPECT().RegisterAttempt(gomock.Any(), gomock.Any()).Return(service.AttemptResult{
		AttemptID: uuid.New().String(),
		Decision:  service.DecisionSummary{Result: "ALLOW", ReasonCode: "ALLOW"},
	}, nil)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/accesses/attempts", intakeBody,
		map[string]string{"X-Internal-Org-Id": orgID})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIntake_MalformedOrgID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/v1/organizations/not-a-uuid/accesses/attempts", intakeBody, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, rec)["code"])
}

// ══════════════════════════════════════════════════════════════════════════
// Organizations (control plane)
// ══════════════════════════════════════════════════════════════════════════

func TestCreateOrganization_Created(t *testing.T) {
	f := newRouterFixture(t)

	f.orgs.EXPECT().CreateOrganization(gomock.Any(), service.OrganizationInput{
		Name:       "Altos del Parque",
		TimezoneID: "America/Bogota",
	}).Return(db.Organization{Name: "Altos del Parque", TimezoneID: "America/Bogota", State: "ACTIVE"}, nil)

	rec := f.do(http.MethodPost, "/v1/organizations",
		`{"name":"Altos del Parque","timezone_id":"America/Bogota"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Altos del Parque", body["name"])
	assert.Equal(t, "ACTIVE", body["state"])
}

func TestCreateOrganization_ValidationDetails(t *testing.T) {
	f := newRouterFixture(t)

	f.orgs.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(
		db.Organization{},
		service.ValidationErrors{
			{Field: "name", Reason: "is required"},
			{Field: "timezone_id", Reason: "must be a valid IANA zone"},
		},
	)

	rec := f.do(http.MethodPost, "/v1/organizations", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Len(t, body["details"], 2)
}

func TestDeleteOrganization_NotFound(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.orgs.EXPECT().DeleteOrganization(gomock.Any(), orgID).Return(service.ErrNotFound)

	rec := f.do(http.MethodDelete, "/v1/organizations/"+orgID, "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ══════════════════════════════════════════════════════════════════════════
// Rules
// ══════════════════════════════════════════════════════════════════════════

func TestCreateRule_DuplicateConflict(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.rules.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(
		db.AccessRule{},
		service.ErrConflict,
	)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/rules",
		`{"area_id":"`+uuid.New().String()+`","subject_type":"RESIDENT","action":"ALLOW"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.EqualValues(t, http.StatusConflict, body["status"])
}

func TestInvalidateRuleCaches_Accepted(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.rules.EXPECT().InvalidateAllCaches(gomock.Any()).Return(nil)

	rec := f.do(http.MethodPost, "/v1/organizations/"+orgID+"/rules/cache/invalidate", "", nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRuleCandidates_QueryBinding(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()
	deviceID := uuid.New().String()

	f.rules.EXPECT().FindCandidateRules(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in service.CandidateQuery) ([]db.AccessRule, error) {
			assert.Equal(t, deviceID, in.DeviceID)
			assert.Equal(t, "RESIDENT", in.SubjectType)
			assert.Equal(t, "IN", in.PassDirection)
			assert.Equal(t, "QR", in.AuthMethod)
			require.NotNil(t, in.At)
			assert.True(t, in.At.Equal(time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)))
			return []db.AccessRule{{Priority: 10}}, nil
		})

	rec := f.do(http.MethodGet, "/v1/organizations/"+orgID+"/rules/candidates"+
		"?device_id="+deviceID+"&subject_type=RESIDENT&pass_direction=IN&auth_method=QR&at=2025-03-10T14:00:00Z", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestRuleCandidates_BadTimestamp(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	// The service is never reached.
	rec := f.do(http.MethodGet, "/v1/organizations/"+orgID+"/rules/candidates?device_id=x&at=yesterday", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, rec)["code"])
}

func TestListRules_PaginationClamped(t *testing.T) {
	f := newRouterFixture(t)
	orgID := uuid.New().String()

	f.rules.EXPECT().ListRules(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in service.ListRulesInput) ([]db.AccessRule, int64, error) {
			assert.EqualValues(t, 500, in.Page.Limit)
			assert.EqualValues(t, 500, in.Page.Offset)
			return []db.AccessRule{}, 0, nil
		})

	rec := f.do(http.MethodGet, "/v1/organizations/"+orgID+"/rules?page=2&page_size=9999", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.EqualValues(t, 500, body["page_size"])
	assert.EqualValues(t, 2, body["page"])
}

// ══════════════════════════════════════════════════════════════════════════
// Reason catalog
// ══════════════════════════════════════════════════════════════════════════

func TestListReasons_OK(t *testing.T) {
	f := newRouterFixture(t)

	f.store.EXPECT().ListReasons(gomock.Any()).Return([]db.Reason{
		{Code: "ALLOW", Description: "Default allow"},
		{Code: "RULE_MATCH", Description: "A rule matched"},
	}, nil)

	rec := f.do(http.MethodGet, "/v1/reasons", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var reasons []db.Reason
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reasons))
	require.Len(t, reasons, 2)
	assert.Equal(t, "ALLOW", reasons[0].Code)
}

func TestGetReason_NotFound(t *testing.T) {
	f := newRouterFixture(t)

	f.store.EXPECT().GetReason(gomock.Any(), "BOGUS").Return(db.Reason{}, pgx.ErrNoRows)

	rec := f.do(http.MethodGet, "/v1/reasons/BOGUS", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec)["code"])
}

// ══════════════════════════════════════════════════════════════════════════
// Readiness
// ══════════════════════════════════════════════════════════════════════════

func TestReadyz_OK(t *testing.T) {
	f := newRouterFixture(t)

	f.store.EXPECT().GetOutboxStats(gomock.Any(), float64(300)).Return(db.GetOutboxStatsRow{
		ReadyCount: 3, InflightCount: 1, FailedCount: 2,
		OldestReadySeconds: 4.2, OldestInflightSeconds: 10,
	}, nil)

	rec := f.do(http.MethodGet, "/readyz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestReadyz_TripsOnFailedBacklog(t *testing.T) {
	f := newRouterFixture(t)

	f.store.EXPECT().GetOutboxStats(gomock.Any(), float64(300)).Return(db.GetOutboxStatsRow{
		FailedCount: 50,
	}, nil)

	rec := f.do(http.MethodGet, "/readyz", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "unavailable", body["status"])
	assert.NotEmpty(t, body["reasons"])
}

func TestReadyz_TripsOnStuckLock(t *testing.T) {
	f := newRouterFixture(t)

	// lockTTL 300s + 30s grace = 330s ceiling.
	f.store.EXPECT().GetOutboxStats(gomock.Any(), float64(300)).Return(db.GetOutboxStatsRow{
		InflightCount: 1, OldestInflightSeconds: 331,
	}, nil)

	rec := f.do(http.MethodGet, "/readyz", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz_OK(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
