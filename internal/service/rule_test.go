package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
)

type ruleFixture struct {
	store  *mock.MockStore
	cache  *rulecache.Cache
	svc    RuleService
	ctx    context.Context
	orgID  uuid.UUID
	areaID uuid.UUID
}

func newRuleFixture(t *testing.T) *ruleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	cache := rulecache.New()
	clk := clock.Fixed(fixedNow())

	f := &ruleFixture{
		store:  store,
		cache:  cache,
		orgID:  uuid.New(),
		areaID: uuid.New(),
	}
	f.svc = NewRuleService(store, outbox.NewWriter(clk), cache, clk, zaptest.NewLogger(t))
	f.ctx = middleware.WithOrgID(context.Background(), f.orgID.String())
	return f
}

func (f *ruleFixture) validInput() RuleInput {
	return RuleInput{
		AreaID:      f.areaID.String(),
		SubjectType: string(domain.SubjectResident),
		Action:      string(domain.ActionAllow),
		Priority:    10,
	}
}

func (f *ruleFixture) expectAreaExists() {
	f.store.EXPECT().
		GetArea(gomock.Any(), db.GetAreaParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(f.areaID)}).
		Return(db.Area{ID: pgUUID(f.areaID), OrganizationID: pgUUID(f.orgID)}, nil)
}

// captureEvents collects every outbox insert so tests can decode the
// payloads that would go on the wire.
func (f *ruleFixture) captureEvents(events *[]db.InsertOutboxEventParams) {
	f.store.EXPECT().
		InsertOutboxEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertOutboxEventParams) error {
			*events = append(*events, arg)
			return nil
		}).
		AnyTimes()
}

// seedCache loads one snapshot so invalidation is observable.
func (f *ruleFixture) seedCache(t *testing.T) rulecache.Key {
	t.Helper()
	key := rulecache.Key{OrgID: f.orgID, AreaID: f.areaID, SubjectType: domain.SubjectResident}
	_, err := f.cache.Get(context.Background(), key, func(context.Context) ([]db.AccessRule, error) {
		return []db.AccessRule{{ID: newUUID()}}, nil
	})
	require.NoError(t, err)
	return key
}

func cacheMissed(t *testing.T, c *rulecache.Cache, key rulecache.Key) bool {
	t.Helper()
	missed := false
	_, err := c.Get(context.Background(), key, func(context.Context) ([]db.AccessRule, error) {
		missed = true
		return nil, nil
	})
	require.NoError(t, err)
	return missed
}

func TestCreateRulePublishesChangeAndInvalidates(t *testing.T) {
	f := newRuleFixture(t)
	key := f.seedCache(t)

	f.expectAreaExists()
	f.store.EXPECT().
		ExistsDuplicateRule(gomock.Any(), gomock.Any()).
		Return(false, nil)
	passthroughTx(f.store)

	var inserted db.InsertRuleParams
	f.store.EXPECT().
		InsertRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertRuleParams) (db.AccessRule, error) {
			inserted = arg
			return db.AccessRule{
				ID:             arg.ID,
				OrganizationID: arg.OrganizationID,
				AreaID:         arg.AreaID,
				SubjectType:    arg.SubjectType,
				Action:         arg.Action,
				Priority:       arg.Priority,
				State:          arg.State,
			}, nil
		})
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	rule, err := f.svc.CreateRule(f.ctx, f.validInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.RuleActive), inserted.State)
	assert.Equal(t, string(domain.ActionAllow), rule.Action)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypePolicyChanged, events[0].EventType)
	assert.Equal(t, domain.AggregateAccessRule, events[0].AggregateType)

	var change domain.PolicyChanged
	require.NoError(t, json.Unmarshal(events[0].Payload, &change))
	assert.Equal(t, domain.ChangeCreated, change.ChangeType)
	require.NotNil(t, change.AreaID)
	assert.Equal(t, f.areaID, *change.AreaID)
	require.NotNil(t, change.RuleID)
	assert.Equal(t, uuid.UUID(rule.ID.Bytes), *change.RuleID)

	assert.True(t, cacheMissed(t, f.cache, key), "create must drop the area snapshot")
}

func TestCreateRuleDuplicateRecordsRejection(t *testing.T) {
	f := newRuleFixture(t)

	f.expectAreaExists()
	f.store.EXPECT().
		ExistsDuplicateRule(gomock.Any(), gomock.Any()).
		Return(true, nil)
	passthroughTx(f.store)
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	_, err := f.svc.CreateRule(f.ctx, f.validInput())
	require.ErrorIs(t, err, ErrConflict)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeChangeRejected, events[0].EventType)

	var rejected domain.ChangeRejected
	require.NoError(t, json.Unmarshal(events[0].Payload, &rejected))
	assert.Equal(t, "CREATE_RULE", rejected.Operation)
	assert.Equal(t, domain.RejectDuplicateRule, rejected.ReasonCode)
	assert.Equal(t, 409, rejected.HTTPStatus)
}

func TestCreateRuleValidationRecordsRejection(t *testing.T) {
	f := newRuleFixture(t)
	passthroughTx(f.store)
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	in := f.validInput()
	in.Action = "MAYBE"

	_, err := f.svc.CreateRule(f.ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Len(t, events, 1)
	var rejected domain.ChangeRejected
	require.NoError(t, json.Unmarshal(events[0].Payload, &rejected))
	assert.Equal(t, domain.RejectValidation, rejected.ReasonCode)
	assert.Equal(t, 400, rejected.HTTPStatus)
}

func TestCreateRuleRejectsWindowShape(t *testing.T) {
	f := newRuleFixture(t)
	passthroughTx(f.store)
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	from := fixedNow()
	in := f.validInput()
	in.ValidFrom = &from // missing valid_to
	in.DailyFrom = "22:00"
	in.DailyTo = "22:00"

	_, err := f.svc.CreateRule(f.ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		fields = append(fields, ve.Field)
	}
	assert.ElementsMatch(t, []string{"valid_from", "daily_to"}, fields)
}

func TestCreateRuleRejectsDeviceOutsideArea(t *testing.T) {
	f := newRuleFixture(t)
	deviceID := uuid.New()

	f.expectAreaExists()
	f.store.EXPECT().
		GetDevice(gomock.Any(), db.GetDeviceParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(deviceID)}).
		Return(db.Device{
			ID:             pgUUID(deviceID),
			OrganizationID: pgUUID(f.orgID),
			AreaID:         newUUID(), // some other area
		}, nil)
	passthroughTx(f.store)
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	in := f.validInput()
	in.DeviceID = deviceID.String()

	_, err := f.svc.CreateRule(f.ctx, in)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "device does not belong")
}

func TestUpdateRulePinsAreaAndSubjectType(t *testing.T) {
	f := newRuleFixture(t)
	ruleID := uuid.New()

	f.store.EXPECT().
		GetRule(gomock.Any(), db.GetRuleParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(ruleID)}).
		Return(db.AccessRule{
			ID:             pgUUID(ruleID),
			OrganizationID: pgUUID(f.orgID),
			AreaID:         pgUUID(f.areaID),
			SubjectType:    string(domain.SubjectResident),
			Action:         string(domain.ActionAllow),
			State:          string(domain.RuleActive),
		}, nil)
	f.expectAreaExists()

	var dupCheck db.ExistsDuplicateRuleParams
	f.store.EXPECT().
		ExistsDuplicateRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ExistsDuplicateRuleParams) (bool, error) {
			dupCheck = arg
			return false, nil
		})
	passthroughTx(f.store)
	f.store.EXPECT().
		UpdateRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateRuleParams) (db.AccessRule, error) {
			return db.AccessRule{
				ID:             arg.ID,
				OrganizationID: arg.OrganizationID,
				AreaID:         pgUUID(f.areaID),
				SubjectType:    string(domain.SubjectResident),
				Action:         arg.Action,
				Priority:       arg.Priority,
				State:          string(domain.RuleActive),
			}, nil
		})
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	// The caller tries to move the rule; area and subject stay pinned.
	in := RuleInput{
		AreaID:      uuid.New().String(),
		SubjectType: string(domain.SubjectGroupMember),
		Action:      string(domain.ActionDeny),
		Priority:    99,
	}
	rule, err := f.svc.UpdateRule(f.ctx, ruleID.String(), in)
	require.NoError(t, err)

	assert.Equal(t, pgUUID(f.areaID), dupCheck.AreaID)
	assert.Equal(t, string(domain.SubjectResident), dupCheck.SubjectType)
	assert.Equal(t, pgUUID(ruleID), dupCheck.ExcludeID)
	assert.Equal(t, string(domain.ActionDeny), rule.Action)

	require.Len(t, events, 1)
	var change domain.PolicyChanged
	require.NoError(t, json.Unmarshal(events[0].Payload, &change))
	assert.Equal(t, domain.ChangeUpdated, change.ChangeType)
	require.NotNil(t, change.AreaID)
	assert.Equal(t, f.areaID, *change.AreaID)
}

func TestTransitionRulePublishesStateChange(t *testing.T) {
	cases := []struct {
		name   string
		call   func(svc RuleService, ctx context.Context, id string) error
		state  string
		change domain.ChangeType
	}{
		{
			name: "activate",
			call: func(svc RuleService, ctx context.Context, id string) error {
				_, err := svc.ActivateRule(ctx, id)
				return err
			},
			state:  string(domain.RuleActive),
			change: domain.ChangeActivated,
		},
		{
			name: "inactivate",
			call: func(svc RuleService, ctx context.Context, id string) error {
				_, err := svc.InactivateRule(ctx, id)
				return err
			},
			state:  string(domain.RuleInactive),
			change: domain.ChangeInactivated,
		},
		{
			name: "delete",
			call: func(svc RuleService, ctx context.Context, id string) error {
				return svc.DeleteRule(ctx, id)
			},
			state:  string(domain.RuleInactive),
			change: domain.ChangeSoftDeleted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRuleFixture(t)
			key := f.seedCache(t)
			ruleID := uuid.New()

			passthroughTx(f.store)
			f.store.EXPECT().
				UpdateRuleState(gomock.Any(), db.UpdateRuleStateParams{
					OrganizationID: pgUUID(f.orgID),
					ID:             pgUUID(ruleID),
					State:          tc.state,
				}).
				Return(db.AccessRule{
					ID:             pgUUID(ruleID),
					OrganizationID: pgUUID(f.orgID),
					AreaID:         pgUUID(f.areaID),
					SubjectType:    string(domain.SubjectResident),
					State:          tc.state,
				}, nil)
			var events []db.InsertOutboxEventParams
			f.captureEvents(&events)

			require.NoError(t, tc.call(f.svc, f.ctx, ruleID.String()))

			require.Len(t, events, 1)
			var change domain.PolicyChanged
			require.NoError(t, json.Unmarshal(events[0].Payload, &change))
			assert.Equal(t, tc.change, change.ChangeType)

			assert.True(t, cacheMissed(t, f.cache, key))
		})
	}
}

func TestTransitionRuleNotFound(t *testing.T) {
	f := newRuleFixture(t)
	passthroughTx(f.store)
	f.store.EXPECT().
		UpdateRuleState(gomock.Any(), gomock.Any()).
		Return(db.AccessRule{}, pgx.ErrNoRows)

	_, err := f.svc.ActivateRule(f.ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidateAllCachesFansOut(t *testing.T) {
	f := newRuleFixture(t)
	key := f.seedCache(t)

	passthroughTx(f.store)
	var events []db.InsertOutboxEventParams
	f.captureEvents(&events)

	require.NoError(t, f.svc.InvalidateAllCaches(f.ctx))

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypePolicyChanged, events[0].EventType)

	var change domain.PolicyChanged
	require.NoError(t, json.Unmarshal(events[0].Payload, &change))
	assert.Equal(t, domain.ChangeInvalidateAllReq, change.ChangeType)
	assert.Nil(t, change.AreaID)
	assert.Nil(t, change.RuleID)

	assert.True(t, cacheMissed(t, f.cache, key))
}

func TestFindCandidateRulesReadsStore(t *testing.T) {
	f := newRuleFixture(t)
	deviceID := uuid.New()
	at := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	f.store.EXPECT().
		GetDevice(gomock.Any(), db.GetDeviceParams{OrganizationID: pgUUID(f.orgID), ID: pgUUID(deviceID)}).
		Return(db.Device{ID: pgUUID(deviceID), AreaID: pgUUID(f.areaID)}, nil)

	var got db.FindCandidatesForIntentParams
	f.store.EXPECT().
		FindCandidatesForIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.FindCandidatesForIntentParams) ([]db.AccessRule, error) {
			got = arg
			return []db.AccessRule{{ID: newUUID(), Priority: 10}}, nil
		})

	rules, err := f.svc.FindCandidateRules(f.ctx, CandidateQuery{
		DeviceID:      deviceID.String(),
		SubjectType:   string(domain.SubjectResident),
		PassDirection: string(domain.DirectionIn),
		AuthMethod:    string(domain.AuthQR),
		At:            &at,
	})
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	// The area comes from the device, not the caller.
	assert.Equal(t, pgUUID(f.orgID), got.OrganizationID)
	assert.Equal(t, pgUUID(f.areaID), got.AreaID)
	assert.Equal(t, pgUUID(deviceID), got.DeviceID)
	assert.Equal(t, "RESIDENT", got.SubjectType)
	assert.Equal(t, "IN", got.PassDirection)
	assert.Equal(t, "QR", got.AuthMethod)
	assert.True(t, got.OccurredAt.Time.Equal(at))
}

func TestFindCandidateRulesUnknownDevice(t *testing.T) {
	f := newRuleFixture(t)

	f.store.EXPECT().
		GetDevice(gomock.Any(), gomock.Any()).
		Return(db.Device{}, pgx.ErrNoRows)

	_, err := f.svc.FindCandidateRules(f.ctx, CandidateQuery{
		DeviceID:      uuid.New().String(),
		SubjectType:   string(domain.SubjectResident),
		PassDirection: string(domain.DirectionIn),
		AuthMethod:    string(domain.AuthQR),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindCandidateRulesValidation(t *testing.T) {
	f := newRuleFixture(t)

	_, err := f.svc.FindCandidateRules(f.ctx, CandidateQuery{SubjectType: "GHOST"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "device_id")
	assert.Contains(t, fields, "subject_type")
	assert.Contains(t, fields, "pass_direction")
	assert.Contains(t, fields, "auth_method")
}
