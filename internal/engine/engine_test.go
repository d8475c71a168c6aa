package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
)

var evalNow = time.Date(2025, 1, 15, 8, 0, 5, 0, time.UTC)

func baseContext() DecisionContext {
	orgID := uuid.New()
	areaID := uuid.New()
	return DecisionContext{
		OrgID:     orgID,
		AttemptID: uuid.New(),
		AreaID:    areaID,
		Device: DeviceSnapshot{
			ID:     uuid.New(),
			OrgID:  orgID,
			AreaID: areaID,
			Active: true,
		},
		SubjectType:     domain.SubjectResident,
		PassDirection:   domain.DirectionIn,
		AuthMethod:      domain.AuthRFID,
		OccurredAt:      time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
		EffectiveZone:   time.UTC,
		DefaultDecision: domain.DecisionAllow,
	}
}

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)
	return loc
}

func dirPtr(d domain.PassDirection) *domain.PassDirection { return &d }
func methodPtr(m domain.AuthMethod) *domain.AuthMethod    { return &m }

func TestEvaluatePreconditions(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*DecisionContext)
		wantDetail string
	}{
		{
			name:       "missing org",
			mutate:     func(dc *DecisionContext) { dc.OrgID = uuid.Nil },
			wantDetail: "missing orgId",
		},
		{
			name:       "missing attempt",
			mutate:     func(dc *DecisionContext) { dc.AttemptID = uuid.Nil },
			wantDetail: "missing attemptId",
		},
		{
			name:       "missing area",
			mutate:     func(dc *DecisionContext) { dc.AreaID = uuid.Nil },
			wantDetail: "missing areaId",
		},
		{
			name:       "missing direction",
			mutate:     func(dc *DecisionContext) { dc.PassDirection = "" },
			wantDetail: "missing passDirection",
		},
		{
			name:       "missing auth method",
			mutate:     func(dc *DecisionContext) { dc.AuthMethod = "" },
			wantDetail: "missing authMethod",
		},
		{
			name:       "missing device snapshot",
			mutate:     func(dc *DecisionContext) { dc.Device.ID = uuid.Nil },
			wantDetail: "missing device snapshot",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dc := baseContext()
			tc.mutate(&dc)

			out := Evaluate(dc, nil, evalNow)

			assert.Equal(t, domain.DecisionError, out.Result)
			assert.Equal(t, domain.ReasonPolicyError, out.ReasonCode)
			assert.Equal(t, tc.wantDetail, out.ReasonDetail)
			assert.Empty(t, out.SuggestedCommand)
		})
	}
}

func TestEvaluateInactiveDevice(t *testing.T) {
	dc := baseContext()
	dc.Device.Active = false

	out := Evaluate(dc, nil, evalNow)

	assert.Equal(t, domain.DecisionDeny, out.Result)
	assert.Equal(t, domain.ReasonDeviceInactive, out.ReasonCode)
	assert.Equal(t, domain.CommandDenyWithSignal, out.SuggestedCommand)
}

func TestEvaluateUnknownSubject(t *testing.T) {
	for _, st := range []domain.SubjectType{"", domain.SubjectUnknown} {
		dc := baseContext()
		dc.SubjectType = st

		out := Evaluate(dc, nil, evalNow)

		assert.Equal(t, domain.DecisionDeny, out.Result)
		assert.Equal(t, domain.ReasonSubjectUnknown, out.ReasonCode)
		assert.Equal(t, domain.CommandDenyWithSignal, out.SuggestedCommand)
	}
}

func TestEvaluateDefaultAllowWithNoRules(t *testing.T) {
	dc := baseContext()

	out := Evaluate(dc, nil, evalNow)

	assert.Equal(t, domain.DecisionAllow, out.Result)
	assert.Equal(t, domain.ReasonAllow, out.ReasonCode)
	assert.Equal(t, domain.CommandOpenDoor, out.SuggestedCommand)
	assert.Equal(t, evalNow, out.DecidedAt)
	assert.Nil(t, out.ExpiresAt)
	assert.Nil(t, out.MatchedRuleID)
}

func TestEvaluateTenantDefaultDeny(t *testing.T) {
	dc := baseContext()
	dc.DefaultDecision = domain.DecisionDeny

	out := Evaluate(dc, nil, evalNow)

	assert.Equal(t, domain.DecisionDeny, out.Result)
	assert.Equal(t, domain.ReasonDefaultDeny, out.ReasonCode)
	assert.Equal(t, domain.CommandDenyWithSignal, out.SuggestedCommand)
}

func TestEvaluateOvernightDailyWindow(t *testing.T) {
	loc := bogota(t)
	rule := CandidateRule{
		ID:        uuid.New(),
		Action:    domain.ActionDeny,
		DailyFrom: "22:00",
		DailyTo:   "06:00",
		Priority:  10,
		UpdatedAt: evalNow.Add(-time.Hour),
	}

	// 08:00Z is 03:00 in Bogota: inside the overnight window.
	dc := baseContext()
	dc.EffectiveZone = loc
	dc.OccurredAt = time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	out := Evaluate(dc, []CandidateRule{rule}, evalNow)

	require.Equal(t, domain.DecisionDeny, out.Result)
	assert.Equal(t, domain.ReasonRuleMatch, out.ReasonCode)
	assert.Equal(t, domain.CommandDenyWithSignal, out.SuggestedCommand)
	require.NotNil(t, out.MatchedRuleID)
	assert.Equal(t, rule.ID, *out.MatchedRuleID)
	// The window occurrence closes at 06:00 local, 11:00Z.
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC), out.ExpiresAt.UTC())

	// 12:00Z is 07:00 in Bogota: outside the window, default applies.
	dc.OccurredAt = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	out = Evaluate(dc, []CandidateRule{rule}, evalNow)

	assert.Equal(t, domain.DecisionAllow, out.Result)
	assert.Equal(t, domain.ReasonAllow, out.ReasonCode)
}

func TestEvaluateOvernightWindowBeforeMidnightExpiresTomorrow(t *testing.T) {
	loc := bogota(t)
	rule := CandidateRule{
		ID:        uuid.New(),
		Action:    domain.ActionDeny,
		DailyFrom: "22:00",
		DailyTo:   "06:00",
		UpdatedAt: evalNow,
	}

	// 03:30Z on the 16th is 22:30 local on the 15th: window entered before
	// midnight, so it closes at 06:00 local on the 16th.
	dc := baseContext()
	dc.EffectiveZone = loc
	dc.OccurredAt = time.Date(2025, 1, 16, 3, 30, 0, 0, time.UTC)

	out := Evaluate(dc, []CandidateRule{rule}, evalNow)

	require.Equal(t, domain.DecisionDeny, out.Result)
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC), out.ExpiresAt.UTC())
}

func TestEvaluateValidityWindow(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	rule := CandidateRule{
		ID:        uuid.New(),
		Action:    domain.ActionAllow,
		ValidFrom: &from,
		ValidTo:   &to,
		Message:   "january pass",
		UpdatedAt: evalNow,
	}

	dc := baseContext()
	dc.DefaultDecision = domain.DecisionDeny

	out := Evaluate(dc, []CandidateRule{rule}, evalNow)

	require.Equal(t, domain.DecisionAllow, out.Result)
	assert.Equal(t, domain.ReasonRuleMatch, out.ReasonCode)
	assert.Equal(t, "january pass", out.SuggestedMessage)
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, to, out.ExpiresAt.UTC())

	// The end of the validity window is exclusive.
	dc.OccurredAt = to

	out = Evaluate(dc, []CandidateRule{rule}, evalNow)

	assert.Equal(t, domain.DecisionDeny, out.Result)
	assert.Equal(t, domain.ReasonDefaultDeny, out.ReasonCode)
}

func TestEvaluateWildcardMatchers(t *testing.T) {
	dc := baseContext()
	otherDevice := uuid.New()

	tests := []struct {
		name    string
		rule    CandidateRule
		matched bool
	}{
		{
			name:    "all wildcards match",
			rule:    CandidateRule{ID: uuid.New(), Action: domain.ActionDeny, UpdatedAt: evalNow},
			matched: true,
		},
		{
			name: "device matcher hit",
			rule: CandidateRule{
				ID: uuid.New(), Action: domain.ActionDeny,
				DeviceID: &dc.Device.ID, UpdatedAt: evalNow,
			},
			matched: true,
		},
		{
			name: "device matcher miss",
			rule: CandidateRule{
				ID: uuid.New(), Action: domain.ActionDeny,
				DeviceID: &otherDevice, UpdatedAt: evalNow,
			},
			matched: false,
		},
		{
			name: "direction matcher miss",
			rule: CandidateRule{
				ID: uuid.New(), Action: domain.ActionDeny,
				PassDirection: dirPtr(domain.DirectionOut), UpdatedAt: evalNow,
			},
			matched: false,
		},
		{
			name: "auth method matcher hit",
			rule: CandidateRule{
				ID: uuid.New(), Action: domain.ActionDeny,
				AuthMethod: methodPtr(domain.AuthRFID), UpdatedAt: evalNow,
			},
			matched: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Evaluate(dc, []CandidateRule{tc.rule}, evalNow)
			if tc.matched {
				assert.Equal(t, domain.DecisionDeny, out.Result)
				assert.Equal(t, domain.ReasonRuleMatch, out.ReasonCode)
			} else {
				assert.Equal(t, domain.DecisionAllow, out.Result)
				assert.Equal(t, domain.ReasonAllow, out.ReasonCode)
			}
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	dc := baseContext()

	t.Run("priority wins", func(t *testing.T) {
		low := CandidateRule{ID: uuid.New(), Action: domain.ActionAllow, Priority: 5, UpdatedAt: evalNow}
		high := CandidateRule{ID: uuid.New(), Action: domain.ActionDeny, Priority: 10, UpdatedAt: evalNow.Add(-time.Hour)}

		out := Evaluate(dc, []CandidateRule{low, high}, evalNow)

		require.NotNil(t, out.MatchedRuleID)
		assert.Equal(t, high.ID, *out.MatchedRuleID)
		assert.Equal(t, domain.DecisionDeny, out.Result)
	})

	t.Run("specificity breaks priority ties", func(t *testing.T) {
		broad := CandidateRule{ID: uuid.New(), Action: domain.ActionAllow, Priority: 5, UpdatedAt: evalNow}
		specific := CandidateRule{
			ID: uuid.New(), Action: domain.ActionDeny, Priority: 5,
			DeviceID:   &dc.Device.ID,
			AuthMethod: methodPtr(domain.AuthRFID),
			UpdatedAt:  evalNow.Add(-time.Hour),
		}

		out := Evaluate(dc, []CandidateRule{broad, specific}, evalNow)

		require.NotNil(t, out.MatchedRuleID)
		assert.Equal(t, specific.ID, *out.MatchedRuleID)
	})

	t.Run("newest update breaks remaining ties", func(t *testing.T) {
		older := CandidateRule{ID: uuid.New(), Action: domain.ActionAllow, Priority: 5, UpdatedAt: evalNow.Add(-2 * time.Hour)}
		newer := CandidateRule{ID: uuid.New(), Action: domain.ActionDeny, Priority: 5, UpdatedAt: evalNow.Add(-time.Hour)}

		out := Evaluate(dc, []CandidateRule{older, newer}, evalNow)

		require.NotNil(t, out.MatchedRuleID)
		assert.Equal(t, newer.ID, *out.MatchedRuleID)
	})
}

func TestEvaluateDeterminism(t *testing.T) {
	dc := baseContext()
	rules := []CandidateRule{
		{ID: uuid.New(), Action: domain.ActionDeny, Priority: 3, UpdatedAt: evalNow.Add(-time.Minute)},
		{ID: uuid.New(), Action: domain.ActionAllow, Priority: 3, UpdatedAt: evalNow.Add(-time.Second)},
	}

	first := Evaluate(dc, rules, evalNow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(dc, rules, evalNow))
	}
}
