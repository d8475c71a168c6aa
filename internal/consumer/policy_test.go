package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/zone"
)

var (
	policyOrg   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	policyAreaA = uuid.MustParse("aaaaaaaa-0000-0000-0000-00000000000a")
	policyAreaB = uuid.MustParse("aaaaaaaa-0000-0000-0000-00000000000b")
	otherOrg    = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001")
)

func policyEnvelope(t *testing.T, ev domain.PolicyChanged) []byte {
	t.Helper()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	return marshalEnvelope(t, outbox.Envelope{
		EventID:       ev.ID.String(),
		OrgID:         ev.OrgID.String(),
		EventType:     domain.EventTypePolicyChanged,
		AggregateType: ev.AggregateType(),
		AggregateID:   ev.AggregateID(),
		CreatedAt:     testCreatedAt,
		Payload:       payload,
	})
}

func seedRules(t *testing.T, c *rulecache.Cache, org, area uuid.UUID) {
	t.Helper()
	key := rulecache.Key{OrgID: org, AreaID: area, SubjectType: domain.SubjectResident}
	_, err := c.Get(context.Background(), key, func(context.Context) ([]db.AccessRule, error) {
		return []db.AccessRule{}, nil
	})
	require.NoError(t, err)
}

func newPolicyConsumer(t *testing.T, rules *rulecache.Cache, zones *zone.Provider) *PolicyConsumer {
	t.Helper()
	return NewPolicyConsumer(nil, rules, zones, "node-test", zaptest.NewLogger(t))
}

func TestPolicyChangeInvalidatesArea(t *testing.T) {
	rules := rulecache.New()
	seedRules(t, rules, policyOrg, policyAreaA)
	seedRules(t, rules, policyOrg, policyAreaB)

	p := newPolicyConsumer(t, rules, nil)

	area := policyAreaA
	ruleID := uuid.New()
	err := p.processEvent(context.Background(), policyEnvelope(t, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      policyOrg,
		AreaID:     &area,
		RuleID:     &ruleID,
		ChangeType: domain.ChangeCreated,
		OccurredAt: testCreatedAt,
	}))
	require.NoError(t, err)

	// The sibling area's snapshot must survive.
	assert.Equal(t, 1, rules.Len())
}

func TestPolicyChangeWithoutAreaInvalidatesOrg(t *testing.T) {
	rules := rulecache.New()
	seedRules(t, rules, policyOrg, policyAreaA)
	seedRules(t, rules, policyOrg, policyAreaB)
	seedRules(t, rules, otherOrg, policyAreaA)

	p := newPolicyConsumer(t, rules, nil)

	err := p.processEvent(context.Background(), policyEnvelope(t, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      policyOrg,
		ChangeType: domain.ChangeUpdated,
		OccurredAt: testCreatedAt,
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, rules.Len(), "only the other tenant's snapshot survives")
}

func TestInvalidateAllRequestedFlushesEverything(t *testing.T) {
	rules := rulecache.New()
	seedRules(t, rules, policyOrg, policyAreaA)
	seedRules(t, rules, otherOrg, policyAreaB)

	p := newPolicyConsumer(t, rules, zone.NewProvider(nil, zaptest.NewLogger(t)))

	err := p.processEvent(context.Background(), policyEnvelope(t, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      policyOrg,
		ChangeType: domain.ChangeInvalidateAllReq,
		OccurredAt: testCreatedAt,
	}))
	require.NoError(t, err)

	assert.Equal(t, 0, rules.Len())
}

func TestAreaZoneUpdateDropsCachedZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mock.NewMockQuerier(ctrl)
	// Two resolutions: the warm-up load and the reload after invalidation
	// prove the cached entry was dropped in between.
	q.EXPECT().
		GetArea(gomock.Any(), gomock.Any()).
		Return(db.Area{
			ID:             pgtype.UUID{Bytes: policyAreaA, Valid: true},
			OrganizationID: pgtype.UUID{Bytes: policyOrg, Valid: true},
			Name:           "North Gate",
			TimezoneID:     pgtype.Text{String: "America/Bogota", Valid: true},
		}, nil).
		Times(2)

	zones := zone.NewProvider(q, zaptest.NewLogger(t))
	loc := zones.ZoneForArea(context.Background(), policyOrg, policyAreaA)
	require.Equal(t, "America/Bogota", loc.String())

	p := newPolicyConsumer(t, rulecache.New(), zones)

	area := policyAreaA
	err := p.processEvent(context.Background(), policyEnvelope(t, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      policyOrg,
		AreaID:     &area,
		ChangeType: domain.ChangeAreaZoneUpdated,
		OccurredAt: testCreatedAt,
	}))
	require.NoError(t, err)

	zones.ZoneForArea(context.Background(), policyOrg, policyAreaA)
}

func TestNonPolicyEventsAreIgnored(t *testing.T) {
	rules := rulecache.New()
	seedRules(t, rules, policyOrg, policyAreaA)

	p := newPolicyConsumer(t, rules, nil)

	err := p.processEvent(context.Background(), marshalEnvelope(t, executedEnvelope()))
	require.NoError(t, err)
	assert.Equal(t, 1, rules.Len(), "non-policy traffic must not touch the cache")
}

func TestUnknownChangeTypeLeavesCachesAlone(t *testing.T) {
	rules := rulecache.New()
	seedRules(t, rules, policyOrg, policyAreaA)

	p := newPolicyConsumer(t, rules, nil)

	err := p.processEvent(context.Background(), policyEnvelope(t, domain.PolicyChanged{
		ID:         uuid.New(),
		OrgID:      policyOrg,
		ChangeType: domain.ChangeType("REBALANCED"),
		OccurredAt: testCreatedAt,
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, rules.Len())
}

func TestPolicyEventMalformedPayloadErrors(t *testing.T) {
	p := newPolicyConsumer(t, rulecache.New(), nil)

	env := outbox.Envelope{
		EventID:   uuid.NewString(),
		OrgID:     policyOrg.String(),
		EventType: domain.EventTypePolicyChanged,
		CreatedAt: testCreatedAt,
		Payload:   json.RawMessage(`"not an object"`),
	}
	err := p.processEvent(context.Background(), marshalEnvelope(t, env))
	require.Error(t, err)
}
