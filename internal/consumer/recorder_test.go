package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/mock"
)

const (
	testEventID     = "11111111-1111-1111-1111-111111111111"
	testOrgID       = "22222222-2222-2222-2222-222222222222"
	testAggregateID = "33333333-3333-3333-3333-333333333333"
)

var testCreatedAt = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func marshalEnvelope(t *testing.T, env outbox.Envelope) []byte {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return data
}

func executedEnvelope() outbox.Envelope {
	return outbox.Envelope{
		EventID:       testEventID,
		OrgID:         testOrgID,
		EventType:     domain.EventTypeCommandExecuted,
		AggregateType: domain.AggregateDeviceCommand,
		AggregateID:   testAggregateID,
		CreatedAt:     testCreatedAt,
		Attempts:      1,
		Payload:       json.RawMessage(`{"command_id":"` + testAggregateID + `","state":"EXECUTED"}`),
	}
}

func TestRecordPersistsAuditRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := executedEnvelope()
	wantKey := testOrgID + "|" + domain.EventTypeCommandExecuted + "|" + testEventID

	q := mock.NewMockQuerier(ctrl)
	q.EXPECT().
		AuditLogExists(gomock.Any(), db.AuditLogExistsParams{
			OrganizationID: mustPgUUID(t, testOrgID),
			EventKey:       wantKey,
		}).
		Return(false, nil)
	q.EXPECT().
		InsertAuditLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertAuditLogParams) error {
			assert.Equal(t, mustPgUUID(t, testEventID), arg.ID)
			assert.Equal(t, mustPgUUID(t, testOrgID), arg.OrganizationID)
			assert.Equal(t, domain.EventTypeCommandExecuted, arg.EventType)
			assert.Equal(t, domain.AggregateDeviceCommand, arg.AggregateType.String)
			assert.Equal(t, testAggregateID, arg.AggregateID.String)
			assert.False(t, arg.CorrelationID.Valid)
			assert.Equal(t, testCreatedAt, arg.OccurredAt.Time)
			assert.JSONEq(t, string(env.Payload), string(arg.Payload))
			assert.Equal(t, wantKey, arg.EventKey)
			return nil
		})

	rec := newRecorder(q, zaptest.NewLogger(t))
	outcome, err := rec.record(context.Background(), marshalEnvelope(t, env))
	require.NoError(t, err)
	assert.Equal(t, recordPersisted, outcome)
}

func TestRecordSkipsUnauditedEventType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := executedEnvelope()
	env.EventType = "maintenance.window.opened"

	// No querier expectations: a skipped event never reaches the database.
	q := mock.NewMockQuerier(ctrl)

	rec := newRecorder(q, zaptest.NewLogger(t))
	outcome, err := rec.record(context.Background(), marshalEnvelope(t, env))
	require.NoError(t, err)
	assert.Equal(t, recordSkipped, outcome)
}

func TestRecordDedupsExistingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mock.NewMockQuerier(ctrl)
	q.EXPECT().
		AuditLogExists(gomock.Any(), gomock.Any()).
		Return(true, nil)

	rec := newRecorder(q, zaptest.NewLogger(t))
	outcome, err := rec.record(context.Background(), marshalEnvelope(t, executedEnvelope()))
	require.NoError(t, err)
	assert.Equal(t, recordDeduped, outcome)
}

func TestRecordUniqueViolationRaceIsDedupSuccess(t *testing.T) {
	// Two deliveries race past the existence check; the loser's insert
	// hits the unique index and must count as dedup, not failure.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mock.NewMockQuerier(ctrl)
	q.EXPECT().AuditLogExists(gomock.Any(), gomock.Any()).Return(false, nil)
	q.EXPECT().
		InsertAuditLog(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "audit_logs_org_event_key_key"})

	rec := newRecorder(q, zaptest.NewLogger(t))
	outcome, err := rec.record(context.Background(), marshalEnvelope(t, executedEnvelope()))
	require.NoError(t, err)
	assert.Equal(t, recordDeduped, outcome)
}

func TestRecordMalformedEnvelope(t *testing.T) {
	rec := newRecorder(nil, zaptest.NewLogger(t))

	_, err := rec.record(context.Background(), []byte(`{not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errMalformed)
}

func TestRecordBadOrgUUIDIsMalformed(t *testing.T) {
	env := executedEnvelope()
	env.OrgID = "not-a-uuid"

	rec := newRecorder(nil, zaptest.NewLogger(t))
	_, err := rec.record(context.Background(), marshalEnvelope(t, env))
	require.Error(t, err)
	assert.ErrorIs(t, err, errMalformed)
}

func TestRecordInsertFailureIsNotMalformed(t *testing.T) {
	// A database outage must be distinguishable from poison so the DLQ
	// retry has a chance of succeeding.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mock.NewMockQuerier(ctrl)
	q.EXPECT().AuditLogExists(gomock.Any(), gomock.Any()).Return(false, nil)
	q.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	rec := newRecorder(q, zaptest.NewLogger(t))
	_, err := rec.record(context.Background(), marshalEnvelope(t, executedEnvelope()))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errMalformed)
}

func TestRecordLiftsCorrelationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := executedEnvelope()
	env.Payload = json.RawMessage(`{"state":"EXECUTED","correlation_id":"req-4711"}`)

	q := mock.NewMockQuerier(ctrl)
	q.EXPECT().AuditLogExists(gomock.Any(), gomock.Any()).Return(false, nil)
	q.EXPECT().
		InsertAuditLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.InsertAuditLogParams) error {
			assert.True(t, arg.CorrelationID.Valid)
			assert.Equal(t, "req-4711", arg.CorrelationID.String)
			return nil
		})

	rec := newRecorder(q, zaptest.NewLogger(t))
	_, err := rec.record(context.Background(), marshalEnvelope(t, env))
	require.NoError(t, err)
}

func TestEventKey(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		eventID   string
		want      string
	}{
		{
			name:      "policy change keys by event id",
			eventType: domain.EventTypePolicyChanged,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypePolicyChanged + "|" + testEventID,
		},
		{
			name:      "rejection keys by event id",
			eventType: domain.EventTypeChangeRejected,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypeChangeRejected + "|" + testEventID,
		},
		{
			name:      "executed command keys by event id",
			eventType: domain.EventTypeCommandExecuted,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypeCommandExecuted + "|" + testEventID,
		},
		{
			name:      "attempt keys by aggregate",
			eventType: domain.EventTypeAttemptRegistered,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypeAttemptRegistered + "|" + testAggregateID,
		},
		{
			name:      "decision keys by aggregate",
			eventType: domain.EventTypeDecisionTaken,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypeDecisionTaken + "|" + testAggregateID,
		},
		{
			name:      "emitted command keys by aggregate",
			eventType: domain.EventTypeCommandEmitted,
			eventID:   testEventID,
			want:      testOrgID + "|" + domain.EventTypeCommandEmitted + "|" + testAggregateID,
		},
		{
			name:      "executed command without event id falls back to timestamp",
			eventType: domain.EventTypeCommandExecuted,
			eventID:   "",
			want:      testOrgID + "|" + domain.EventTypeCommandExecuted + "|" + testAggregateID + "|1741615200000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := outbox.Envelope{
				EventID:     tt.eventID,
				OrgID:       testOrgID,
				EventType:   tt.eventType,
				AggregateID: testAggregateID,
				CreatedAt:   testCreatedAt,
			}
			assert.Equal(t, tt.want, eventKey(env))
		})
	}
}

func TestEventKeyIsStableAcrossRedeliveries(t *testing.T) {
	// The same envelope must derive the same key no matter how often the
	// bus redelivers it; the attempts counter plays no part.
	env := executedEnvelope()
	first := eventKey(env)

	env.Attempts = 4
	assert.Equal(t, first, eventKey(env))
}

func mustPgUUID(t *testing.T, s string) (u pgtype.UUID) {
	t.Helper()
	require.NoError(t, u.Scan(s))
	return u
}
