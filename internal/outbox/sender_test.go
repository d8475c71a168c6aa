package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  string
		retryable bool
	}{
		{"publish deadline", context.DeadlineExceeded, ErrCodeTimeout, true},
		{"nats timeout", nats.ErrTimeout, ErrCodeTimeout, true},
		{"no stream response", nats.ErrNoStreamResponse, ErrCodeTimeout, true},
		{"connection closed", nats.ErrConnectionClosed, ErrCodeConnection, true},
		{"draining", nats.ErrConnectionDraining, ErrCodeConnection, true},
		{"reconnecting", nats.ErrConnectionReconnecting, ErrCodeConnection, true},
		{"no servers", nats.ErrNoServers, ErrCodeConnection, true},
		{"disconnected", nats.ErrDisconnected, ErrCodeConnection, true},
		{"oversize", nats.ErrMaxPayload, ErrCodeOversize, false},
		{"bad subject", nats.ErrBadSubject, ErrCodeConfiguration, false},
		{"anything else", errors.New("split brain"), ErrCodeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.retryable, got.Retryable)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestClassifyWrappedErrors(t *testing.T) {
	got := classify(errors.Join(errors.New("publish"), nats.ErrMaxPayload))
	assert.Equal(t, ErrCodeOversize, got.Code)
	assert.False(t, got.Retryable)
}

func TestEnvelopeCarriesPayloadVerbatim(t *testing.T) {
	id := uuid.New()
	org := uuid.New()
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	payload := []byte(`{"event_id":"x","custom":42}`)

	env := newEnvelope(db.OutboxEvent{
		ID:             pgtype.UUID{Bytes: id, Valid: true},
		OrganizationID: pgtype.UUID{Bytes: org, Valid: true},
		EventType:      "access.decision.taken",
		AggregateType:  "ACCESS_DECISION",
		AggregateID:    "agg-1",
		Payload:        payload,
		Attempts:       2,
		CreatedAt:      pgtype.Timestamptz{Time: created, Valid: true},
	})

	assert.Equal(t, id.String(), env.EventID)
	assert.Equal(t, org.String(), env.OrgID)
	assert.Equal(t, "access.decision.taken", env.EventType)
	assert.Equal(t, "ACCESS_DECISION", env.AggregateType)
	assert.Equal(t, "agg-1", env.AggregateID)
	assert.Equal(t, created, env.CreatedAt)
	assert.Equal(t, int32(2), env.Attempts)
	assert.Equal(t, json.RawMessage(payload), env.Payload)

	// The envelope must round-trip with the payload untouched.
	data, err := json.Marshal(env)
	require.NoError(t, err)
	var back Envelope
	require.NoError(t, json.Unmarshal(data, &back))
	assert.JSONEq(t, string(payload), string(back.Payload))
}

func TestSendClassifiesBrokenPayloadAsTerminal(t *testing.T) {
	// Marshalling fails before the connection is touched, so no client
	// is needed.
	s := NewBusSender(nil, zaptest.NewLogger(t))

	err := s.Send(context.Background(), db.OutboxEvent{
		ID:             pgtype.UUID{Bytes: uuid.New(), Valid: true},
		OrganizationID: pgtype.UUID{Bytes: uuid.New(), Valid: true},
		EventType:      "access.decision.taken",
		Payload:        []byte(`{not json`),
	})

	var se *SendError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ErrCodeSerialization, se.Code)
	assert.False(t, se.Retryable)
}
