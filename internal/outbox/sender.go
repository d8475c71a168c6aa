package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// Error codes stamped on outbox rows. TIMEOUT and CONNECTION are the
// retryable transport classes; everything not retryable parks the row as
// FAILED on the first occurrence.
const (
	ErrCodeTimeout       = "TIMEOUT"
	ErrCodeConnection    = "CONNECTION"
	ErrCodeOversize      = "OVERSIZE"
	ErrCodeConfiguration = "CONFIGURATION"
	ErrCodeSerialization = "JSON_SERIALIZATION"
	ErrCodeUnknown       = "UNKNOWN"
)

// How long a single publish may block before it is classified as TIMEOUT.
const publishTimeout = 5 * time.Second

// SendError is the classified outcome of a failed publish. Retryable
// errors reschedule the row; terminal ones mark it FAILED immediately.
// HTTPStatus and RetryAfter are optional transport hints (zero = absent).
type SendError struct {
	Code       string
	HTTPStatus int
	Message    string
	Retryable  bool
	RetryAfter time.Duration
}

func (e *SendError) Error() string {
	return fmt.Sprintf("outbox send failed (%s): %s", e.Code, e.Message)
}

// Envelope is the fixed on-wire shape. Payload carries the stored event
// JSON verbatim; consumers deserialize it by event_type.
type Envelope struct {
	EventID       string          `json:"event_id"`
	OrgID         string          `json:"org_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Attempts      int32           `json:"attempts"`
	Payload       json.RawMessage `json:"payload"`
}

func newEnvelope(ev db.OutboxEvent) Envelope {
	return Envelope{
		EventID:       uuid.UUID(ev.ID.Bytes).String(),
		OrgID:         uuid.UUID(ev.OrganizationID.Bytes).String(),
		EventType:     ev.EventType,
		AggregateType: ev.AggregateType,
		AggregateID:   ev.AggregateID,
		CreatedAt:     ev.CreatedAt.Time.UTC(),
		Attempts:      ev.Attempts,
		Payload:       json.RawMessage(ev.Payload),
	}
}

// Sender publishes a claimed outbox row to the bus. Failures must be
// returned as *SendError so the dispatcher can decide retry vs FAILED.
type Sender interface {
	Send(ctx context.Context, ev db.OutboxEvent) error
}

// BusSender publishes envelopes to JetStream on the per-tenant access
// event subject. The tenant id doubles as the routing key, which keeps
// delivery ordered per organization.
type BusSender struct {
	nc  *natsclient.Client
	log *zap.Logger
}

func NewBusSender(nc *natsclient.Client, logger *zap.Logger) *BusSender {
	return &BusSender{nc: nc, log: logger}
}

func (s *BusSender) Send(ctx context.Context, ev db.OutboxEvent) error {
	env := newEnvelope(ev)
	data, err := json.Marshal(env)
	if err != nil {
		return &SendError{Code: ErrCodeSerialization, Retryable: false, Message: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	subject := natsclient.SubjectForOrg(env.OrgID)
	// Msg-Id mirrors the row id so JetStream drops duplicates from a
	// retried publish whose ack was lost.
	_, err = s.nc.JS.Publish(subject, data, nats.Context(ctx), nats.MsgId(env.EventID))
	if err != nil {
		return classify(err)
	}
	return nil
}

// classify maps transport errors onto the retry contract. Unknown errors
// are treated as retryable so a new failure mode never silently parks
// rows as FAILED.
func classify(err error) *SendError {
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, nats.ErrTimeout),
		errors.Is(err, nats.ErrNoStreamResponse):
		return &SendError{Code: ErrCodeTimeout, Retryable: true, Message: err.Error()}

	case errors.Is(err, nats.ErrConnectionClosed),
		errors.Is(err, nats.ErrConnectionDraining),
		errors.Is(err, nats.ErrConnectionReconnecting),
		errors.Is(err, nats.ErrInvalidConnection),
		errors.Is(err, nats.ErrNoServers),
		errors.Is(err, nats.ErrDisconnected):
		return &SendError{Code: ErrCodeConnection, Retryable: true, Message: err.Error()}

	case errors.Is(err, nats.ErrMaxPayload):
		return &SendError{Code: ErrCodeOversize, Retryable: false, Message: err.Error()}

	case errors.Is(err, nats.ErrBadSubject):
		return &SendError{Code: ErrCodeConfiguration, Retryable: false, Message: err.Error()}

	default:
		return &SendError{Code: ErrCodeUnknown, Retryable: true, Message: err.Error()}
	}
}
