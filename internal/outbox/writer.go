package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel/trace"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// ErrMissingTenant reports an event without an organization id. Every
// event is tenant-scoped; hitting this is a programming error and must
// abort the surrounding transaction.
var ErrMissingTenant = errors.New("outbox: event carries no organization id")

// Writer persists domain events next to the state change that produced
// them. Publish must be given the transaction-bound querier of that
// mutation so the event and the rows it describes commit or roll back
// together; the dispatcher takes over once the transaction is visible.
type Writer struct {
	clock clock.Clock
}

func NewWriter(clk clock.Clock) *Writer {
	return &Writer{clock: clk}
}

func (w *Writer) Publish(ctx context.Context, q db.Querier, event domain.Event) error {
	orgID := event.OrganizationID()
	if orgID == uuid.Nil {
		return ErrMissingTenant
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("outbox: marshal %s payload: %w", event.EventType(), err)
	}
	payload = stampTraceContext(ctx, payload)

	// Events that carry their own id reuse it as the row id, so the
	// envelope and the payload agree on event identity.
	id := uuid.New()
	if ident, ok := event.(domain.Identifiable); ok && ident.EventID() != uuid.Nil {
		id = ident.EventID()
	}

	aggregateType := event.AggregateType()
	if aggregateType == "" {
		aggregateType = domain.AggregateUnknown
	}

	return q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:             pgtype.UUID{Bytes: id, Valid: true},
		OrganizationID: pgtype.UUID{Bytes: orgID, Valid: true},
		EventType:      event.EventType(),
		AggregateType:  aggregateType,
		AggregateID:    event.AggregateID(),
		Payload:        payload,
		CreatedAt:      pgtype.Timestamptz{Time: w.clock.Now(), Valid: true},
	})
}

// stampTraceContext adds the live span ids to the payload so consumers on
// the far side of the bus can join their spans to the producing request's
// trace. Payloads pass through untouched when no span is recording.
func stampTraceContext(ctx context.Context, payload []byte) []byte {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return payload
	}

	var m map[string]interface{}
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	m["trace_id"] = sc.TraceID().String()
	m["span_id"] = sc.SpanID().String()

	stamped, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return stamped
}
