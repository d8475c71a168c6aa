// Package consumer holds the JetStream pull consumers: the audit
// recorder that turns bus envelopes into audit_logs rows, the DLQ
// reprocessor that retries failed envelopes once, and the policy-change
// listener that keeps per-node caches coherent across the cluster.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// errMalformed marks envelopes that can never be persisted no matter how
// often they are retried. The dead letter carries the label so a human
// reading the parking lot can tell poison from outage.
var errMalformed = errors.New("malformed envelope")

// auditable lists the event types the audit trail keeps. Everything else
// on the stream is acked and dropped.
var auditable = map[string]struct{}{
	domain.EventTypeAttemptRegistered: {},
	domain.EventTypeDecisionTaken:     {},
	domain.EventTypeCommandEmitted:    {},
	domain.EventTypeCommandExecuted:   {},
	domain.EventTypePolicyChanged:     {},
	domain.EventTypeChangeRejected:    {},
}

// recordOutcome says what happened to one envelope.
type recordOutcome int

const (
	recordSkipped   recordOutcome = iota // event type not audited
	recordDeduped                        // row already present
	recordPersisted                      // new row committed
)

// recorder persists bus envelopes as audit_logs rows. Both the live
// consumer and the DLQ reprocessor funnel through record, so a retried
// envelope follows exactly the first-pass rules. The querier is
// pool-backed; every insert commits in its own transaction and a bad
// envelope cannot poison its batch.
type recorder struct {
	querier db.Querier
	log     *zap.Logger
	tracer  trace.Tracer
}

func newRecorder(querier db.Querier, logger *zap.Logger) *recorder {
	return &recorder{querier: querier, log: logger, tracer: otel.Tracer("acp/audit")}
}

// record decodes one raw bus message and writes the audit row. It takes
// plain bytes rather than NATS types; tests drive it directly.
func (r *recorder) record(ctx context.Context, data []byte) (recordOutcome, error) {
	var env outbox.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, fmt.Errorf("%w: %v", errMalformed, err)
	}

	if _, ok := auditable[env.EventType]; !ok {
		r.log.Debug("skipping unaudited event type",
			zap.String("event_type", env.EventType),
			zap.String("event_id", env.EventID),
		)
		return recordSkipped, nil
	}

	orgID, err := parseStringUUID(env.OrgID)
	if err != nil {
		return 0, fmt.Errorf("%w: org_id: %v", errMalformed, err)
	}
	eventID, err := parseStringUUID(env.EventID)
	if err != nil {
		return 0, fmt.Errorf("%w: event_id: %v", errMalformed, err)
	}

	key := eventKey(env)

	// Producers stamp their span ids into the payload; resuming that trace
	// here joins the audit write to the request that caused it.
	ctx = extractTraceContext(ctx, env.Payload)
	ctx, span := r.tracer.Start(ctx, "audit.record")
	defer span.End()

	// Cheap pre-check; the unique index on (organization_id, event_key)
	// is the real guard when two deliveries race past it.
	exists, err := r.querier.AuditLogExists(ctx, db.AuditLogExistsParams{
		OrganizationID: orgID,
		EventKey:       key,
	})
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("audit dedup check: %w", err)
	}
	if exists {
		return recordDeduped, nil
	}

	err = r.querier.InsertAuditLog(ctx, db.InsertAuditLogParams{
		ID:             eventID,
		OrganizationID: orgID,
		EventType:      env.EventType,
		AggregateType:  pgText(env.AggregateType),
		AggregateID:    pgText(env.AggregateID),
		CorrelationID:  correlationID(env.Payload),
		OccurredAt:     pgtype.Timestamptz{Time: env.CreatedAt, Valid: true},
		Payload:        []byte(env.Payload),
		EventKey:       key,
	})
	if err != nil {
		if isDuplicateKeyError(err) {
			// Lost the insert race to a concurrent delivery. The row is
			// there, which is all the trail needs.
			return recordDeduped, nil
		}
		span.RecordError(err)
		return 0, fmt.Errorf("audit insert: %w", err)
	}

	r.log.Debug("audit log persisted",
		zap.String("event_id", env.EventID),
		zap.String("event_type", env.EventType),
		zap.String("event_key", key),
	)
	return recordPersisted, nil
}

// eventKey derives the dedup identity of an envelope. Events that carry
// their own id are keyed by it; the intake trio is keyed by aggregate
// because a republished row keeps the aggregate but may mint a fresh
// envelope. Anything else falls back to aggregate plus creation instant.
func eventKey(env outbox.Envelope) string {
	switch env.EventType {
	case domain.EventTypePolicyChanged, domain.EventTypeChangeRejected, domain.EventTypeCommandExecuted:
		if env.EventID != "" {
			return env.OrgID + "|" + env.EventType + "|" + env.EventID
		}
	case domain.EventTypeAttemptRegistered, domain.EventTypeDecisionTaken, domain.EventTypeCommandEmitted:
		if env.AggregateID != "" {
			return env.OrgID + "|" + env.EventType + "|" + env.AggregateID
		}
	}
	return fmt.Sprintf("%s|%s|%s|%d", env.OrgID, env.EventType, env.AggregateID, env.CreatedAt.UTC().UnixMilli())
}

// correlationID lifts an optional correlation_id out of the payload.
// Producers that do not stamp one leave the column NULL.
func correlationID(payload json.RawMessage) pgtype.Text {
	var probe struct {
		CorrelationID string `json:"correlation_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil || probe.CorrelationID == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: probe.CorrelationID, Valid: true}
}

// parseStringUUID scans a hex UUID string into pgtype.UUID. The envelope
// carries plain strings; pgtype.UUID's own UnmarshalJSON expects the
// Postgres wire format and would zero out on hex input.
func parseStringUUID(s string) (pgtype.UUID, error) {
	var u pgtype.UUID
	if err := u.Scan(s); err != nil {
		return pgtype.UUID{}, fmt.Errorf("parse uuid %q: %w", s, err)
	}
	return u, nil
}

func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// isDuplicateKeyError reports a Postgres unique_violation (23505).
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// extractTraceContext rebuilds the remote span context a producer stamped
// into the payload, so the consumer span joins the originating request's
// trace across the bus boundary. Payloads without valid ids leave the
// context untouched.
func extractTraceContext(ctx context.Context, payload json.RawMessage) context.Context {
	var probe struct {
		TraceID string `json:"trace_id"`
		SpanID  string `json:"span_id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ctx
	}
	traceID, err := trace.TraceIDFromHex(probe.TraceID)
	if err != nil {
		return ctx
	}
	spanID, err := trace.SpanIDFromHex(probe.SpanID)
	if err != nil {
		return ctx
	}
	remote := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, remote)
}
