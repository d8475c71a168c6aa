package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// auditDurable is shared by every audit node so the stream is drained as
// a work queue: each envelope is delivered to exactly one instance.
const auditDurable = "audit-recorder"

const fetchBatch = 10

// DeadLetter wraps an envelope the pipeline could not persist. Envelope
// keeps the original message verbatim so the reprocessor replays exactly
// what the recorder saw.
type DeadLetter struct {
	Envelope json.RawMessage `json:"envelope"`
	Subject  string          `json:"subject"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failed_at"`
}

// AuditConsumer persists every auditable bus event into audit_logs.
// Envelopes that fail for any reason beyond dedup are published to the
// DLQ and acked, so one broken message can never wedge the stream.
type AuditConsumer struct {
	nc  *natsclient.Client
	rec *recorder
	log *zap.Logger

	consumedCnt  metric.Int64Counter
	skippedCnt   metric.Int64Counter
	dedupedCnt   metric.Int64Counter
	persistedCnt metric.Int64Counter
	deadCnt      metric.Int64Counter
}

func NewAuditConsumer(nc *natsclient.Client, querier db.Querier, logger *zap.Logger) *AuditConsumer {
	c := &AuditConsumer{
		nc:  nc,
		rec: newRecorder(querier, logger),
		log: logger,
	}

	meter := otel.Meter("acp/audit")
	c.consumedCnt, _ = meter.Int64Counter("acp.audit.consumed.total",
		metric.WithDescription("Envelopes fetched from the access-events stream"),
	)
	c.skippedCnt, _ = meter.Int64Counter("acp.audit.skipped.total",
		metric.WithDescription("Envelopes dropped for unaudited event types"),
	)
	c.dedupedCnt, _ = meter.Int64Counter("acp.audit.deduped.total",
		metric.WithDescription("Envelopes whose audit row already existed"),
	)
	c.persistedCnt, _ = meter.Int64Counter("acp.audit.persisted.total",
		metric.WithDescription("Audit rows committed"),
	)
	c.deadCnt, _ = meter.Int64Counter("acp.audit.dead_lettered.total",
		metric.WithDescription("Envelopes parked on the DLQ"),
	)
	return c
}

// Start binds the durable pull subscription and processes batches until
// ctx is cancelled.
func (c *AuditConsumer) Start(ctx context.Context) error {
	sub, err := c.nc.JS.PullSubscribe(
		natsclient.SubjectAccessEvents,
		auditDurable,
		nats.BindStream(natsclient.StreamAccessEvents),
	)
	if err != nil {
		return err
	}

	c.log.Info("audit consumer started",
		zap.String("stream", natsclient.StreamAccessEvents),
		zap.String("durable", auditDurable),
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msgs, err := sub.Fetch(fetchBatch, nats.Context(ctx))
				if err != nil {
					continue // fetch timeout or shutdown
				}
				for _, msg := range msgs {
					c.processMessage(ctx, msg)
				}
			}
		}
	}()

	return nil
}

// processMessage maps the record outcome onto the ack protocol. Acks are
// sent only after the database said yes; a failed DLQ publish leaves the
// message unacked so JetStream redelivers it.
func (c *AuditConsumer) processMessage(ctx context.Context, msg *nats.Msg) {
	c.consumedCnt.Add(ctx, 1)

	outcome, err := c.rec.record(ctx, msg.Data)
	if err == nil {
		switch outcome {
		case recordSkipped:
			c.skippedCnt.Add(ctx, 1)
		case recordDeduped:
			c.dedupedCnt.Add(ctx, 1)
		case recordPersisted:
			c.persistedCnt.Add(ctx, 1)
		}
		msg.Ack()
		return
	}

	if derr := c.deadLetter(ctx, msg, err); derr != nil {
		c.log.Error("dead-letter publish failed, leaving message for redelivery",
			zap.String("subject", msg.Subject),
			zap.NamedError("record_error", err),
			zap.Error(derr),
		)
		msg.Nak()
		return
	}

	c.deadCnt.Add(ctx, 1)
	msg.Ack()
}

// deadLetter forwards a failed envelope, verbatim, to the DLQ subject.
func (c *AuditConsumer) deadLetter(ctx context.Context, msg *nats.Msg, cause error) error {
	reason := cause.Error()
	if errors.Is(cause, errMalformed) {
		c.log.Warn("malformed envelope routed to DLQ", zap.String("subject", msg.Subject), zap.Error(cause))
	} else {
		c.log.Error("audit record failed, routing to DLQ", zap.String("subject", msg.Subject), zap.Error(cause))
	}

	dl := DeadLetter{
		Envelope: json.RawMessage(msg.Data),
		Subject:  msg.Subject,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(dl)
	if err != nil {
		return err
	}
	_, err = c.nc.JS.Publish(natsclient.SubjectAuditDLQ, data, nats.Context(ctx))
	return err
}
