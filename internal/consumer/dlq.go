package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

const dlqDurable = "audit-dlq-reprocessor"

// DLQReprocessor gives every dead-lettered envelope one more pass through
// the recorder. A second failure moves it to the parking lot, which is
// terminal: nothing consumes parked messages, a human does.
type DLQReprocessor struct {
	nc  *natsclient.Client
	rec *recorder
	log *zap.Logger

	recoveredCnt metric.Int64Counter
	parkedCnt    metric.Int64Counter
}

func NewDLQReprocessor(nc *natsclient.Client, querier db.Querier, logger *zap.Logger) *DLQReprocessor {
	r := &DLQReprocessor{
		nc:  nc,
		rec: newRecorder(querier, logger),
		log: logger,
	}

	meter := otel.Meter("acp/audit")
	r.recoveredCnt, _ = meter.Int64Counter("acp.audit.dlq_recovered.total",
		metric.WithDescription("Dead-lettered envelopes persisted on retry"),
	)
	r.parkedCnt, _ = meter.Int64Counter("acp.audit.parked.total",
		metric.WithDescription("Envelopes moved to the parking lot"),
	)
	return r
}

func (r *DLQReprocessor) Start(ctx context.Context) error {
	sub, err := r.nc.JS.PullSubscribe(
		natsclient.SubjectAuditDLQ,
		dlqDurable,
		nats.BindStream(natsclient.StreamAuditDLQ),
	)
	if err != nil {
		return err
	}

	r.log.Info("DLQ reprocessor started",
		zap.String("stream", natsclient.StreamAuditDLQ),
		zap.String("durable", dlqDurable),
	)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msgs, err := sub.Fetch(fetchBatch, nats.Context(ctx))
				if err != nil {
					continue
				}
				for _, msg := range msgs {
					r.processMessage(ctx, msg)
				}
			}
		}
	}()

	return nil
}

func (r *DLQReprocessor) processMessage(ctx context.Context, msg *nats.Msg) {
	dl, err := r.retry(ctx, msg.Data)
	if err == nil {
		r.recoveredCnt.Add(ctx, 1)
		msg.Ack()
		return
	}

	if perr := r.park(ctx, dl, err); perr != nil {
		r.log.Error("parking-lot publish failed, leaving message for redelivery",
			zap.NamedError("retry_error", err),
			zap.Error(perr),
		)
		msg.Nak()
		return
	}

	r.parkedCnt.Add(ctx, 1)
	msg.Ack()
}

// retry replays the wrapped envelope through the recorder. The returned
// DeadLetter is what park forwards when the retry fails too; an unreadable
// DLQ message is parked as itself so nothing is ever dropped here.
func (r *DLQReprocessor) retry(ctx context.Context, data []byte) (DeadLetter, error) {
	var dl DeadLetter
	if err := json.Unmarshal(data, &dl); err != nil {
		dl = DeadLetter{Envelope: json.RawMessage(data), Reason: "unreadable dead letter"}
		return dl, fmt.Errorf("%w: dead letter: %v", errMalformed, err)
	}

	outcome, err := r.rec.record(ctx, dl.Envelope)
	if err != nil {
		return dl, err
	}

	r.log.Info("dead-lettered envelope recovered",
		zap.String("subject", dl.Subject),
		zap.String("first_failure", dl.Reason),
		zap.Bool("deduped", outcome == recordDeduped),
	)
	return dl, nil
}

// park moves the dead letter to the terminal parking subject with both
// failure reasons attached for the operator.
func (r *DLQReprocessor) park(ctx context.Context, dl DeadLetter, cause error) error {
	parked := dl
	parked.Reason = fmt.Sprintf("dlq retry failed: %v (first failure: %s)", cause, dl.Reason)
	parked.FailedAt = time.Now().UTC()

	data, err := json.Marshal(parked)
	if err != nil {
		return err
	}

	r.log.Warn("parking envelope after failed DLQ retry",
		zap.String("subject", dl.Subject),
		zap.String("reason", parked.Reason),
	)
	_, err = r.nc.JS.Publish(natsclient.SubjectAuditParking, data, nats.Context(ctx))
	return err
}
