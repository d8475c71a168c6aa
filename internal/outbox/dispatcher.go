package outbox

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/clock"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// Last-error messages are truncated before stamping so a huge transport
// error cannot bloat the row.
const maxErrorMessageLen = 600

// DispatcherConfig tunes one dispatcher node. InstanceID is the lock
// identity; it must be unique per process or two nodes will treat each
// other's claims as their own.
type DispatcherConfig struct {
	InstanceID       string
	DispatchEvery    time.Duration
	MaintenanceEvery time.Duration
	LockTTL          time.Duration
	BatchSize        int
	MaxAttempts      int
	MaxRetryAfter    time.Duration
}

// Dispatcher drains PENDING outbox rows to the bus. Any number of
// dispatchers may run against the same table: the claim query skips
// rows locked by live peers, and every outcome write re-checks
// ownership first. All failures are absorbed here; a broken tick logs,
// stamps the row, and leaves the rest to the next tick.
type Dispatcher struct {
	store  db.Store
	sender Sender
	clock  clock.Clock
	cfg    DispatcherConfig
	log    *zap.Logger

	cron   *cron.Cron
	cancel context.CancelFunc

	// rand.Rand is not safe for concurrent use; the per-event workers
	// share this one under rngMu.
	rngMu sync.Mutex
	rng   *rand.Rand

	runs         metric.Int64Counter
	emptyRuns    metric.Int64Counter
	claimedCount metric.Int64Counter
	publishedCnt metric.Int64Counter
	failedCnt    metric.Int64Counter
	retriedCnt   metric.Int64Counter
	expiredCnt   metric.Int64Counter
}

func NewDispatcher(store db.Store, sender Sender, clk clock.Clock, cfg DispatcherConfig, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		sender: sender,
		clock:  clk,
		cfg:    cfg,
		log:    logger,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger))),
		)),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	meter := otel.Meter("acp/outbox")
	d.runs, _ = meter.Int64Counter("acp.outbox.runs.total",
		metric.WithDescription("Dispatch ticks executed"),
	)
	d.emptyRuns, _ = meter.Int64Counter("acp.outbox.empty_runs.total",
		metric.WithDescription("Dispatch ticks that claimed nothing"),
	)
	d.claimedCount, _ = meter.Int64Counter("acp.outbox.claimed.total",
		metric.WithDescription("Outbox events claimed for publishing"),
	)
	d.publishedCnt, _ = meter.Int64Counter("acp.outbox.published.total",
		metric.WithDescription("Outbox events published to the bus"),
	)
	d.failedCnt, _ = meter.Int64Counter("acp.outbox.failed.total",
		metric.WithDescription("Outbox events parked as FAILED"),
	)
	d.retriedCnt, _ = meter.Int64Counter("acp.outbox.retried.total",
		metric.WithDescription("Outbox events rescheduled after a retryable failure"),
	)
	d.expiredCnt, _ = meter.Int64Counter("acp.outbox.expired_locks_released.total",
		metric.WithDescription("Ghost locks released by the maintenance loop"),
	)

	ready, _ := meter.Int64ObservableGauge("acp.outbox.ready",
		metric.WithDescription("PENDING events runnable now"),
	)
	inflight, _ := meter.Int64ObservableGauge("acp.outbox.inflight",
		metric.WithDescription("PENDING events holding a dispatcher lock"),
	)
	oldestReady, _ := meter.Float64ObservableGauge("acp.outbox.oldest_ready.seconds",
		metric.WithDescription("Age of the oldest runnable event"),
	)
	oldestInflight, _ := meter.Float64ObservableGauge("acp.outbox.oldest_inflight.seconds",
		metric.WithDescription("Age of the oldest live lock"),
	)
	_, _ = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		stats, err := store.GetOutboxStats(ctx, cfg.LockTTL.Seconds())
		if err != nil {
			return err
		}
		o.ObserveInt64(ready, stats.ReadyCount)
		o.ObserveInt64(inflight, stats.InflightCount)
		o.ObserveFloat64(oldestReady, stats.OldestReadySeconds)
		o.ObserveFloat64(oldestInflight, stats.OldestInflightSeconds)
		return nil
	}, ready, inflight, oldestReady, oldestInflight)

	return d
}

// Start schedules the dispatch and maintenance loops. Overlapping runs of
// the same loop are skipped, not queued.
func (d *Dispatcher) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	dispatchSpec := fmt.Sprintf("@every %s", d.cfg.DispatchEvery)
	if _, err := d.cron.AddFunc(dispatchSpec, func() { d.RunOnce(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule outbox dispatch: %w", err)
	}
	maintenanceSpec := fmt.Sprintf("@every %s", d.cfg.MaintenanceEvery)
	if _, err := d.cron.AddFunc(maintenanceSpec, func() { d.RunMaintenance(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule outbox maintenance: %w", err)
	}

	d.cron.Start()
	d.log.Info("outbox dispatcher started",
		zap.String("instance_id", d.cfg.InstanceID),
		zap.Duration("dispatch_every", d.cfg.DispatchEvery),
		zap.Duration("maintenance_every", d.cfg.MaintenanceEvery),
		zap.Int("batch_size", d.cfg.BatchSize),
	)
	return nil
}

// Stop waits for in-flight ticks to finish, then cancels their context.
func (d *Dispatcher) Stop() {
	<-d.cron.Stop().Done()
	if d.cancel != nil {
		d.cancel()
	}
	d.log.Info("outbox dispatcher stopped")
}

// RunOnce executes a single dispatch tick: claim a batch in one short
// transaction, then publish each claimed event in its own transaction.
func (d *Dispatcher) RunOnce(ctx context.Context) {
	d.runs.Add(ctx, 1)

	var ids []pgtype.UUID
	err := d.store.InTx(ctx, func(q db.Querier) error {
		var err error
		ids, err = q.ClaimOutboxEvents(ctx, db.ClaimOutboxEventsParams{
			LockedBy:       d.cfg.InstanceID,
			LockTTLSeconds: d.cfg.LockTTL.Seconds(),
			BatchSize:      int32(d.cfg.BatchSize),
		})
		return err
	})
	if err != nil {
		d.log.Error("outbox claim failed", zap.Error(err))
		return
	}
	if len(ids) == 0 {
		d.emptyRuns.Add(ctx, 1)
		return
	}
	d.claimedCount.Add(ctx, int64(len(ids)))
	d.log.Debug("claimed outbox events", zap.Int("count", len(ids)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.BatchSize)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			d.processEvent(gctx, id)
			return nil
		})
	}
	_ = g.Wait()
}

// RunMaintenance clears locks held past the TTL by crashed or wedged
// nodes so their rows become claimable again.
func (d *Dispatcher) RunMaintenance(ctx context.Context) {
	released, err := d.store.ReleaseExpiredOutboxLocks(ctx, d.cfg.LockTTL.Seconds())
	if err != nil {
		d.log.Error("outbox maintenance failed", zap.Error(err))
		return
	}
	if released > 0 {
		d.expiredCnt.Add(ctx, released)
		d.log.Warn("released expired outbox locks", zap.Int64("count", released))
	}
}

type eventOutcome int

const (
	outcomeSkipped eventOutcome = iota
	outcomePublished
	outcomeRetried
	outcomeFailed
)

// processEvent publishes one claimed event inside a fresh transaction.
// The lock is released afterward regardless of outcome, guarded by
// locked_by so a lock stolen after TTL expiry is never clobbered.
func (d *Dispatcher) processEvent(ctx context.Context, id pgtype.UUID) {
	outcome := outcomeSkipped
	var lastErr *SendError

	txErr := d.store.InTx(ctx, func(q db.Querier) error {
		ev, err := q.GetOutboxEvent(ctx, id)
		if err != nil {
			return fmt.Errorf("reload outbox event: %w", err)
		}
		if ev.Status != string(domain.OutboxPending) {
			return nil
		}

		// Another node may have stolen the row between claim and now if
		// our lock aged past the TTL. The CAS settles ownership.
		owned, err := q.ReassertOutboxOwnership(ctx, db.ReassertOutboxOwnershipParams{
			ID:             id,
			LockedBy:       d.cfg.InstanceID,
			LockTTLSeconds: d.cfg.LockTTL.Seconds(),
		})
		if err != nil {
			return fmt.Errorf("reassert outbox ownership: %w", err)
		}
		if owned == 0 {
			return nil
		}

		sendErr := d.sender.Send(ctx, ev)
		if sendErr == nil {
			outcome = outcomePublished
			return q.MarkOutboxPublished(ctx, id)
		}

		se := asSendError(sendErr)
		lastErr = se
		attempts := int(ev.Attempts) + 1

		if !se.Retryable || attempts >= d.cfg.MaxAttempts {
			outcome = outcomeFailed
			return q.MarkOutboxFailed(ctx, db.MarkOutboxFailedParams{
				ID:               id,
				LastErrorCode:    pgtype.Text{String: se.Code, Valid: true},
				LastErrorStatus:  errorStatus(se),
				LastErrorMessage: pgtype.Text{String: truncate(se.Message, maxErrorMessageLen), Valid: true},
			})
		}

		delay := d.nextDelay(attempts, se.RetryAfter)
		outcome = outcomeRetried
		return q.MarkOutboxRetry(ctx, db.MarkOutboxRetryParams{
			ID:               id,
			NextAttemptAt:    pgtype.Timestamptz{Time: d.clock.Now().Add(delay), Valid: true},
			LastErrorCode:    pgtype.Text{String: se.Code, Valid: true},
			LastErrorStatus:  errorStatus(se),
			LastErrorMessage: pgtype.Text{String: truncate(se.Message, maxErrorMessageLen), Valid: true},
		})
	})

	if relErr := d.store.ReleaseOutboxLock(ctx, db.ReleaseOutboxLockParams{
		ID:       id,
		LockedBy: d.cfg.InstanceID,
	}); relErr != nil {
		d.log.Warn("outbox lock release failed", zap.String("event_id", uuidString(id)), zap.Error(relErr))
	}

	if txErr != nil {
		d.log.Error("outbox event processing failed",
			zap.String("event_id", uuidString(id)),
			zap.Error(txErr),
		)
		return
	}

	switch outcome {
	case outcomePublished:
		d.publishedCnt.Add(ctx, 1)
		d.log.Debug("outbox event published", zap.String("event_id", uuidString(id)))
	case outcomeRetried:
		d.retriedCnt.Add(ctx, 1)
		d.log.Warn("outbox event rescheduled",
			zap.String("event_id", uuidString(id)),
			zap.String("error_code", lastErr.Code),
			zap.String("error", lastErr.Message),
		)
	case outcomeFailed:
		d.failedCnt.Add(ctx, 1)
		d.log.Error("outbox event marked FAILED",
			zap.String("event_id", uuidString(id)),
			zap.String("error_code", lastErr.Code),
			zap.String("error", lastErr.Message),
		)
	}
}

func (d *Dispatcher) nextDelay(attempt int, retryAfter time.Duration) time.Duration {
	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	return retryDelay(attempt, retryAfter, d.cfg.MaxRetryAfter, d.rng)
}

// asSendError keeps the retry contract total: a sender returning a plain
// error is treated as an unknown retryable failure.
func asSendError(err error) *SendError {
	var se *SendError
	if errors.As(err, &se) {
		return se
	}
	return &SendError{Code: ErrCodeUnknown, Retryable: true, Message: err.Error()}
}

func errorStatus(se *SendError) pgtype.Int4 {
	if se.HTTPStatus == 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(se.HTTPStatus), Valid: true}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func uuidString(id pgtype.UUID) string {
	return uuid.UUID(id.Bytes).String()
}
