package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/natsclient"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/outbox"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/rulecache"
	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/zone"
)

// policyDurablePrefix is suffixed with the instance id: every node needs
// its own copy of each policy change, so the durables must not share a
// work queue. DeliverNew skips history because a fresh node boots with
// empty caches anyway, and the inactive threshold reaps durables left
// behind by crashed nodes.
const (
	policyDurablePrefix     = "policy-cache-"
	policyInactiveThreshold = time.Hour
)

// PolicyConsumer keeps this node's rule and zone caches coherent with
// changes committed by its peers. Invalidation is idempotent, so the
// consumer acks everything it can decode; at worst a lost message delays
// coherence until the next change on the same key.
type PolicyConsumer struct {
	nc         *natsclient.Client
	rules      *rulecache.Cache
	zones      *zone.Provider
	instanceID string
	log        *zap.Logger

	invalidations metric.Int64Counter
}

func NewPolicyConsumer(nc *natsclient.Client, rules *rulecache.Cache, zones *zone.Provider, instanceID string, logger *zap.Logger) *PolicyConsumer {
	p := &PolicyConsumer{
		nc:         nc,
		rules:      rules,
		zones:      zones,
		instanceID: instanceID,
		log:        logger,
	}

	meter := otel.Meter("acp/policycache")
	p.invalidations, _ = meter.Int64Counter("acp.policy.invalidations.total",
		metric.WithDescription("Cache invalidations applied from policy-change events"),
	)
	return p
}

func (p *PolicyConsumer) Start(ctx context.Context) error {
	durable := policyDurablePrefix + p.instanceID
	sub, err := p.nc.JS.PullSubscribe(
		natsclient.SubjectAccessEvents,
		durable,
		nats.BindStream(natsclient.StreamAccessEvents),
		nats.DeliverNew(),
		nats.InactiveThreshold(policyInactiveThreshold),
	)
	if err != nil {
		return err
	}

	p.log.Info("policy-change consumer started",
		zap.String("stream", natsclient.StreamAccessEvents),
		zap.String("durable", durable),
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
					p.processMessage(ctx, msg)
				}
			}
		}
	}()

	return nil
}

func (p *PolicyConsumer) processMessage(ctx context.Context, msg *nats.Msg) {
	if err := p.processEvent(ctx, msg.Data); err != nil {
		// Nothing downstream can fix a payload this node cannot read.
		p.log.Warn("dropping unreadable policy event", zap.String("subject", msg.Subject), zap.Error(err))
		msg.Term()
		return
	}
	msg.Ack()
}

// processEvent applies one envelope to the local caches. Non-policy
// events on the shared stream are ignored.
func (p *PolicyConsumer) processEvent(ctx context.Context, data []byte) error {
	var env outbox.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.EventType != domain.EventTypePolicyChanged {
		return nil
	}

	var ev domain.PolicyChanged
	if err := json.Unmarshal(env.Payload, &ev); err != nil {
		return err
	}

	p.apply(ctx, ev)
	return nil
}

func (p *PolicyConsumer) apply(ctx context.Context, ev domain.PolicyChanged) {
	switch ev.ChangeType {
	case domain.ChangeCreated, domain.ChangeUpdated, domain.ChangeActivated,
		domain.ChangeInactivated, domain.ChangeSoftDeleted:
		if ev.AreaID != nil {
			p.rules.InvalidateArea(ev.OrgID, *ev.AreaID)
		} else {
			p.rules.InvalidateOrg(ev.OrgID)
		}

	case domain.ChangeOrgZoneUpdated:
		p.zones.InvalidateOrg(ev.OrgID)

	case domain.ChangeAreaZoneUpdated:
		if ev.AreaID != nil {
			p.zones.InvalidateArea(ev.OrgID, *ev.AreaID)
		} else {
			p.zones.InvalidateOrg(ev.OrgID)
		}

	case domain.ChangeInvalidateAllReq:
		p.rules.InvalidateAll()
		p.zones.InvalidateAll()

	default:
		p.log.Warn("unknown policy change type",
			zap.String("change_type", string(ev.ChangeType)),
			zap.String("org_id", ev.OrgID.String()),
		)
		return
	}

	p.invalidations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("change_type", string(ev.ChangeType))),
	)
	p.log.Debug("cache invalidation applied",
		zap.String("change_type", string(ev.ChangeType)),
		zap.String("org_id", ev.OrgID.String()),
	)
}
