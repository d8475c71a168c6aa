package zone

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

// Provider resolves the effective IANA timezone for an organization or an
// (organization, area) pair. An area's override wins over its organization's
// zone. Loaded locations are cached per key; zone-touching policy changes
// invalidate entries so edits propagate without a restart.
type Provider struct {
	store db.Querier
	log   *zap.Logger

	mu    sync.RWMutex
	orgs  map[uuid.UUID]*time.Location
	areas map[areaKey]*time.Location

	fallbacks metric.Int64Counter
}

type areaKey struct {
	org  uuid.UUID
	area uuid.UUID
}

// NewProvider builds a Provider over the given read querier.
func NewProvider(store db.Querier, logger *zap.Logger) *Provider {
	meter := otel.Meter("acp/zone")
	fallbacks, _ := meter.Int64Counter("acp.zone.fallback.total",
		metric.WithDescription("Zone resolutions that fell back to UTC because a timezone id was missing or invalid"),
	)

	return &Provider{
		store:     store,
		log:       logger,
		orgs:      make(map[uuid.UUID]*time.Location),
		areas:     make(map[areaKey]*time.Location),
		fallbacks: fallbacks,
	}
}

// ZoneForOrg returns the organization's timezone. Unknown organizations and
// invalid IANA ids resolve to UTC; only deterministic fallbacks are cached,
// so a transient read failure is retried on the next resolution.
func (p *Provider) ZoneForOrg(ctx context.Context, orgID uuid.UUID) *time.Location {
	p.mu.RLock()
	loc, ok := p.orgs[orgID]
	p.mu.RUnlock()
	if ok {
		return loc
	}

	org, err := p.store.GetOrganization(ctx, pgtype.UUID{Bytes: orgID, Valid: true})
	if err != nil {
		p.fallback(ctx, "org", orgID.String(), "", err)
		return time.UTC
	}

	loc = p.load(ctx, "org", orgID.String(), org.TimezoneID)

	p.mu.Lock()
	p.orgs[orgID] = loc
	p.mu.Unlock()
	return loc
}

// ZoneForArea returns the area's timezone override when set, otherwise the
// organization's zone. A missing area inherits the organization's zone.
func (p *Provider) ZoneForArea(ctx context.Context, orgID, areaID uuid.UUID) *time.Location {
	key := areaKey{org: orgID, area: areaID}

	p.mu.RLock()
	loc, ok := p.areas[key]
	p.mu.RUnlock()
	if ok {
		return loc
	}

	area, err := p.store.GetArea(ctx, db.GetAreaParams{
		ID:             pgtype.UUID{Bytes: areaID, Valid: true},
		OrganizationID: pgtype.UUID{Bytes: orgID, Valid: true},
	})
	if err != nil {
		p.fallback(ctx, "area", areaID.String(), "", err)
		return p.ZoneForOrg(ctx, orgID)
	}

	if area.TimezoneID.Valid && area.TimezoneID.String != "" {
		loc = p.load(ctx, "area", areaID.String(), area.TimezoneID.String)
	} else {
		loc = p.ZoneForOrg(ctx, orgID)
	}

	p.mu.Lock()
	p.areas[key] = loc
	p.mu.Unlock()
	return loc
}

// InvalidateOrg drops the organization's cached zone and every cached area
// zone under it, since areas without an override inherit the org zone.
func (p *Provider) InvalidateOrg(orgID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.orgs, orgID)
	for key := range p.areas {
		if key.org == orgID {
			delete(p.areas, key)
		}
	}
}

// InvalidateArea drops a single cached area zone.
func (p *Provider) InvalidateArea(orgID, areaID uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.areas, areaKey{org: orgID, area: areaID})
}

// InvalidateAll resets the cache. Used when the event stream cannot tell
// which tenant a change belongs to.
func (p *Provider) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orgs = make(map[uuid.UUID]*time.Location)
	p.areas = make(map[areaKey]*time.Location)
}

// load validates an IANA id against the embedded zone table and resolves it,
// falling back to UTC on invalid names.
func (p *Provider) load(ctx context.Context, scope, id, tzID string) *time.Location {
	if tzID == "" {
		p.fallback(ctx, scope, id, tzID, nil)
		return time.UTC
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		p.fallback(ctx, scope, id, tzID, err)
		return time.UTC
	}
	return loc
}

func (p *Provider) fallback(ctx context.Context, scope, id, tzID string, err error) {
	p.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("scope", scope)))
	p.log.Warn("timezone resolution fell back to UTC",
		zap.String("scope", scope),
		zap.String("id", id),
		zap.String("timezone_id", tzID),
		zap.Error(err),
	)
}
