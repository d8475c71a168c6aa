// Package service implements the business operations of the platform:
// access-attempt intake, policy CRUD, and the policy-change fanout that
// keeps every node's caches coherent.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/middleware"
)

func newUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func pgTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func parseUUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ValidationErrors{{Field: field, Reason: "must be a UUID"}}
	}
	return id, nil
}

// validTimezone reports whether tz names a loadable IANA zone. The empty
// string is rejected here; callers decide whether absence is allowed.
func validTimezone(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// mustGetOrgID reads the tenant installed by the gateway middleware.
// Requests without it never reach the business layer in production, so
// absence is reported as a bare invalid-input programming error.
func mustGetOrgID(ctx context.Context) (uuid.UUID, error) {
	raw, ok := middleware.GetOrgID(ctx)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing organization id in context", ErrInvalidInput)
	}
	orgID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed organization id in context", ErrInvalidInput)
	}
	return orgID, nil
}

// Pagination bounds shared by every list operation.
const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// PageInput is the normalized pagination of list requests.
type PageInput struct {
	Limit  int32
	Offset int32
}

func (p PageInput) normalized() PageInput {
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
