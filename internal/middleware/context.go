package middleware

import "context"

// Context keys for internal headers installed by the edge gateway after
// token verification. Services behind the gateway trust these headers.
type contextKey string

const (
	// OrgIDKey is the context key for the tenant/organization UUID.
	OrgIDKey contextKey = "org_id"
	// UserIDKey is the context key for the acting user's UUID.
	UserIDKey contextKey = "user_id"
)

// WithOrgID returns a new context with the organization ID set.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, OrgIDKey, orgID)
}

// WithUserID returns a new context with the user ID set.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetOrgID extracts the organization ID from the context.
func GetOrgID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(OrgIDKey).(string)
	return v, ok
}

// GetUserID extracts the user ID from the context.
func GetUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(UserIDKey).(string)
	return v, ok
}
