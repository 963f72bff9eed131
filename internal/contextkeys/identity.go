package contextkeys

import (
	"context"
	"property-service/internal/core/domain"
)

type identityKeyType struct{}

var identityKey = identityKeyType{}

// ContextWithIdentity puts the authenticated caller into the context.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the caller identity. The second return
// value is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
