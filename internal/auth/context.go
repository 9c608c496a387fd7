package auth

import "context"

type ctxKey string

const claimsKey ctxKey = "claims"

// WithClaims returns a context carrying verified session claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// FromContext extracts verified claims stored by the auth middleware.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}
