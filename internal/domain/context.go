package domain

import "context"

type principalKey struct{}

// WithPrincipal stores the authenticated Principal in the context.
// The value lives exactly as long as the request context it is attached to,
// so concurrent requests can never observe each other's principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the Principal from the context.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequirePrincipal extracts the Principal or returns UnauthenticatedError
// when no identity was resolved for this request.
func RequirePrincipal(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, ErrUnauthenticated("authentication required")
	}
	return p, nil
}
