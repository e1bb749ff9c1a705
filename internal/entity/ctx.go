package entity

import (
	"context"
)

type (
	CtxKeyIP        struct{}
	CtxKeyUserAgent struct{}
	CtxKeyPrincipal struct{}
)

// PrincipalFromContext fails closed: a context without a principal is unauthenticated.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(CtxKeyPrincipal{}).(Principal)
	if !ok || p.UserID.IsNil() || p.CompanyID.IsNil() {
		return Principal{}, ErrUnauthenticated
	}

	return p, nil
}

func SetPrincipalToContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal{}, p)
}

func SetClientToContext(ctx context.Context, ip, userAgent string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyIP{}, ip)
	return context.WithValue(ctx, CtxKeyUserAgent{}, userAgent)
}

func ClientFromContext(ctx context.Context) (ip, userAgent string) {
	ip, _ = ctx.Value(CtxKeyIP{}).(string)
	userAgent, _ = ctx.Value(CtxKeyUserAgent{}).(string)

	return ip, userAgent
}
