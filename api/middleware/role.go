package middleware

import (
	"context"
	"net/http"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/internal/access"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
)

const roleHeader = "X-Console-Role"

type capabilityCtxKey struct{}

// RoleContext resolves the persona header into an immutable capability
// set carried on the request context. The header is a display label with
// no server-side trust behind it; see the access package note.
func RoleContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			set, err := access.Resolve(r.Header.Get(roleHeader))
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}

			if logg != nil {
				ctx = logg.WithRole(ctx, string(set.Role()))
			}
			ctx = context.WithValue(ctx, capabilityCtxKey{}, set)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CapabilitiesFromContext returns the capability set resolved for the
// request, or the zero set when the middleware did not run.
func CapabilitiesFromContext(ctx context.Context) access.Set {
	if set, ok := ctx.Value(capabilityCtxKey{}).(access.Set); ok {
		return set
	}
	return access.Set{}
}

// RequireCapability gates a route on one capability from the resolved set.
func RequireCapability(cap access.Capability, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !CapabilitiesFromContext(ctx).Allows(cap) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role does not grant this view").
					WithDetails(map[string]any{"capability": cap}))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
