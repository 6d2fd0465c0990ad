package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type employeeIDKey struct{}

// WithEmployeeID stores the current employee on ctx.
func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeIDKey{}, employeeID)
}

// EmployeeIDFromContext returns the current employee set by CurrentEmployee.
func EmployeeIDFromContext(ctx context.Context) string {
	employeeID, _ := ctx.Value(employeeIDKey{}).(string)
	return employeeID
}

// Verifier looks for a session token in the Authorization header or the
// "jwt" query parameter, which EventSource clients use.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader, jwtauth.TokenFromQuery)
}

// CurrentEmployee resolves who "me" is. A request without a token acts as
// defaultEmployeeID; a token that is present but invalid is rejected.
// It identifies, it does not authorize.
func CurrentEmployee(jwtService jwt.Service, defaultEmployeeID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if errors.Is(err, jwtauth.ErrNoTokenFound) || (err == nil && token == nil) {
				next.ServeHTTP(w, r.WithContext(WithEmployeeID(r.Context(), defaultEmployeeID)))
				return
			}

			if err != nil {
				slog.Debug("session token rejected", "error", err)
				response.HandleError(w, jwt.ErrInvalidSessionToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw == "" {
				raw = jwtauth.TokenFromQuery(r)
			}
			if jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, jwt.ErrInvalidSessionToken)
				return
			}

			employeeID, ok := jwtService.EmployeeIDFromClaims(claims)
			if !ok {
				response.HandleError(w, jwt.ErrInvalidSessionToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmployeeID(r.Context(), employeeID)))
		}
		return http.HandlerFunc(hfn)
	}
}
