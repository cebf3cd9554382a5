package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	userdomain "diet-profile-go/internal/domain/user"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type contextKey int

const (
	userKey contextKey = iota
)

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*userdomain.User, error)
}

type BearerAuth struct {
	resolver IdentityResolver
	log      logger.Logger
}

func NewBearerAuth(resolver IdentityResolver, log logger.Logger) *BearerAuth {
	if log == nil {
		log = logger.Nop()
	}
	return &BearerAuth{resolver: resolver, log: log}
}

// Middleware resolves the bearer token to a user and stores it in the request
// context. Requests without a valid token never reach next.
func (a *BearerAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		user, err := a.resolver.Resolve(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, userdomain.ErrUnauthenticated):
				a.log.BusinessError("auth: token rejected", err, "path", r.URL.Path)
				unauthorized(w)
			case errors.Is(err, userdomain.ErrUserNotFound):
				a.log.BusinessError("auth: token subject has no user", err, "path", r.URL.Path)
				common.WriteError(w, http.StatusNotFound, "user_not_found", "user not found")
			default:
				a.log.InternalError("auth: resolve failed", err, "path", r.URL.Path)
				common.WriteInternalError(w)
			}
			return
		}

		ctx := WithUser(r.Context(), *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOwner rejects requests whose URL parameter does not name the
// authenticated user. It must run after Middleware.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}

			id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil || id <= 0 {
				common.WriteError(w, http.StatusBadRequest, "validation_error", "invalid "+param)
				return
			}
			if id != user.ID {
				common.WriteError(w, http.StatusForbidden, "forbidden", "access to another user's data is not allowed")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	common.WriteUnauthenticated(w)
}

func WithUser(ctx context.Context, user userdomain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (userdomain.User, bool) {
	user, ok := ctx.Value(userKey).(userdomain.User)
	if !ok || user.ID == 0 {
		return userdomain.User{}, false
	}
	return user, true
}
