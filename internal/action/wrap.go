package action

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fieldday/api/internal/model"
)

// Sessions resolves the identity of the current caller. Implementations
// typically read the identity established by the auth middleware and
// verify it against the user store.
type Sessions interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// Run executes fn and normalizes its outcome into a Result. An
// *model.AppError passes through unchanged; any other error becomes a
// DATABASE_ERROR carrying the original. Panics are recovered, so Run
// itself never raises.
func Run[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered panic in action", slog.Any("panic", rec))
			if err, ok := rec.(error); ok {
				res = Err[T](model.NewDatabaseError(err.Error(), err))
				return
			}
			res = Err[T](model.NewDatabaseError("An unknown error occurred", nil))
		}
	}()

	data, err := fn()
	if err != nil {
		return Err[T](normalize(err))
	}
	return OK(data)
}

// RunWithAuth resolves the caller's identity before anything else; when
// no identity can be established, fn is never invoked and the result is
// an AUTHENTICATION_ERROR. Otherwise fn runs with the caller's user ID
// under the same normalization as Run.
func RunWithAuth[T any](ctx context.Context, sessions Sessions, fn func(ctx context.Context, userID string) (T, error)) Result[T] {
	userID, err := sessions.CurrentUserID(ctx)
	if err != nil || userID == "" {
		return Err[T](model.NewAuthenticationError("You must be logged in to perform this action"))
	}
	return Run(func() (T, error) {
		return fn(ctx, userID)
	})
}

func normalize(err error) *model.AppError {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return model.NewDatabaseError(err.Error(), err)
}

// userIDKey carries the authenticated user ID established by the auth
// middleware. It lives here rather than in the middleware package so
// services can depend on it without importing HTTP concerns.
type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user ID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFrom extracts the authenticated user ID, or "" when absent
func UserIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}
