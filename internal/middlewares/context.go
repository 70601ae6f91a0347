package middlewares

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/models"
)

// Identity is the caller resolved from a validated bearer token.
type Identity struct {
	UserID int64
	Role   models.Role
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	txKey contextKey = iota
	identityKey
	commitHooksKey
)

// commitHooks collects callbacks to run once the request transaction commits.
type commitHooks struct {
	fns []func()
}

func setCommitHooksToContext(ctx context.Context, hooks *commitHooks) context.Context {
	return context.WithValue(ctx, commitHooksKey, hooks)
}

// AfterCommit defers fn until the request transaction has committed. A rolled back
// transaction drops fn. Outside of TxMiddleware fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// WithIdentity stores the caller in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller placed by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
