package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/logger"
)

const (
	uniqueViolationCode = "23505"
	redacted            = "[REDACTED]"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// TxGetter returns the transaction bound to the context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// psql builds PostgreSQL statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var ext sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			ext = tx
		}
	}
	return ext
}

// secret is a query argument that is sent to the database but never logged.
type secret string

func (s secret) Value() (driver.Value, error) {
	return string(s), nil
}

// logQuery logs the statement on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logged := make([]any, len(args))
	for i, arg := range args {
		if _, ok := arg.(secret); ok {
			logged[i] = redacted
			continue
		}
		logged[i] = arg
	}
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", logged,
		"result", result,
		"error", err,
	)
}

// getOne runs a single-row query. A missing row yields (false, nil).
func getOne(ctx context.Context, ext sqlx.ExtContext, dest any, query string, args ...any) (bool, error) {
	err := sqlx.GetContext(ctx, ext, dest, query, args...)
	logQuery(query, args, dest, err)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// exec runs a statement and returns the number of affected rows.
func exec(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (int64, error) {
	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, err
}

// uniqueViolation maps a PostgreSQL unique violation on the users table to a duplicate error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}
