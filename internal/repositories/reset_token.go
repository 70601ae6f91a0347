package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/models"
)

// ResetTokenRepository persists single-use password reset tokens.
type ResetTokenRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewResetTokenRepository(db *sqlx.DB, txGetter TxGetter) *ResetTokenRepository {
	return &ResetTokenRepository{db: db, txGetter: txGetter}
}

// Create stores a token for the user.
func (r *ResetTokenRepository) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	const query = `
		INSERT INTO password_reset_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)`

	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, userID, secret(token), expiresAt)
	return err
}

// GetByToken returns the stored token or nil.
func (r *ResetTokenRepository) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	const query = `
		SELECT id, user_id, token, expires_at
		FROM password_reset_tokens
		WHERE token = $1`

	var t models.PasswordResetToken
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &t, query, secret(token))
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

// Delete removes the token so it cannot be redeemed twice.
func (r *ResetTokenRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM password_reset_tokens WHERE id = $1`

	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id)
	return err
}
