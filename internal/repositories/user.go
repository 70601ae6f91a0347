package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/models"
)

const userColumns = "id, username, email, password_hash, role, is_active, created_at"

// UserRepository persists accounts.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// Count returns the number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &count, query)
	return count, err
}

// Create inserts a user. Unique violations surface as ErrDuplicateUsername or ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string, role models.Role) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW())
		RETURNING ` + userColumns

	var user models.UserDB
	if _, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, email, secret(passwordHash), role); err != nil {
		return nil, uniqueViolation(err)
	}
	return &user, nil
}

// GetByID returns the user or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, query, id)
}

// GetByUsernameOrEmail matches login against either the username or the email.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, login string) (*models.UserDB, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY id
		LIMIT 1`
	return r.getUser(ctx, query, login)
}

// GetByEmail returns the user with the email or nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getUser(ctx, query, email)
}

func (r *UserRepository) getUser(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether the username is taken.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, username)
	return exists, err
}

// ExistsByEmail reports whether the email is taken.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	_, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &exists, query, email)
	return exists, err
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update changes role and/or activation flag; nil fields are left untouched.
// It returns nil when the user does not exist.
func (r *UserRepository) Update(ctx context.Context, id int64, role *models.Role, isActive *bool) (*models.UserDB, error) {
	builder := psql.Update("users").Where("id = ?", id).Suffix("RETURNING " + userColumns)
	if role == nil && isActive == nil {
		return r.GetByID(ctx, id)
	}
	if role != nil {
		builder = builder.Set("role", *role)
	}
	if isActive != nil {
		builder = builder.Set("is_active", *isActive)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	return r.getUser(ctx, query, args...)
}

// UpdatePassword replaces the stored digest.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, secret(passwordHash), id)
	return err
}

// SetRoleByUsername changes the role of the named user and reports whether it existed.
func (r *UserRepository) SetRoleByUsername(ctx context.Context, username string, role models.Role) (bool, error) {
	const query = `UPDATE users SET role = $1 WHERE username = $2`

	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, role, username)
	return n > 0, err
}

// Delete removes the user, cascading to lists, todos and reset tokens.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id)
	return n > 0, err
}
