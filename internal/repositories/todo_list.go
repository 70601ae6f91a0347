package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/models"
)

const todoListColumns = "id, name, user_id, created_at"

// TodoListRepository persists named lists. Every lookup is scoped to the owner.
type TodoListRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoListRepository(db *sqlx.DB, txGetter TxGetter) *TodoListRepository {
	return &TodoListRepository{db: db, txGetter: txGetter}
}

func (r *TodoListRepository) getList(ctx context.Context, query string, args ...any) (*models.TodoListDB, error) {
	var list models.TodoListDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &list, query, args...)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

// Create inserts a list owned by userID.
func (r *TodoListRepository) Create(ctx context.Context, userID int64, name string) (*models.TodoListDB, error) {
	const query = `
		INSERT INTO todolists (name, user_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING ` + todoListColumns

	return r.getList(ctx, query, name, userID)
}

// ListByUser returns the lists of the user ordered by id.
func (r *TodoListRepository) ListByUser(ctx context.Context, userID int64) ([]models.TodoListDB, error) {
	const query = `SELECT ` + todoListColumns + ` FROM todolists WHERE user_id = $1 ORDER BY id`

	lists := []models.TodoListDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &lists, query, userID)
	logQuery(query, []any{userID}, len(lists), err)
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// Get returns the list with id owned by userID, or nil.
func (r *TodoListRepository) Get(ctx context.Context, userID, id int64) (*models.TodoListDB, error) {
	const query = `SELECT ` + todoListColumns + ` FROM todolists WHERE id = $1 AND user_id = $2`
	return r.getList(ctx, query, id, userID)
}

// Rename changes the name of the owned list and returns it, or nil when not found.
func (r *TodoListRepository) Rename(ctx context.Context, userID, id int64, name string) (*models.TodoListDB, error) {
	const query = `
		UPDATE todolists SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + todoListColumns

	return r.getList(ctx, query, name, id, userID)
}

// Delete removes the owned list together with its todos.
func (r *TodoListRepository) Delete(ctx context.Context, userID, id int64) (bool, error) {
	const query = `DELETE FROM todolists WHERE id = $1 AND user_id = $2`

	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, userID)
	return n > 0, err
}
