package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/kebabmane/toDo/internal/models"
)

var todoColumns = []string{
	"id", "user_id", "todo_list_id", "title", "description",
	"completed", "created_at", "updated_at", "sort_order",
}

// TodoRepository persists todos in either the flat scope of a user or the scope of a list.
type TodoRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoRepository(db *sqlx.DB, txGetter TxGetter) *TodoRepository {
	return &TodoRepository{db: db, txGetter: txGetter}
}

// scopeFilter restricts a statement to the scope. Flat scope means todos of the
// user that belong to no list.
func scopeFilter(scope models.TodoScope) sq.Sqlizer {
	if scope.ListID != nil {
		return sq.Eq{"todo_list_id": *scope.ListID}
	}
	return sq.And{
		sq.Eq{"user_id": scope.UserID},
		sq.Eq{"todo_list_id": nil},
	}
}

func (r *TodoRepository) selectTodos(ctx context.Context, builder sq.SelectBuilder) ([]models.TodoDB, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	todos := []models.TodoDB{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &todos, query, args...)
	logQuery(query, args, len(todos), err)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepository) getTodo(ctx context.Context, query string, args []any) (*models.TodoDB, error) {
	var todo models.TodoDB
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &todo, query, args...)
	if err != nil || !found {
		return nil, err
	}
	return &todo, nil
}

// List returns the todos of the scope ordered by sort order, optionally filtered by completion.
func (r *TodoRepository) List(ctx context.Context, scope models.TodoScope, completed *bool) ([]models.TodoDB, error) {
	builder := psql.Select(todoColumns...).
		From("todos").
		Where(scopeFilter(scope)).
		OrderBy("sort_order ASC", "id ASC")
	if completed != nil {
		builder = builder.Where(sq.Eq{"completed": *completed})
	}
	return r.selectTodos(ctx, builder)
}

// ListByListIDs returns the todos of several lists ordered by list and sort order.
func (r *TodoRepository) ListByListIDs(ctx context.Context, listIDs []int64) ([]models.TodoDB, error) {
	if len(listIDs) == 0 {
		return []models.TodoDB{}, nil
	}
	builder := psql.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"todo_list_id": listIDs}).
		OrderBy("todo_list_id ASC", "sort_order ASC", "id ASC")
	return r.selectTodos(ctx, builder)
}

// Get returns the todo with id inside the scope, or nil.
func (r *TodoRepository) Get(ctx context.Context, scope models.TodoScope, id int64) (*models.TodoDB, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id}).
		Where(scopeFilter(scope)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.getTodo(ctx, query, args)
}

// MaxOrder returns the highest sort order in the scope, or 0 when it is empty.
func (r *TodoRepository) MaxOrder(ctx context.Context, scope models.TodoScope) (int, error) {
	query, args, err := psql.Select("COALESCE(MAX(sort_order), 0)").
		From("todos").
		Where(scopeFilter(scope)).
		ToSql()
	if err != nil {
		return 0, err
	}

	var maxOrder int
	_, err = getOne(ctx, executor(ctx, r.db, r.txGetter), &maxOrder, query, args...)
	return maxOrder, err
}

// Create inserts the todo and returns the stored row.
func (r *TodoRepository) Create(ctx context.Context, todo *models.TodoDB) (*models.TodoDB, error) {
	query, args, err := psql.Insert("todos").
		Columns("user_id", "todo_list_id", "title", "description", "completed", "sort_order", "created_at", "updated_at").
		Values(todo.UserID, todo.TodoListID, todo.Title, todo.Description, todo.Completed, todo.Order, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.getTodo(ctx, query, args)
}

// Update writes the mutable fields of the todo and refreshes updated_at.
func (r *TodoRepository) Update(ctx context.Context, todo *models.TodoDB) (*models.TodoDB, error) {
	query, args, err := psql.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("completed", todo.Completed).
		Set("sort_order", todo.Order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": todo.ID}).
		Suffix("RETURNING " + strings.Join(todoColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.getTodo(ctx, query, args)
}

// SetOrder moves the todo with id inside the scope to the given position and
// reports whether a row was changed.
func (r *TodoRepository) SetOrder(ctx context.Context, scope models.TodoScope, id int64, order int) (bool, error) {
	query, args, err := psql.Update("todos").
		Set("sort_order", order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(scopeFilter(scope)).
		ToSql()
	if err != nil {
		return false, err
	}

	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, args...)
	return n > 0, err
}

// Delete removes the todo with id inside the scope and reports whether it existed.
func (r *TodoRepository) Delete(ctx context.Context, scope models.TodoScope, id int64) (bool, error) {
	query, args, err := psql.Delete("todos").
		Where(sq.Eq{"id": id}).
		Where(scopeFilter(scope)).
		ToSql()
	if err != nil {
		return false, err
	}

	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, args...)
	return n > 0, err
}

// IDs returns the ids of every todo in the scope.
func (r *TodoRepository) IDs(ctx context.Context, scope models.TodoScope) ([]int64, error) {
	query, args, err := psql.Select("id").
		From("todos").
		Where(scopeFilter(scope)).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	ids := []int64{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, args...)
	logQuery(query, args, ids, err)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Stats counts all and completed todos of the scope.
func (r *TodoRepository) Stats(ctx context.Context, scope models.TodoScope) (total, completed int, err error) {
	query, args, err := psql.Select("COUNT(*) AS total", "COUNT(*) FILTER (WHERE completed) AS completed").
		From("todos").
		Where(scopeFilter(scope)).
		ToSql()
	if err != nil {
		return 0, 0, err
	}

	var row struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
	}
	_, err = getOne(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	return row.Total, row.Completed, err
}
