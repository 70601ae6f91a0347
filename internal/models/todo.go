package models

import (
	"math"
	"time"
)

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	OwnerID() int64
}

// BelongsTo reports whether the resource is owned by the caller.
func BelongsTo(resource Owned, callerID int64) bool {
	return resource != nil && resource.OwnerID() == callerID
}

// TodoDB represents a todo row. A nil TodoListID marks a flat todo.
type TodoDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	TodoListID  *int64    `json:"todo_list_id" db:"todo_list_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	Order       int       `json:"order" db:"sort_order"`
}

func (t *TodoDB) OwnerID() int64 { return t.UserID }

// TodoListDB represents a named list together with its todos.
type TodoListDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Todos     []TodoDB  `json:"todos" db:"-"`
}

func (l *TodoListDB) OwnerID() int64 { return l.UserID }

// TodoScope selects an ordering scope: the flat todos of a user when ListID is nil,
// otherwise the todos of one list.
type TodoScope struct {
	UserID int64
	ListID *int64
}

// FlatScope returns the scope of a user's flat todos.
func FlatScope(userID int64) TodoScope {
	return TodoScope{UserID: userID}
}

// ListScope returns the scope of one list's todos.
func ListScope(userID, listID int64) TodoScope {
	return TodoScope{UserID: userID, ListID: &listID}
}

// TodoStats summarizes completion of a todo scope.
type TodoStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

// NewTodoStats derives pending count and completion rate (percent, two decimals).
func NewTodoStats(total, completed int) TodoStats {
	stats := TodoStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		stats.CompletionRate = math.Round(float64(completed)/float64(total)*100*100) / 100
	}
	return stats
}
