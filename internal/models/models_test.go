package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"user", RoleUser, false},
		{"power_user", RolePowerUser, false},
		{"admin", RoleAdmin, false},
		{"Admin", "", true},
		{"root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRole)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBelongsTo(t *testing.T) {
	todo := &TodoDB{ID: 1, UserID: 7}
	list := &TodoListDB{ID: 2, UserID: 8}

	assert.True(t, BelongsTo(todo, 7))
	assert.False(t, BelongsTo(todo, 8))
	assert.True(t, BelongsTo(list, 8))
	assert.False(t, BelongsTo(list, 7))
	assert.False(t, BelongsTo(nil, 7))
}

func TestNewTodoStats(t *testing.T) {
	assert.Equal(t, TodoStats{Total: 5, Completed: 2, Pending: 3, CompletionRate: 40}, NewTodoStats(5, 2))
	assert.Equal(t, TodoStats{}, NewTodoStats(0, 0))
	assert.Equal(t, 33.33, NewTodoStats(3, 1).CompletionRate)
	assert.Equal(t, 66.67, NewTodoStats(3, 2).CompletionRate)
}

func TestPasswordResetToken_IsExpired(t *testing.T) {
	now := time.Now()
	tok := PasswordResetToken{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, tok.IsExpired(now))
	assert.True(t, tok.IsExpired(now.Add(2*time.Hour)))
}

func TestPayload(t *testing.T) {
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "  buy milk ",
		"completed": true,
		"flag": "true",
		"order": 3,
		"float": 1.5,
		"ids": [3, 1, "x"],
		"nothing": null
	}`), &p))

	assert.True(t, p.Has("nothing"))
	assert.True(t, p.IsNull("nothing"))
	assert.False(t, p.Has("missing"))

	s, err := p.String("title")
	assert.NoError(t, err)
	assert.Equal(t, "  buy milk ", s)
	_, err = p.String("order")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = p.String("nothing")
	assert.ErrorIs(t, err, ErrWrongType)

	b, err := p.Bool("completed")
	assert.NoError(t, err)
	assert.True(t, b)
	_, err = p.Bool("flag")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = p.Bool("nothing")
	assert.ErrorIs(t, err, ErrWrongType)

	n, err := p.Int("order")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	_, err = p.Int("float")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = p.Int("flag")
	assert.ErrorIs(t, err, ErrWrongType)

	items, err := p.List("ids")
	require.NoError(t, err)
	require.Len(t, items, 3)
	id, ok := ParseInt(items[0])
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
	_, ok = ParseInt(items[2])
	assert.False(t, ok)
	_, err = p.List("order")
	assert.ErrorIs(t, err, ErrWrongType)
}
