package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type calls struct {
	up, down int
	promoted string
	dsn      string
}

func testDeps(c *calls, promoteErr error) deps {
	return deps{
		loadConfig: func(path string) (*config.Config, error) {
			if path == "broken.env" {
				return nil, errors.New("jwt secret key is required")
			}
			return &config.Config{
				App:      config.AppConfig{LogLevel: "error"},
				Postgres: config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DB: "todo"},
			}, nil
		},
		migrateUp: func(dsn string) error {
			c.up++
			c.dsn = dsn
			return nil
		},
		migrateDown: func(dsn string) error {
			c.down++
			return nil
		},
		promote: func(_ context.Context, _ *config.Config, username string) error {
			c.promoted = username
			return promoteErr
		},
	}
}

func execute(d deps, args ...string) (string, error) {
	cmd := newRootCmd(d)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateUp(t *testing.T) {
	c := &calls{}
	out, err := execute(testDeps(c, nil), "migrate", "up")
	require.NoError(t, err)
	assert.Equal(t, 1, c.up)
	assert.Equal(t, "postgres://u:p@db:5432/todo?sslmode=disable", c.dsn)
	assert.Contains(t, out, "Migrations applied.")
}

func TestMigrateDown_RequiresForce(t *testing.T) {
	c := &calls{}
	_, err := execute(testDeps(c, nil), "migrate", "down")
	assert.Error(t, err)
	assert.Equal(t, 0, c.down)

	_, err = execute(testDeps(c, nil), "migrate", "down", "--force")
	assert.NoError(t, err)
	assert.Equal(t, 1, c.down)
}

func TestSetAdmin(t *testing.T) {
	c := &calls{}
	out, err := execute(testDeps(c, nil), "set-admin", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.promoted)
	assert.Contains(t, out, "User 'alice' is now an admin.")

	_, err = execute(testDeps(&calls{}, apperrors.NotFound("User not found")), "set-admin", "ghost")
	assert.EqualError(t, err, "user 'ghost' not found")

	_, err = execute(testDeps(&calls{}, nil), "set-admin")
	assert.Error(t, err)
}

func TestConfigError(t *testing.T) {
	c := &calls{}
	_, err := execute(testDeps(c, nil), "-c", "broken.env", "migrate", "up")
	assert.ErrorContains(t, err, "failed to parse config")
	assert.Equal(t, 0, c.up)
}
