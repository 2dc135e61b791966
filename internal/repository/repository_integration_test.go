//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/threads-backend/internal/database"
	"github.com/deppfellow/threads-backend/internal/errs"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T, ctx context.Context) *pgx.Conn {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "threads",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	conn, err := pgx.Connect(ctx, fmt.Sprintf("postgres://test:test@%s:%s/threads?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(context.Background()) })

	logger := zerolog.Nop()
	require.NoError(t, database.MigrateConn(ctx, &logger, conn))
	// second run is a no-op
	require.NoError(t, database.MigrateConn(ctx, &logger, conn))

	return conn
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
	assert.Equal(t, status, httpErr.Status)
}

func TestIntegration_CommunityLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoriesWithDB(setupPostgres(t, ctx))
	communities := repos.Community

	t.Run("create", func(t *testing.T) {
		require.NoError(t, communities.CreateCommunity(ctx, "org_1", "Acme", "acme", "http://x/logo.png", model.DefaultCommunityBio, "user_1"))

		got, err := communities.GetCommunity(ctx, "org_1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, "org bio", got.Bio)
		assert.Equal(t, "user_1", got.CreatedBy)
	})

	t.Run("duplicate create is a unique violation", func(t *testing.T) {
		err := communities.CreateCommunity(ctx, "org_1", "Acme", "acme", "", "", "user_1")
		require.Error(t, err)
		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, sqlerr.UniqueViolation, sqlerr.MapCode(pgErr.Code))
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("update", func(t *testing.T) {
		require.NoError(t, communities.UpdateCommunityInfo(ctx, "org_1", "Acme Inc", "acme-inc", "http://x/new.png"))

		got, err := communities.GetCommunity(ctx, "org_1")
		require.NoError(t, err)
		assert.Equal(t, "acme-inc", got.Slug)
		assert.Equal(t, "http://x/new.png", got.Image)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("update missing", func(t *testing.T) {
		err := communities.UpdateCommunityInfo(ctx, "org_404", "x", "x", "")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("membership", func(t *testing.T) {
		require.NoError(t, communities.AddMemberToCommunity(ctx, "org_1", "user_2"))
		require.NoError(t, communities.AddMemberToCommunity(ctx, "org_1", "user_2"))

		ok, err := communities.IsMember(ctx, "org_1", "user_2")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, communities.RemoveUserFromCommunity(ctx, "user_2", "org_1"))
		requireStatus(t, communities.RemoveUserFromCommunity(ctx, "user_2", "org_1"), http.StatusNotFound)
	})

	t.Run("membership of unknown community", func(t *testing.T) {
		err := communities.AddMemberToCommunity(ctx, "org_404", "user_2")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("threads and comments", func(t *testing.T) {
		thread, err := repos.Thread.CreateThread(ctx, "hello world", "user_1", "org_1")
		require.NoError(t, err)
		require.NotNil(t, thread.CommunityID)
		assert.Equal(t, "org_1", *thread.CommunityID)

		comment, err := repos.Thread.AddComment(ctx, thread.ID, "nice one", "user_2")
		require.NoError(t, err)
		require.NotNil(t, comment.CommunityID)
		assert.Equal(t, "org_1", *comment.CommunityID)
		assert.Equal(t, thread.ID, *comment.ParentID)

		_, err = repos.Thread.AddComment(ctx, uuid.New(), "orphan", "user_2")
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, communities.AddMemberToCommunity(ctx, "org_1", "user_3"))
		require.NoError(t, communities.DeleteCommunity(ctx, "org_1"))

		ok, err := communities.IsMember(ctx, "org_1", "user_3")
		require.NoError(t, err)
		assert.False(t, ok)

		requireStatus(t, communities.DeleteCommunity(ctx, "org_1"), http.StatusNotFound)
	})
}
