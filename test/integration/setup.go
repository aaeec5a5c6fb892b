//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/timetrack/internal/db"
	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/events"
	repopg "github.com/bagdasarian/timetrack/internal/repository/postgres"
	"github.com/bagdasarian/timetrack/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Поднимаем Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Миграции те же, что и при старте сервиса
	require.NoError(t, db.Migrate(ctx, database, discardLogger()), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

type services struct {
	accounts   service.AccountService
	activities service.ActivityService
	categories service.CategoryService
	workspaces service.WorkspaceService
}

type staticAuthenticator struct{}

func (staticAuthenticator) Issue(username string) (string, error)   { return "token-" + username, nil }
func (staticAuthenticator) Refresh(identity string) (string, error) { return "token-" + identity, nil }

func newServices(database *sql.DB) services {
	tx := repopg.NewTxManager(database)
	userRepo := repopg.NewUserRepository(database)
	memberRepo := repopg.NewMemberRepository(database)
	access := service.NewWorkspaceAccess(memberRepo)

	workspaces := service.NewWorkspaceService(tx, repopg.NewWorkspaceRepository(database), memberRepo, userRepo, access)
	return services{
		accounts:   service.NewAccountService(tx, userRepo, workspaces, staticAuthenticator{}, bcrypt.MinCost),
		activities: service.NewActivityService(
			tx,
			repopg.NewActivityRepository(database),
			repopg.NewWorkspaceActivityRepository(database),
			userRepo,
			access,
			events.NopPublisher{},
			discardLogger(),
		),
		categories: service.NewCategoryService(
			service.NewCategoryRegistry(repopg.NewUserCategoryRepository(database), domain.DefaultCategories),
			service.NewCategoryRegistry(repopg.NewWorkspaceCategoryRepository(database), domain.DefaultCategories),
			userRepo,
			access,
		),
		workspaces: workspaces,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustRegister(t *testing.T, s services, username, displayName string) *domain.User {
	t.Helper()
	user, err := s.accounts.Register(context.Background(), username, displayName, "secret1")
	require.NoError(t, err)
	return user
}
