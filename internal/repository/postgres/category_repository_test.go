package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/timetrack/internal/domain"
)

func TestCategoryRepository_SeedDefaults(t *testing.T) {
	t.Run("один INSERT только для пустой области", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserCategoryRepository(db)

		mock.ExpectExec(`INSERT INTO categories \(user_id, name\)\s+` +
			`SELECT \$1::bigint, v\.name FROM \(VALUES \(\$2\), \(\$3\), \(\$4\)\) AS v\(name\)\s+` +
			`WHERE NOT EXISTS \(SELECT 1 FROM categories WHERE user_id = \$1::bigint\)\s+` +
			`ON CONFLICT DO NOTHING`).
			WithArgs(int64(7), "Muncă", "Studii", "Relaxare").
			WillReturnResult(sqlmock.NewResult(0, 3))

		err := repo.SeedDefaults(context.Background(), 7, domain.DefaultCategories)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("workspace-область пишет в свою таблицу", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewWorkspaceCategoryRepository(db)

		mock.ExpectExec(`INSERT INTO workspace_categories \(workspace_id, name\)`).
			WithArgs(int64(2), "Muncă", "Studii", "Relaxare").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SeedDefaults(context.Background(), 2, domain.DefaultCategories)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустой список не ходит в БД", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserCategoryRepository(db)

		require.NoError(t, repo.SeedDefaults(context.Background(), 7, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository_ListNames(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT name FROM categories WHERE user_id = $1 ORDER BY name COLLATE "C" ASC`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Muncă").AddRow("Relaxare").AddRow("Studii"))

	names, err := repo.ListNames(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"Muncă", "Relaxare", "Studii"}, names)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create(t *testing.T) {
	t.Run("дубликат дает конфликт", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserCategoryRepository(db)

		mock.ExpectExec("INSERT INTO categories").
			WithArgs(int64(7), "muncă").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(context.Background(), 7, "muncă")

		assert.ErrorIs(t, err, domain.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository_DeleteByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkspaceCategoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM workspace_categories WHERE workspace_id = $1 AND lower(name) = lower($2)")).
		WithArgs(int64(3), "STUDII").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteByName(context.Background(), 3, "STUDII")

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
