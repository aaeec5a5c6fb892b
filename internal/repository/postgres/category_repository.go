package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// categoryRepository обслуживает обе области категорий: таблица и колонка области
// задаются конструктором.
type categoryRepository struct {
	db          *sql.DB
	table       string
	scopeColumn string
}

func NewUserCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{db: db, table: "categories", scopeColumn: "user_id"}
}

func NewWorkspaceCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{db: db, table: "workspace_categories", scopeColumn: "workspace_id"}
}

func (r *categoryRepository) ListNames(ctx context.Context, scopeID int64) ([]string, error) {
	query, args, err := psql.Select("name").
		From(r.table).
		Where(sq.Eq{r.scopeColumn: scopeID}).
		OrderBy(`name COLLATE "C" ASC`).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := executorFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "categories")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *categoryRepository) ExistsByName(ctx context.Context, scopeID int64, name string) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From(r.table).
		Where(sq.Eq{r.scopeColumn: scopeID}).
		Where("lower(name) = lower(?)", name).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := executorFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, mapError(err, "category")
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, scopeID int64, name string) error {
	query, args, err := psql.Insert(r.table).
		Columns(r.scopeColumn, "name").
		Values(scopeID, name).
		ToSql()
	if err != nil {
		return err
	}

	_, err = executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	return mapError(err, "category")
}

// SeedDefaults - один INSERT: вставка только в пустую область, дубли от
// конкурентного засева отсекает уникальный индекс (scope, lower(name)).
func (r *categoryRepository) SeedDefaults(ctx context.Context, scopeID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}

	values := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	args = append(args, scopeID)
	for i, name := range names {
		values[i] = fmt.Sprintf("($%d)", i+2)
		args = append(args, name)
	}

	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, name)
		SELECT $1::bigint, v.name FROM (VALUES %[3]s) AS v(name)
		WHERE NOT EXISTS (SELECT 1 FROM %[1]s WHERE %[2]s = $1::bigint)
		ON CONFLICT DO NOTHING
	`, r.table, r.scopeColumn, strings.Join(values, ", "))

	_, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	return mapError(err, "categories")
}

func (r *categoryRepository) DeleteByName(ctx context.Context, scopeID int64, name string) (int64, error) {
	query, args, err := psql.Delete(r.table).
		Where(sq.Eq{r.scopeColumn: scopeID}).
		Where("lower(name) = lower(?)", name).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := executorFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "category")
	}
	return result.RowsAffected()
}
