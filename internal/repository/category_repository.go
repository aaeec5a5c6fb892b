package repository

import "context"

// CategoryRepository работает с категориями одной области (пользователь или workspace).
// Имена уникальны без учета регистра внутри области.
type CategoryRepository interface {
	ListNames(ctx context.Context, scopeID int64) ([]string, error)
	ExistsByName(ctx context.Context, scopeID int64, name string) (bool, error)
	Create(ctx context.Context, scopeID int64, name string) error
	// SeedDefaults вставляет names, только если в области нет ни одной категории.
	// Конкурентный повторный вызов не создает дублей.
	SeedDefaults(ctx context.Context, scopeID int64, names []string) error
	DeleteByName(ctx context.Context, scopeID int64, name string) (int64, error)
}
