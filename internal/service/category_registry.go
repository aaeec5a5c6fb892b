package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/repository"
)

// CategoryRegistry - набор категорий одной области (пользователь или workspace).
// Обе области используют один контракт, отличается только репозиторий.
type CategoryRegistry interface {
	// EnsureSeeded идемпотентно засевает категории по умолчанию в пустую область
	EnsureSeeded(ctx context.Context, scopeID int64) error
	List(ctx context.Context, scopeID int64) ([]string, error)
	Add(ctx context.Context, scopeID int64, name string) ([]string, error)
	Remove(ctx context.Context, scopeID int64, name string) ([]string, error)
}

type categoryRegistry struct {
	repo     repository.CategoryRepository
	defaults []string
}

func NewCategoryRegistry(repo repository.CategoryRepository, defaults []string) CategoryRegistry {
	return &categoryRegistry{
		repo:     repo,
		defaults: defaults,
	}
}

func (r *categoryRegistry) EnsureSeeded(ctx context.Context, scopeID int64) error {
	return r.repo.SeedDefaults(ctx, scopeID, r.defaults)
}

func (r *categoryRegistry) List(ctx context.Context, scopeID int64) ([]string, error) {
	if err := r.EnsureSeeded(ctx, scopeID); err != nil {
		return nil, err
	}
	return r.repo.ListNames(ctx, scopeID)
}

func (r *categoryRegistry) Add(ctx context.Context, scopeID int64, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("Category name is required")
	}

	if err := r.EnsureSeeded(ctx, scopeID); err != nil {
		return nil, err
	}

	exists, err := r.repo.ExistsByName(ctx, scopeID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("Category already exists")
	}

	if err := r.repo.Create(ctx, scopeID, name); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewConflictError("Category already exists")
		}
		return nil, err
	}

	return r.repo.ListNames(ctx, scopeID)
}

func (r *categoryRegistry) Remove(ctx context.Context, scopeID int64, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("Category name is required")
	}

	if err := r.EnsureSeeded(ctx, scopeID); err != nil {
		return nil, err
	}

	deleted, err := r.repo.DeleteByName(ctx, scopeID, name)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, domain.NewNotFoundError("Category")
	}

	return r.repo.ListNames(ctx, scopeID)
}
