package service

import (
	"context"

	"github.com/bagdasarian/timetrack/internal/domain"
)

// Authenticator выдает токен принципалу; Refresh перевыпускает его после смены учетных данных
type Authenticator interface {
	Issue(username string) (string, error)
	Refresh(identity string) (string, error)
}

type AccountService interface {
	Register(ctx context.Context, username, displayName, password string) (*domain.User, error)
	// Login возвращает одинаковую ошибку для неизвестного пользователя и неверного пароля
	Login(ctx context.Context, username, password string) (string, error)
	UpdateAccount(ctx context.Context, username string, update domain.AccountUpdate) (*domain.User, string, error)
	Session(ctx context.Context, username string) (*domain.User, error)
}
