package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/timetrack/internal/domain"
	"github.com/bagdasarian/timetrack/internal/repository"
)

const minPasswordLength = 6

type accountService struct {
	tx            repository.Transactor
	userRepo      repository.UserRepository
	workspaces    WorkspaceService
	authenticator Authenticator
	bcryptCost    int
}

func NewAccountService(
	tx repository.Transactor,
	userRepo repository.UserRepository,
	workspaces WorkspaceService,
	authenticator Authenticator,
	bcryptCost int,
) AccountService {
	return &accountService{
		tx:            tx,
		userRepo:      userRepo,
		workspaces:    workspaces,
		authenticator: authenticator,
		bcryptCost:    bcryptCost,
	}
}

func (s *accountService) Register(ctx context.Context, username, displayName, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)
	if username == "" {
		return nil, domain.NewInvalidInputError("Username is required")
	}
	if displayName == "" {
		displayName = username
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewConflictError("Username already taken")
			}
			return err
		}
		_, err := s.workspaces.EnsureDefault(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthenticated
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrUnauthenticated
	}
	return s.authenticator.Issue(user.Username)
}

func (s *accountService) UpdateAccount(ctx context.Context, username string, update domain.AccountUpdate) (*domain.User, string, error) {
	user, err := s.Session(ctx, username)
	if err != nil {
		return nil, "", err
	}

	credentialsChanged := false
	if update.Username != nil {
		next := strings.TrimSpace(*update.Username)
		if next == "" {
			return nil, "", domain.NewInvalidInputError("Username is required")
		}
		if next != user.Username {
			user.Username = next
			credentialsChanged = true
		}
	}
	if update.DisplayName != nil {
		next := strings.TrimSpace(*update.DisplayName)
		if next == "" {
			return nil, "", domain.NewInvalidInputError("Display name cannot be blank")
		}
		user.DisplayName = next
	}
	if update.Password != nil {
		if err := validatePassword(*update.Password); err != nil {
			return nil, "", err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.bcryptCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hash)
		credentialsChanged = true
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, "", domain.NewConflictError("Username already taken")
		}
		return nil, "", err
	}

	if !credentialsChanged {
		return user, "", nil
	}
	token, err := s.authenticator.Refresh(user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *accountService) Session(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domain.NewInvalidInputError("Password must be at least 6 characters")
	}
	return nil
}
