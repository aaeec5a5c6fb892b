package domain

import "fmt"

const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeConflict        = "CONFLICT"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthenticated = "UNAUTHENTICATED"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidInput - некорректные или отсутствующие поля
	ErrInvalidInput = &DomainError{
		Code:    CodeInvalidInput,
		Message: "invalid input",
	}

	// ErrConflict - ресурс уже существует
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "resource already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrForbidden - нет членства или недостаточно прав
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "access denied",
	}

	// ErrUnauthenticated - запрос без аутентифицированного пользователя
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "User not authenticated",
	}

	// ErrWorkspaceNotAccessible одинакова для чужого и несуществующего workspace
	ErrWorkspaceNotAccessible = &DomainError{
		Code:    CodeForbidden,
		Message: "Workspace not accessible",
	}
)

func NewInvalidInputError(message string) *DomainError {
	return &DomainError{Code: CodeInvalidInput, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Code: CodeForbidden, Message: message}
}
