package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// ParseRole разбирает роль из запроса; пустая строка означает MEMBER
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return RoleMember, nil
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", NewInvalidInputError("Invalid role")
	}
}

// Priority задает порядок в списке участников
func (r Role) Priority() int {
	switch r {
	case RoleOwner:
		return 0
	case RoleMember:
		return 1
	default:
		return 2
	}
}

type Workspace struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
}

type WorkspaceMember struct {
	ID          int64
	WorkspaceID int64
	UserID      int64
	Username    string
	DisplayName string
	Role        Role
	JoinedAt    time.Time
}

// WorkspaceSummary - workspace глазами конкретного участника
type WorkspaceSummary struct {
	Workspace     Workspace
	Role          Role
	OwnerUsername string
	JoinedAt      time.Time
}
