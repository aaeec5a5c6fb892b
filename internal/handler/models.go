package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

type SessionResponse struct {
	User UserResponse `json:"user"`
}

// UpdateAccountRequest: отсутствующее поле не меняется
type UpdateAccountRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
	Password    *string `json:"password"`
}

type UpdateAccountResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token,omitempty"`
}

type ActivityRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ActivityResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Hours         float64 `json:"hours"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Source        string  `json:"source"`
	Username      string  `json:"username"`
	WorkspaceID   *int64  `json:"workspace_id,omitempty"`
	WorkspaceName string  `json:"workspace_name,omitempty"`
}

type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// AddActivityResponse: activity - первый отрезок, segments - все созданные по порядку
type AddActivityResponse struct {
	Activity ActivityResponse   `json:"activity"`
	Segments []ActivityResponse `json:"segments"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type WorkspaceRequest struct {
	Name string `json:"name"`
}

type WorkspaceResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	OwnerUsername string `json:"owner_username"`
	JoinedAt      string `json:"joined_at"`
	CreatedAt     string `json:"created_at"`
}

type WorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

type InviteRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type MemberResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	JoinedAt    string `json:"joined_at"`
}

type MembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type MemberCreatedResponse struct {
	Member MemberResponse `json:"member"`
}
