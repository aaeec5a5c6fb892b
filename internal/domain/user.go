package domain

import "time"

type User struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountUpdate описывает изменения профиля; nil означает "не менять"
type AccountUpdate struct {
	Username    *string
	DisplayName *string
	Password    *string
}
