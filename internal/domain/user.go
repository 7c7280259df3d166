package domain

import "time"

const (
	RoleMember = "member"
	RoleVIP    = "vip"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByUsername(username string) (*User, error)
}
