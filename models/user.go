package models

import "time"

type UserRole string
type UserStatus string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"

	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Phone     string     `json:"phone"`
	Nickname  string     `json:"nickname"`
	Avatar    string     `json:"avatar"`
	Bio       string     `json:"bio"`
	Role      UserRole   `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Status    UserStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
