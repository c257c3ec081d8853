package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartgoals/internal/auth"
)

// Role is the access level assigned to a user.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"user_name" gorm:"size:50;not null"`
	LastName     string    `json:"user_lastname" gorm:"size:50;not null"`
	Username     string    `json:"user_username" gorm:"uniqueIndex;size:50;default:''"`
	Email        string    `json:"user_email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:user_password;size:255;not null"` // Never expose in JSON
	Role         Role      `json:"user_role" gorm:"size:20;default:'User'"`
	Image        *string   `json:"user_image,omitempty" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID and default role before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// BeforeSave hashes the password whenever the field holds a plaintext value.
// Records saved with an already-hashed password pass through untouched, so
// repeated saves never double-hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.PasswordHash == "" || auth.IsHashed(u.PasswordHash) {
		return nil
	}
	hashed, err := auth.HashPassword(u.PasswordHash)
	if err != nil {
		return err
	}
	u.PasswordHash = hashed
	return nil
}

// PublicUser is the projection of a user safe to return from auth flows.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"user_name"`
	LastName string    `json:"user_lastname"`
	Username string    `json:"user_username"`
	Email    string    `json:"user_email"`
}

// Public returns the password-free projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Username: u.Username,
		Email:    u.Email,
	}
}
