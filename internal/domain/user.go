package domain

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;type:varchar(64)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(128)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(128)"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"-" gorm:"not null"`

	Decks []Deck `json:"-" gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// PublicUser is the user projection returned by the API. It never carries
// the password hash.
type PublicUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the API-safe projection of the user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResult is returned by register and login operations
type AuthResult struct {
	User  *PublicUser `json:"user"`
	Token string      `json:"token"`
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int64) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) error
}

// UserUseCase defines the interface for authentication business logic
type UserUseCase interface {
	Register(name, email, password string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	VerifyToken(token string) (*PublicUser, error)
}
