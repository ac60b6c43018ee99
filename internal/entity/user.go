package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUser(username, passwordHash string, role Role) (*User, error) {
	u := &User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if u.Username == "" {
		return nil, errors.New("username is required")
	}
	if u.PasswordHash == "" {
		return nil, errors.New("password is required")
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}
	return u, nil
}

type UserUpdate struct {
	Role *Role `json:"role,omitempty"`
}

func (u UserUpdate) Validate() error {
	if u.Role == nil {
		return ErrEmptyUpdate
	}
	_, err := ParseRole(string(*u.Role))
	return err
}

func (u *User) RecordID() string   { return u.ID }
func (u *User) Created() time.Time { return u.CreatedAt }

// Fields never exposes the password hash.
func (u *User) Fields() []Field {
	return []Field{
		{"id", u.ID},
		{"username", u.Username},
		{"role", string(u.Role)},
		{"created_at", u.CreatedAt},
	}
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id string, u UserUpdate) (*User, error)
}
