package user

import (
	"github.com/google/uuid"

	"github.com/fieldsuite/fieldsuite/modules/core/domain/entities/permission"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

type UILanguage string

const (
	UILanguageEN UILanguage = "en"
	UILanguageES UILanguage = "es"
)

func (l UILanguage) IsValid() bool {
	switch l {
	case UILanguageEN, UILanguageES:
		return true
	}
	return false
}

type User interface {
	ID() uuid.UUID
	Email() string
	DisplayName() string
	Role() Role
	Permissions() []*permission.Permission
	Can(perm *permission.Permission) bool
	UILanguage() UILanguage
}

type Option func(u *userImpl)

func WithPermissions(perms ...*permission.Permission) Option {
	return func(u *userImpl) {
		u.permissions = append(u.permissions, perms...)
	}
}

func WithUILanguage(lang UILanguage) Option {
	return func(u *userImpl) {
		u.language = lang
	}
}

func New(email, displayName string, role Role, opts ...Option) User {
	u := &userImpl{
		id:          uuid.New(),
		email:       email,
		displayName: displayName,
		role:        role,
		language:    UILanguageEN,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type userImpl struct {
	id          uuid.UUID
	email       string
	displayName string
	role        Role
	permissions []*permission.Permission
	language    UILanguage
}

func (u *userImpl) ID() uuid.UUID {
	return u.id
}

func (u *userImpl) Email() string {
	return u.email
}

func (u *userImpl) DisplayName() string {
	return u.displayName
}

func (u *userImpl) Role() Role {
	return u.role
}

func (u *userImpl) Permissions() []*permission.Permission {
	return u.permissions
}

func (u *userImpl) Can(perm *permission.Permission) bool {
	for _, p := range u.permissions {
		if p.Equals(perm) {
			return true
		}
	}
	return false
}

func (u *userImpl) UILanguage() UILanguage {
	return u.language
}
