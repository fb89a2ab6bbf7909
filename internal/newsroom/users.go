package newsroom

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahelmedia/newsroom/internal/db"
)

// CreateUser validates the params, hashes the password with bcrypt and
// persists the account. The plaintext password never reaches the store.
func (m *Manager) CreateUser(ctx context.Context, params UserParams) (*User, error) {
	if params.Email == "" {
		return nil, fmt.Errorf("%w: email", ErrMissingField)
	}
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if params.Password == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}
	if params.LocalePreference != nil && !ValidLocale(*params.LocalePreference) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, *params.LocalePreference)
	}

	var roleID *uuid.UUID
	var role *db.Role
	if params.RoleName != nil {
		var err error
		role, err = m.db.RoleByName(ctx, *params.RoleName)
		if err != nil {
			return nil, fmt.Errorf("db get role: %w", err)
		} else if role == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, *params.RoleName)
		}
		roleID = &role.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dbUser := &db.User{
		Email:            params.Email,
		Name:             params.Name,
		PasswordHash:     string(hash),
		Phone:            params.Phone,
		RoleID:           roleID,
		Department:       params.Department,
		LocalePreference: params.LocalePreference,
		Status:           params.Status,
		Role:             role,
	}
	if err := m.db.CreateUser(ctx, dbUser); err != nil {
		return nil, translateUnique(err)
	}

	user := NewUser(dbUser)
	return &user, nil
}

// UserByEmail retrieves a user by email, with the role attached. Returns nil
// when not found.
func (m *Manager) UserByEmail(ctx context.Context, email string) (*User, error) {
	dbUser, err := m.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	} else if dbUser == nil {
		return nil, nil
	}

	user := NewUser(dbUser)
	return &user, nil
}

// DisableUser marks the account disabled without removing it.
func (m *Manager) DisableUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	dbUser, err := m.db.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, nil
	}

	dbUser.Status = db.UserStatusDisabled
	if err := m.db.UpdateUser(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	}

	user := NewUser(dbUser)
	return &user, nil
}

// DeleteUser removes the account; authored articles and uploaded media
// survive with their reference nulled.
func (m *Manager) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := m.db.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("db delete user: %w", err)
	}

	return nil
}

// UserAllowed resolves the user's role name against the capability table.
// Users without a role, and disabled users, have no capabilities.
func UserAllowed(u *User, resource Resource, action Action) bool {
	if u == nil || u.Role == nil || u.Status != db.UserStatusActive {
		return false
	}
	return Allowed(u.Role.Name, resource, action)
}
