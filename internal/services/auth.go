// Package services implements the marketplace's data-access operations: user
// accounts and the session, product listings, conversations, and the admin
// panel queries. Services own no state of their own; every operation loads the
// backing collection, mutates it, and persists the whole snapshot back.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campusmarket/marketstore/internal/logger"
	"github.com/campusmarket/marketstore/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserCollection defines the persistence operations for the user list.
type UserCollection interface {
	Load(ctx context.Context) ([]models.StoredUser, error)
	Save(ctx context.Context, users []models.StoredUser) error
}

// SessionStore defines the persistence operations for the current-user record.
type SessionStore interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

// RegisterData carries the fields a new account is created from.
type RegisterData struct {
	Email    string
	Password string
	Name     string
	College  string
	Phone    string          // Optional
	Role     models.UserRole // Defaults to student
}

// AuthService handles registration, login, and the session record.
type AuthService struct {
	users   UserCollection
	session SessionStore
	delay   time.Duration
}

// NewAuthService creates a new AuthService. The delay reproduces the
// simulated network latency of login and register; zero disables it.
func NewAuthService(users UserCollection, session SessionStore, delay time.Duration) *AuthService {
	return &AuthService{
		users:   users,
		session: session,
		delay:   delay,
	}
}

// Register creates a new account and establishes it as the session.
// Email uniqueness is checked against the stored value, case-sensitively,
// and only here; nothing re-checks it later.
func (svc *AuthService) Register(ctx context.Context, data RegisterData) (*models.User, error) {
	if err := svc.wait(ctx); err != nil {
		return nil, err
	}

	users, err := svc.users.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load users", "err", err)
		return nil, err
	}

	for _, u := range users {
		if u.Email == data.Email {
			logger.Log.Infow("registration rejected, email taken", "email", data.Email)
			return nil, ErrEmailAlreadyExists
		}
	}

	role := data.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := models.StoredUser{
		User: models.User{
			ID:        uuid.NewString(),
			Email:     data.Email,
			Name:      data.Name,
			College:   data.College,
			Role:      role,
			Phone:     data.Phone,
			CreatedAt: time.Now().UTC(),
			Status:    models.UserActive,
		},
		Password: data.Password,
	}

	if err := svc.users.Save(ctx, append(users, user)); err != nil {
		logger.Log.Errorw("failed to save users", "err", err)
		return nil, err
	}

	public := user.Public()
	if err := svc.session.Save(ctx, public); err != nil {
		logger.Log.Errorw("failed to establish session", "err", err)
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", public.ID, "college", public.College)
	return &public, nil
}

// Login matches email and password against the stored values exactly and
// establishes the session on success. Account status is not consulted.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := svc.wait(ctx); err != nil {
		return nil, err
	}

	users, err := svc.users.Load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load users", "err", err)
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			public := u.Public()
			if err := svc.session.Save(ctx, public); err != nil {
				logger.Log.Errorw("failed to establish session", "err", err)
				return nil, err
			}
			logger.Log.Infow("user logged in", "user_id", public.ID)
			return &public, nil
		}
	}

	logger.Log.Infow("login rejected", "email", email)
	return nil, ErrInvalidCredentials
}

// Logout clears the session record. There is nothing server-side to revoke.
func (svc *AuthService) Logout(ctx context.Context) error {
	return svc.session.Clear(ctx)
}

// CurrentUser restores the session from storage. A missing or corrupt record
// yields nil, nil.
func (svc *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	return svc.session.Load(ctx)
}

// wait simulates the fixed network latency of the auth endpoints.
func (svc *AuthService) wait(ctx context.Context) error {
	if svc.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(svc.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
