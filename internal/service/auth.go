package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodjournal/moodjournal-go/internal/crypto"
	"github.com/moodjournal/moodjournal-go/internal/model"
	"github.com/moodjournal/moodjournal-go/internal/repository"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit in bytes
)

var errInvalidCredentials = unauthenticated("invalid email or password")

// DefaultActivities seeds every new account.
var DefaultActivities = []model.ActivityInput{
	{Name: "Work", Icon: "💼", Color: "#3b82f6"},
	{Name: "Exercise", Icon: "🏃", Color: "#22c55e"},
	{Name: "Family", Icon: "👨‍👩‍👧", Color: "#f97316"},
	{Name: "Reading", Icon: "📚", Color: "#a855f7"},
}

// AuthService handles account creation and password sign-in.
type AuthService struct {
	store      *repository.Store
	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *repository.Store, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates the user and its default activities in one transaction.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalidArgument("email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, invalidArgument(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		return nil, invalidArgument(fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
	}

	hash, err := crypto.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx repository.Repositories) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		for _, a := range DefaultActivities {
			err := tx.Activities().Create(ctx, &model.Activity{
				ID:     a.Name,
				UserID: user.ID,
				Name:   a.Name,
				Icon:   a.Icon,
				Color:  a.Color,
			})
			if err != nil {
				return fmt.Errorf("seeding activity %s: %w", a.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, conflict("user already exists")
		}
		return nil, err
	}

	return user, nil
}

// Signin checks the password. Unknown email and wrong password fail identically.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalidArgument("email and password are required")
	}

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			crypto.BurnPasswordCheck(password)
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	match, err := crypto.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, errInvalidCredentials
	}

	return user, nil
}
