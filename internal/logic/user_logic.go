package logic

import (
	"fmt"
	"strings"
	"time"

	"github.com/blues/pts/internal/auth"
	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserLogic handles signup, login and refresh-token rotation.
type UserLogic struct {
	users        *repository.UserRepo
	tokens       *repository.TokenRepo
	tokenManager *auth.TokenManager
	refreshTTL   time.Duration
}

func NewUserLogic(users *repository.UserRepo, tokens *repository.TokenRepo, tokenManager *auth.TokenManager, refreshTTL time.Duration) *UserLogic {
	return &UserLogic{
		users:        users,
		tokens:       tokens,
		tokenManager: tokenManager,
		refreshTTL:   refreshTTL,
	}
}

// Signup registers a new account with a hashed password.
func (l *UserLogic) Signup(email, firstName, lastName, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, Validationf("a valid email is required")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, Validationf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, Validationf("last name is required")
	}
	if len(password) < 8 {
		return nil, Validationf("password must be at least 8 characters")
	}

	existing, err := l.users.ByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := l.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates by email and password and issues a token pair.
func (l *UserLogic) Login(email, password string) (*TokenPair, *model.User, error) {
	user, err := l.users.ByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := l.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh exchanges a live refresh token for a new pair. The presented
// token is revoked so each refresh token is single-use.
func (l *UserLogic) Refresh(plainToken string) (*TokenPair, error) {
	stored, err := l.tokens.ByHash(auth.HashRefreshToken(plainToken))
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	now := time.Now()
	if stored == nil || !stored.Live(now) {
		return nil, ErrInvalidRefreshToken
	}
	if err := l.tokens.Revoke(stored.ID, now); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return l.issueTokens(stored.UserID)
}

func (l *UserLogic) issueTokens(userID uint) (*TokenPair, error) {
	now := time.Now()
	access, err := l.tokenManager.Issue(userID, now)
	if err != nil {
		return nil, err
	}
	plain, hash := auth.NewRefreshToken()
	if err := l.tokens.Create(&model.RefreshToken{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: now.Add(l.refreshTTL),
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: plain}, nil
}
