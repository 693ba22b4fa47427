package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fieldday/api/internal/action"
	"github.com/fieldday/api/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost factor (10-14 recommended for production)
const bcryptCost = 12

var errNoSession = errors.New("no authenticated user")

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService implements the auth actions and acts as the session
// resolver for the auth-gated actions of the other services.
type AuthService struct {
	userRepo UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// AuthPayload is the result of a successful sign-up or sign-in
type AuthPayload struct {
	User   model.AuthUser `json:"user"`
	Tokens *TokenPair     `json:"tokens,omitempty"`
}

// SignUp registers a new account. The email only needs to contain "@";
// anything stricter is left to the mail loop. Store failures surface as
// authentication errors carrying the store's message.
func (s *AuthService) SignUp(ctx context.Context, email, password string) action.Result[*AuthPayload] {
	return action.Run(func() (*AuthPayload, error) {
		if !strings.Contains(email, "@") {
			return nil, model.NewValidationError("Valid email is required", "email")
		}
		if len(password) < 6 {
			return nil, model.NewValidationError("Password must be at least 6 characters", "password")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, model.NewAuthenticationError(err.Error())
		}

		user := &model.User{
			Email: strings.TrimSpace(strings.ToLower(email)),
			Hash:  string(hash),
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, model.NewAuthenticationError(err.Error())
		}
		if user.ID == "" {
			return nil, model.NewAuthenticationError("Failed to create user")
		}

		payload := &AuthPayload{User: model.AuthUser{ID: user.ID, Email: user.Email}}
		if payload.User.Email == "" {
			// Echo the caller's email when the store returns none
			payload.User.Email = email
		}
		s.attachTokens(ctx, payload, user)
		return payload, nil
	})
}

// SignIn authenticates an account. Unlike SignUp, any non-empty
// password reaches the store; length rules only apply when creating
// credentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) action.Result[*AuthPayload] {
	return action.Run(func() (*AuthPayload, error) {
		if !strings.Contains(email, "@") {
			return nil, model.NewValidationError("Valid email is required", "email")
		}
		if password == "" {
			return nil, model.NewValidationError("Password is required", "password")
		}

		user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
		if err != nil {
			return nil, model.NewAuthenticationError(err.Error())
		}
		if user == nil || user.Hash == "" {
			return nil, model.NewAuthenticationError("Failed to sign in")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)) != nil {
			return nil, model.NewAuthenticationError("Failed to sign in")
		}

		payload := &AuthPayload{User: model.AuthUser{ID: user.ID, Email: user.Email}}
		s.attachTokens(ctx, payload, user)
		return payload, nil
	})
}

// SignOut revokes every refresh token of the given user. Signing out
// without a session is a no-op success.
func (s *AuthService) SignOut(ctx context.Context, userID string) action.Result[struct{}] {
	return action.Run(func() (struct{}, error) {
		var none struct{}
		if userID == "" || s.tokens == nil {
			return none, nil
		}
		if err := s.tokens.RevokeAllUserTokens(ctx, userID); err != nil {
			return none, model.NewAuthenticationError(err.Error())
		}
		return none, nil
	})
}

// Refresh rotates a refresh token and issues a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) action.Result[*AuthPayload] {
	return action.Run(func() (*AuthPayload, error) {
		if refreshToken == "" {
			return nil, model.NewValidationError("Refresh token is required", "refresh_token")
		}
		if s.tokens == nil {
			return nil, model.NewAuthenticationError("Invalid refresh token")
		}

		stored, err := s.tokens.FindRefreshToken(ctx, refreshToken)
		if err != nil {
			return nil, model.NewAuthenticationError("Invalid refresh token")
		}

		user, err := s.userRepo.GetByID(ctx, stored.UserID)
		if err != nil {
			return nil, model.NewAuthenticationError(err.Error())
		}
		if user == nil {
			return nil, model.NewAuthenticationError("Invalid refresh token")
		}

		pair, err := s.tokens.RefreshTokens(ctx, refreshToken, user)
		if err != nil {
			return nil, model.NewAuthenticationError(err.Error())
		}

		return &AuthPayload{
			User:   model.AuthUser{ID: user.ID, Email: user.Email},
			Tokens: pair,
		}, nil
	})
}

// CurrentUser returns the authenticated caller's public profile
func (s *AuthService) CurrentUser(ctx context.Context) action.Result[*model.AuthUser] {
	return action.RunWithAuth(ctx, s, func(ctx context.Context, userID string) (*model.AuthUser, error) {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, model.NewNotFoundError("User")
		}
		return &model.AuthUser{ID: user.ID, Email: user.Email}, nil
	})
}

// CurrentUserID implements action.Sessions: it reads the identity the
// auth middleware established and verifies the account still exists.
func (s *AuthService) CurrentUserID(ctx context.Context) (string, error) {
	userID := action.UserIDFrom(ctx)
	if userID == "" {
		return "", errNoSession
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errNoSession
	}
	return user.ID, nil
}

// attachTokens issues a token pair for the session. Token issuance
// failing does not fail the auth action; the client can sign in again.
func (s *AuthService) attachTokens(ctx context.Context, payload *AuthPayload, user *model.User) {
	if s.tokens == nil {
		return
	}
	pair, err := s.tokens.GenerateTokenPair(ctx, user)
	if err != nil {
		slog.Warn("failed to issue token pair",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	payload.Tokens = pair
}
