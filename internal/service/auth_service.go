package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// ErrUserNotCreated is returned when the identity provider accepts a
// sign-up but returns no user object.
var ErrUserNotCreated = errors.New("User not created")

// GoogleSignInResult is the outcome of resolving a GoogleSignIn variant:
// the native arm yields a session, the web arm a redirect URL.
type GoogleSignInResult struct {
	Session *domain.Session
	URL     string
}

// AuthService orchestrates the identity provider flows. Credentials and
// tokens are owned by the provider; this service only sequences calls and
// applies the profile side effects of sign-up.
type AuthService struct {
	identity port.IdentityProvider
	profiles port.ProfileStore
	redirect string
}

// NewAuthService creates a new authentication service. redirect is where
// the web OAuth flow lands after consent.
func NewAuthService(identity port.IdentityProvider, profiles port.ProfileStore, redirect string) *AuthService {
	return &AuthService{identity: identity, profiles: profiles, redirect: redirect}
}

// SignUp registers a new account and applies the optional name fields to
// the profile row the provider created. The profile update is best-effort:
// a failure is logged, not surfaced, since the account already exists.
func (s *AuthService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*domain.AuthResult, error) {
	result, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, ErrUserNotCreated
	}

	if firstName != "" || lastName != "" {
		if err := s.profiles.SetProfileName(ctx, result.User.ID, firstName, lastName); err != nil {
			slog.Error("profile update failed", "user_id", result.User.ID, "error", err)
		}
	}

	return result, nil
}

// Login exchanges email/password for a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.identity.SignInWithPassword(ctx, email, password)
}

// UpdatePassword sets a new password for the token's user.
func (s *AuthService) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	return s.identity.UpdatePassword(ctx, accessToken, newPassword)
}

// SignInWithGoogle resolves the tagged variant once: the native arm
// exchanges the SDK's ID token for a session, the web arm returns the
// provider's consent-screen URL.
func (s *AuthService) SignInWithGoogle(ctx context.Context, in domain.GoogleSignIn) (*GoogleSignInResult, error) {
	switch {
	case in.Native != nil:
		session, err := s.identity.SignInWithIDToken(ctx, "google", in.Native.IDToken)
		if err != nil {
			return nil, err
		}
		return &GoogleSignInResult{Session: session}, nil

	case in.Web != nil:
		redirectTo := in.Web.RedirectTo
		if redirectTo == "" {
			redirectTo = s.redirect
		}
		url, err := s.identity.OAuthURL(ctx, "google", redirectTo, uuid.NewString())
		if err != nil {
			return nil, err
		}
		return &GoogleSignInResult{URL: url}, nil

	default:
		return nil, errors.New("no sign-in variant provided")
	}
}
