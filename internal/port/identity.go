package port

import (
	"context"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
)

// IdentityProvider abstracts the hosted authentication service. The service
// never stores credentials or verifies tokens locally; every operation is a
// call-through to the provider's REST API.
type IdentityProvider interface {
	// SignUp registers a new email/password account.
	SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error)

	// SignInWithPassword exchanges email/password for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)

	// VerifyToken resolves a bearer token to the user it belongs to.
	VerifyToken(ctx context.Context, accessToken string) (*domain.User, error)

	// UpdatePassword sets a new password for the token's user.
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error

	// OAuthURL returns the provider's consent-screen URL for the given
	// OAuth provider (web flow).
	OAuthURL(ctx context.Context, provider, redirectTo, state string) (string, error)

	// SignInWithIDToken exchanges a native SDK ID token for a session.
	SignInWithIDToken(ctx context.Context, provider, idToken string) (*domain.Session, error)
}
