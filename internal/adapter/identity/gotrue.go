// Package identity is the HTTP adapter for the hosted authentication
// service (GoTrue-compatible API, as exposed by Supabase). All credential
// handling, token issuance, and token verification happen on the provider
// side; this adapter only shapes requests and forwards error messages.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// Provider implements port.IdentityProvider against a GoTrue base URL.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewProvider creates an identity adapter. baseURL is the provider root
// (e.g. https://xyz.supabase.co); apiKey is the service key sent with
// every request.
func NewProvider(baseURL, apiKey string) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// SignUp registers a new email/password account.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}

	body, err := p.do(ctx, http.MethodPost, "/auth/v1/signup", "", payload)
	if err != nil {
		return nil, err
	}

	// The signup response is the user object, with the session inlined when
	// email confirmation is disabled.
	var resp struct {
		domain.User
		Session *domain.Session `json:"session"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("identity: decode signup response: %w", err)
	}

	result := &domain.AuthResult{Session: resp.Session}
	if resp.ID != "" {
		result.User = &domain.User{ID: resp.ID, Email: resp.Email}
	}
	if result.User == nil && resp.Session != nil {
		result.User = resp.Session.User
	}
	return result, nil
}

// SignInWithPassword exchanges email/password for a session.
func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	payload := map[string]string{"email": email, "password": password}

	body, err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", payload)
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("identity: decode session: %w", err)
	}
	return &session, nil
}

// VerifyToken resolves a bearer token to its user via the provider's
// user endpoint. Any provider rejection surfaces as an UpstreamError.
func (p *Provider) VerifyToken(ctx context.Context, accessToken string) (*domain.User, error) {
	body, err := p.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("identity: decode user: %w", err)
	}
	if user.ID == "" {
		return nil, port.ErrUnauthorized
	}
	return &user, nil
}

// UpdatePassword sets a new password for the token's user.
func (p *Provider) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	payload := map[string]string{"password": newPassword}

	_, err := p.do(ctx, http.MethodPut, "/auth/v1/user", accessToken, payload)
	return err
}

// OAuthURL builds the provider's authorize URL for the web flow. GoTrue
// constructs the consent screen itself, so no provider round trip is
// needed here.
func (p *Provider) OAuthURL(ctx context.Context, provider, redirectTo, state string) (string, error) {
	params := url.Values{
		"provider": {provider},
	}
	if redirectTo != "" {
		params.Set("redirect_to", redirectTo)
	}
	if state != "" {
		params.Set("state", state)
	}
	return fmt.Sprintf("%s/auth/v1/authorize?%s", p.baseURL, params.Encode()), nil
}

// SignInWithIDToken exchanges a native SDK ID token for a session.
func (p *Provider) SignInWithIDToken(ctx context.Context, provider, idToken string) (*domain.Session, error) {
	payload := map[string]string{"provider": provider, "id_token": idToken}

	body, err := p.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=id_token", "", payload)
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("identity: decode session: %w", err)
	}
	return &session, nil
}

// do sends one request to the provider. Non-2xx responses are turned into
// UpstreamError with the provider's own message extracted from the body.
func (p *Provider) do(ctx context.Context, method, path, bearer string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("identity: marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("identity: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("identity: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &port.UpstreamError{
			Code:    resp.StatusCode,
			Message: extractMessage(body, resp.StatusCode),
		}
	}
	return body, nil
}

// extractMessage pulls the human-readable error text out of a GoTrue error
// body. The field name varies across endpoints and versions.
func extractMessage(body []byte, status int) string {
	var e struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		for _, m := range []string{e.Message, e.Msg, e.ErrorDescription, e.Error} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("identity provider error (%d)", status)
}
