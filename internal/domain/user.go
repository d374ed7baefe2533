package domain

// User is the identity-provider-managed account. Only the fields this
// service consumes are modeled; credentials never pass through here.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session holds the tokens issued by the identity provider after a
// successful sign-in. Forwarded to the client verbatim.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         *User  `json:"user,omitempty"`
}

// AuthResult is the sign-up payload: the created user plus a session when
// the provider issues one immediately (email confirmation disabled).
type AuthResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// UserContext is the authenticated user injected into request handlers
// after the bearer token has been verified against the identity provider.
type UserContext struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// GoogleSignIn is the tagged variant for the two Google flows. Exactly one
// arm is set: Native carries an ID token from the mobile SDK, Web asks for
// a consent-screen URL the browser is redirected to.
type GoogleSignIn struct {
	Native *GoogleNative
	Web    *GoogleWeb
}

// GoogleNative is the mobile arm: the client already holds a Google ID token.
type GoogleNative struct {
	IDToken string
}

// GoogleWeb is the browser arm: the provider builds the authorize URL and
// sends the user back to RedirectTo after consent.
type GoogleWeb struct {
	RedirectTo string
}
