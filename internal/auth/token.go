// SPDX-License-Identifier: AGPL-3.0-only
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshTokenError marks a token whose refresh attempt failed. The
// session is degraded, not rejected; the caller decides whether to
// force a re-login.
const RefreshTokenError = "RefreshTokenError"

type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

// Token is the internal session record: the provider's token triple
// plus the user summary extracted from the ID token at issue time.
type Token struct {
	AccessToken        string      `json:"accessToken"`
	AccessTokenExpires int64       `json:"accessTokenExpires"`
	RefreshToken       string      `json:"refreshToken"`
	User               SessionUser `json:"user"`
	Error              string      `json:"error,omitempty"`
}

// Evaluate applies the token lifecycle: a token whose expiry is still
// in the future is reused unchanged with no network call; an expired
// one is refreshed. A failed refresh tags the token instead of
// discarding it. The second return reports whether the token changed
// and needs to be persisted.
func (s *Service) Evaluate(ctx context.Context, tok *Token) (*Token, bool) {
	if time.Now().UnixMilli() < tok.AccessTokenExpires {
		return tok, false
	}

	refreshed, err := s.Refresh(ctx, tok.RefreshToken)
	if err != nil {
		degraded := *tok
		degraded.Error = RefreshTokenError
		return &degraded, true
	}
	return refreshed, true
}

// SessionUser projects the user summary exposed to pages. When the
// provider did not embed a username, fall back to the username claim
// inside the access token, then to the local part of the email.
func (t *Token) SessionUser() SessionUser {
	user := t.User
	if user.Username == "" {
		user.Username = usernameFromAccessToken(t.AccessToken)
	}
	if user.Username == "" {
		user.Username = emailLocalPart(user.Email)
	}
	if user.Username == "" {
		user.Username = "user"
	}
	return user
}

func userFromIDToken(idToken string) (SessionUser, error) {
	claims := jwt.MapClaims{}
	// The token is treated as opaque signed data here; verification is
	// the provider's job.
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return SessionUser{}, err
	}
	return SessionUser{
		ID:       stringClaim(claims, "sub"),
		Username: stringClaim(claims, "cognito:username"),
		Email:    stringClaim(claims, "email"),
		Image:    stringClaim(claims, "picture"),
	}, nil
}

func usernameFromAccessToken(accessToken string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return ""
	}
	return stringClaim(claims, "username")
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
