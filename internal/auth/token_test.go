package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeJWT builds an unsigned token; only the payload segment matters
// to the extraction code.
func makeJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

type fakeCognito struct {
	signUpErr    error
	confirmErr   error
	initiateErr  error
	authResult   *types.AuthenticationResultType
	initiateIn   *cognito.InitiateAuthInput
	initiateHits int
}

func (f *fakeCognito) SignUp(_ context.Context, _ *cognito.SignUpInput, _ ...func(*cognito.Options)) (*cognito.SignUpOutput, error) {
	return &cognito.SignUpOutput{}, f.signUpErr
}

func (f *fakeCognito) ConfirmSignUp(_ context.Context, _ *cognito.ConfirmSignUpInput, _ ...func(*cognito.Options)) (*cognito.ConfirmSignUpOutput, error) {
	return &cognito.ConfirmSignUpOutput{}, f.confirmErr
}

func (f *fakeCognito) InitiateAuth(_ context.Context, in *cognito.InitiateAuthInput, _ ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error) {
	f.initiateHits++
	f.initiateIn = in
	if f.initiateErr != nil {
		return nil, f.initiateErr
	}
	return &cognito.InitiateAuthOutput{AuthenticationResult: f.authResult}, nil
}

func TestSessionUserPrefersEmbeddedUsername(t *testing.T) {
	tok := &Token{
		User: SessionUser{ID: "u-1", Username: "alice", Email: "alice@example.com"},
	}
	assert.Equal(t, "alice", tok.SessionUser().Username)
}

func TestSessionUserFallsBackToAccessTokenClaim(t *testing.T) {
	tok := &Token{
		AccessToken: makeJWT(t, map[string]any{"username": "alice"}),
		User:        SessionUser{ID: "u-1", Email: "someone@example.com"},
	}
	assert.Equal(t, "alice", tok.SessionUser().Username)
}

func TestSessionUserFallsBackToEmailLocalPart(t *testing.T) {
	tok := &Token{
		AccessToken: "not-a-jwt",
		User:        SessionUser{ID: "u-1", Email: "bob@example.com"},
	}
	assert.Equal(t, "bob", tok.SessionUser().Username)
}

func TestSessionUserLastResort(t *testing.T) {
	tok := &Token{User: SessionUser{ID: "u-1"}}
	assert.Equal(t, "user", tok.SessionUser().Username)
}

func TestEvaluateReusesUnexpiredToken(t *testing.T) {
	fake := &fakeCognito{}
	svc := NewService(fake, "client-id")

	tok := &Token{
		AccessToken:        "access",
		AccessTokenExpires: time.Now().Add(time.Hour).UnixMilli(),
		RefreshToken:       "refresh",
	}

	got, changed := svc.Evaluate(context.Background(), tok)
	assert.False(t, changed)
	assert.Same(t, tok, got)
	assert.Zero(t, fake.initiateHits, "no network call for a fresh token")
}

func TestEvaluateRefreshesExpiredToken(t *testing.T) {
	idToken := makeJWT(t, map[string]any{
		"sub":              "u-1",
		"cognito:username": "alice",
		"email":            "alice@example.com",
	})
	fake := &fakeCognito{
		authResult: &types.AuthenticationResultType{
			AccessToken: aws.String(makeJWT(t, map[string]any{"username": "alice"})),
			IdToken:     aws.String(idToken),
			ExpiresIn:   3600,
		},
	}
	svc := NewService(fake, "client-id")

	tok := &Token{
		AccessToken:        "stale",
		AccessTokenExpires: time.Now().Add(-time.Minute).UnixMilli(),
		RefreshToken:       "refresh",
	}

	got, changed := svc.Evaluate(context.Background(), tok)
	assert.True(t, changed)
	assert.Equal(t, 1, fake.initiateHits)
	assert.Equal(t, types.AuthFlowTypeRefreshTokenAuth, fake.initiateIn.AuthFlow)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, "alice", got.User.Username)
	// Cognito's refresh flow does not rotate the refresh token.
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Greater(t, got.AccessTokenExpires, time.Now().UnixMilli())
	assert.Empty(t, got.Error)
}

func TestEvaluateMarksDegradedOnRefreshFailure(t *testing.T) {
	fake := &fakeCognito{initiateErr: errors.New("refresh token revoked")}
	svc := NewService(fake, "client-id")

	tok := &Token{
		AccessToken:        "stale",
		AccessTokenExpires: time.Now().Add(-time.Minute).UnixMilli(),
		RefreshToken:       "refresh",
		User:               SessionUser{ID: "u-1", Email: "a@b.c"},
	}

	got, changed := svc.Evaluate(context.Background(), tok)
	assert.True(t, changed)
	assert.Equal(t, RefreshTokenError, got.Error)
	// Everything else survives; the session is degraded, not rejected.
	assert.Equal(t, "stale", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, "u-1", got.User.ID)
}

func TestLoginBuildsTokenFromSession(t *testing.T) {
	idToken := makeJWT(t, map[string]any{
		"sub":              "u-9",
		"cognito:username": "carol",
		"email":            "carol@example.com",
		"picture":          "https://img.example.com/carol.png",
	})
	fake := &fakeCognito{
		authResult: &types.AuthenticationResultType{
			AccessToken:  aws.String("access"),
			IdToken:      aws.String(idToken),
			RefreshToken: aws.String("refresh"),
			ExpiresIn:    3600,
		},
	}
	svc := NewService(fake, "client-id")

	tok, err := svc.Login(context.Background(), "carol@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, types.AuthFlowTypeUserPasswordAuth, fake.initiateIn.AuthFlow)
	assert.Equal(t, "u-9", tok.User.ID)
	assert.Equal(t, "carol", tok.User.Username)
	assert.Equal(t, "https://img.example.com/carol.png", tok.User.Image)
	assert.Equal(t, "refresh", tok.RefreshToken)
}

func TestLoginInvalidSession(t *testing.T) {
	fake := &fakeCognito{authResult: nil}
	svc := NewService(fake, "client-id")

	_, err := svc.Login(context.Background(), "x@y.z", "pw")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
