// SPDX-License-Identifier: AGPL-3.0-only
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

var ErrInvalidSession = errors.New("invalid session")

// CognitoAPI is the slice of the identity-provider client the service
// uses. The SDK client satisfies it; tests substitute a fake.
type CognitoAPI interface {
	SignUp(ctx context.Context, in *cognito.SignUpInput, opts ...func(*cognito.Options)) (*cognito.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *cognito.ConfirmSignUpInput, opts ...func(*cognito.Options)) (*cognito.ConfirmSignUpOutput, error)
	InitiateAuth(ctx context.Context, in *cognito.InitiateAuthInput, opts ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error)
}

// Service wraps the Cognito user pool the application authenticates
// against. Credentials, confirmation codes and token issuance all live
// on the provider side; this service only shuttles them.
type Service struct {
	Client   CognitoAPI
	ClientID string
}

func NewService(client CognitoAPI, clientID string) *Service {
	return &Service{Client: client, ClientID: clientID}
}

func (s *Service) SignUp(ctx context.Context, username, email, password string) error {
	_, err := s.Client.SignUp(ctx, &cognito.SignUpInput{
		ClientId: aws.String(s.ClientID),
		Username: aws.String(username),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return fmt.Errorf("sign up failed: %w", err)
	}
	return nil
}

func (s *Service) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := s.Client.ConfirmSignUp(ctx, &cognito.ConfirmSignUpInput{
		ClientId:         aws.String(s.ClientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	return nil
}

// Login authenticates the provided credentials and builds the initial
// token record from the resulting session.
func (s *Service) Login(ctx context.Context, email, password string) (*Token, error) {
	out, err := s.Client.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		ClientId: aws.String(s.ClientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return s.tokenFromResult(out.AuthenticationResult, "")
}

// Refresh exchanges the stored refresh token for a fresh session. The
// provider does not return a new refresh token on this flow, so the old
// one is carried forward.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	out, err := s.Client.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		ClientId: aws.String(s.ClientID),
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return s.tokenFromResult(out.AuthenticationResult, refreshToken)
}

func (s *Service) tokenFromResult(result *types.AuthenticationResultType, priorRefreshToken string) (*Token, error) {
	if result == nil || result.AccessToken == nil || result.IdToken == nil {
		return nil, ErrInvalidSession
	}

	user, err := userFromIDToken(*result.IdToken)
	if err != nil {
		return nil, ErrInvalidSession
	}

	refreshToken := priorRefreshToken
	if result.RefreshToken != nil {
		refreshToken = *result.RefreshToken
	}

	return &Token{
		AccessToken:        *result.AccessToken,
		AccessTokenExpires: time.Now().Add(time.Duration(result.ExpiresIn) * time.Second).UnixMilli(),
		RefreshToken:       refreshToken,
		User:               user,
	}, nil
}
