package config

import (
	"fmt"
	"os"
)

const AppVersion = "1.2.0"

type AppConfig struct {
	ListenAddr string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	CognitoUserPoolID string
	CognitoClientID   string

	AuthSecret string

	Bucket string

	DetectionAPIURL string
}

// Load reads the application configuration from the environment.
// Missing required values fail startup rather than surfacing later
// as opaque provider errors.
func Load() (*AppConfig, error) {

	cfg := &AppConfig{
		ListenAddr:         os.Getenv("LISTEN_ADDR"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		CognitoUserPoolID:  os.Getenv("COGNITO_USER_POOL_ID"),
		CognitoClientID:    os.Getenv("COGNITO_CLIENT_ID"),
		AuthSecret:         os.Getenv("AUTH_SECRET"),
		Bucket:             os.Getenv("S3_BUCKET"),
		DetectionAPIURL:    os.Getenv("DETECTION_API_URL"),
	}

	if cfg.CognitoUserPoolID == "" || cfg.CognitoClientID == "" {
		return nil, fmt.Errorf("Failed to load the environment configuration: COGNITO_USER_POOL_ID and COGNITO_CLIENT_ID are required.")
	}

	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		return nil, fmt.Errorf("Failed to load the environment configuration: AWS credentials are required.")
	}

	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("Failed to load the environment configuration: AUTH_SECRET is required.")
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "frogstagram-posts"
	}

	return cfg, nil
}
