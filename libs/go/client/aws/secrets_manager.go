package aws

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cyphera/store-admin/libs/go/logger"
)

// SecretsManagerAPI is the part of the Secrets Manager client used here
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves configuration secrets from AWS Secrets
// Manager, falling back to plain environment variables.
type SecretsManagerClient struct {
	svc    SecretsManagerAPI
	getenv func(string) string
}

// NewSecretsManagerClient creates a client from the default AWS configuration
// chain (environment, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), os.Getenv), nil
}

// NewSecretsManagerClientWithAPI creates a client over an existing API and
// environment lookup.
func NewSecretsManagerClientWithAPI(svc SecretsManagerAPI, getenv func(string) string) *SecretsManagerClient {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &SecretsManagerClient{svc: svc, getenv: getenv}
}

// GetSecretString returns the secret whose ARN is held in secretArnEnvVar.
// A secret stored as a single-key JSON object yields that key's value. When
// the ARN is unset or the fetch fails the value of fallbackEnvVar is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := c.getenv(secretArnEnvVar)

	if secretArn != "" {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			var secretJSON map[string]string
			if jsonErr := json.Unmarshal([]byte(value), &secretJSON); jsonErr == nil && len(secretJSON) == 1 {
				for _, v := range secretJSON {
					return v, nil
				}
			}
			return value, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := c.getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment variable", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", errors.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON decodes the JSON secret whose ARN is held in secretArnEnvVar into target
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := c.getenv(secretArnEnvVar)
	if secretArn == "" {
		return errors.Errorf("secret ARN env var '%s' is not set", secretArnEnvVar)
	}

	value, err := c.fetch(ctx, secretArn)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return errors.Wrapf(err, "secret %s is not valid JSON", secretArnEnvVar)
	}
	return nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to get secret value")
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", errors.New("secret has no string value")
	}
	return *result.SecretString, nil
}
