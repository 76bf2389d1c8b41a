package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return &secretsmanager.GetSecretValueOutput{}, nil
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestGetSecretString(t *testing.T) {
	tests := []struct {
		name    string
		secrets *fakeSecrets
		env     map[string]string
		want    string
		wantErr bool
	}{
		{
			name:    "plain text secret",
			secrets: &fakeSecrets{values: map[string]string{"arn:db": "postgres://db"}},
			env:     map[string]string{"DATABASE_URL_ARN": "arn:db"},
			want:    "postgres://db",
		},
		{
			name:    "single key JSON secret is unwrapped",
			secrets: &fakeSecrets{values: map[string]string{"arn:db": `{"DATABASE_URL":"postgres://json"}`}},
			env:     map[string]string{"DATABASE_URL_ARN": "arn:db"},
			want:    "postgres://json",
		},
		{
			name:    "multi key JSON secret is returned raw",
			secrets: &fakeSecrets{values: map[string]string{"arn:db": `{"a":"1","b":"2"}`}},
			env:     map[string]string{"DATABASE_URL_ARN": "arn:db"},
			want:    `{"a":"1","b":"2"}`,
		},
		{
			name:    "fetch failure falls back to env",
			secrets: &fakeSecrets{err: errors.New("access denied")},
			env:     map[string]string{"DATABASE_URL_ARN": "arn:db", "DATABASE_URL": "postgres://env"},
			want:    "postgres://env",
		},
		{
			name:    "no ARN uses env",
			secrets: &fakeSecrets{},
			env:     map[string]string{"DATABASE_URL": "postgres://env"},
			want:    "postgres://env",
		},
		{
			name:    "nothing configured",
			secrets: &fakeSecrets{},
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewSecretsManagerClientWithAPI(tt.secrets, envOf(tt.env))

			got, err := client.GetSecretString(context.Background(), "DATABASE_URL_ARN", "DATABASE_URL")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecretStringSkipsFetchWithoutARN(t *testing.T) {
	secrets := &fakeSecrets{}
	client := NewSecretsManagerClientWithAPI(secrets, envOf(map[string]string{"EVENTS_QUEUE_URL": "https://sqs"}))

	got, err := client.GetSecretString(context.Background(), "EVENTS_QUEUE_URL_ARN", "EVENTS_QUEUE_URL")
	require.NoError(t, err)
	assert.Equal(t, "https://sqs", got)
	assert.Zero(t, secrets.calls)
}

func TestGetSecretJSON(t *testing.T) {
	type rdsSecret struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Run("decodes secret", func(t *testing.T) {
		client := NewSecretsManagerClientWithAPI(
			&fakeSecrets{values: map[string]string{"arn:rds": `{"username":"admin","password":"pw"}`}},
			envOf(map[string]string{"RDS_SECRET_ARN": "arn:rds"}),
		)

		var secret rdsSecret
		require.NoError(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))
		assert.Equal(t, rdsSecret{Username: "admin", Password: "pw"}, secret)
	})

	t.Run("missing ARN", func(t *testing.T) {
		client := NewSecretsManagerClientWithAPI(&fakeSecrets{}, envOf(nil))
		var secret rdsSecret
		assert.Error(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		client := NewSecretsManagerClientWithAPI(
			&fakeSecrets{values: map[string]string{"arn:rds": "not json"}},
			envOf(map[string]string{"RDS_SECRET_ARN": "arn:rds"}),
		)
		var secret rdsSecret
		assert.Error(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", &secret))
	})
}
