package helpers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// ErrNoDatabaseURL is returned on the local stage when no database is configured
var ErrNoDatabaseURL = errors.New("no database configured")

// SecretSource resolves secrets by the environment variable holding their ARN
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error
}

// PoolSettings sizes a pgx connection pool
type PoolSettings struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// ResolveDatabaseDSN builds the Postgres DSN for a stage. Deployed stages
// combine DB_HOST, DB_NAME and DB_SSLMODE with the RDS credentials secret;
// the local stage reads DATABASE_URL directly.
func ResolveDatabaseDSN(ctx context.Context, stage string, secrets SecretSource, getenv func(string) string) (string, error) {
	if stage != StageProd && stage != StageDev {
		dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			return "", errors.Wrap(ErrNoDatabaseURL, err.Error())
		}
		return dsn, nil
	}

	dbEndpoint := getenv("DB_HOST")
	dbName := getenv("DB_NAME")
	dbSSLMode := getenv("DB_SSLMODE")
	if dbEndpoint == "" || dbName == "" {
		return "", errors.New("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	if dbSSLMode == "" {
		dbSSLMode = "require"
	}

	var secretData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secretData); err != nil {
		return "", errors.Wrap(err, "failed to retrieve or parse RDS secret")
	}
	if secretData.Username == "" || secretData.Password == "" {
		return "", errors.New("username or password not found in RDS secret data")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secretData.Username),
		url.QueryEscape(secretData.Password),
		dbEndpoint, dbName, dbSSLMode), nil
}

// NewPool opens a pgx pool sized by settings
func NewPool(ctx context.Context, dsn string, settings PoolSettings) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse database DSN")
	}
	poolConfig.MaxConns = settings.MaxConns
	poolConfig.MinConns = settings.MinConns
	poolConfig.MaxConnLifetime = settings.MaxConnLifetime
	poolConfig.MaxConnIdleTime = settings.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}
	return pool, nil
}

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// UnixToNullableTimestamptz converts unix seconds to a nullable
// pgtype.Timestamptz; zero is NULL.
func UnixToNullableTimestamptz(sec int64) pgtype.Timestamptz {
	if sec == 0 {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: time.Unix(sec, 0).UTC(), Valid: true}
}
