package main

import (
	"context"
	"os"
	"time"

	"github.com/cyphera/store-admin/apps/tracks-processor/internal/processor"
	"github.com/cyphera/store-admin/libs/go/client/aws"
	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/cyphera/store-admin/libs/go/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	stage, _, err := helpers.ResolveStage(os.Getenv)
	if err != nil {
		panic(err)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing tracks processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := aws.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := helpers.ResolveDatabaseDSN(ctx, stage, secretsClient, os.Getenv)
	if err != nil {
		logger.Fatal("Failed to resolve database DSN", zap.Error(err))
	}

	pool, err := helpers.NewPool(ctx, dsn, helpers.PoolSettings{
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 15 * time.Minute,
	})
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	store := processor.NewPostgresStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Unable to prepare tracking tables", zap.Error(err))
	}

	lambda.Start(processor.New(store).HandleSQSEvent)
}
