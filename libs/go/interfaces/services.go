package interfaces

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/cyphera/store-admin/libs/go/types/business"
)

// ChartService prepares time series data for dashboard charts
type ChartService interface {
	Prepare(ctx context.Context, params ChartPrepareParams) (*business.PreparedChart, error)
}

// ChartPrepareParams contains the dataset and formatting options for a chart
type ChartPrepareParams struct {
	Data        []business.TimeSeriesRecord
	DateFormat  string
	BaseValue   float64
	ValueFormat string
	LabelFormat string
}

// PaymentsTask drives the payments step of the onboarding task list
type PaymentsTask interface {
	Refresh(ctx context.Context) error
	View() business.PaymentsTaskView
	ToggleMethod(ctx context.Context, key string) error
	BeginConfigure(ctx context.Context, key string) (business.ConfigureMode, error)
	MarkConfigured(key string) error
	MarkConfigurationFinished(key string) error
	InstallPlugins(ctx context.Context, key string) error
	CompleteTask(ctx context.Context) error
	SkipTask(ctx context.Context) error
}

// WelcomeCardService manages the marketing overview welcome card
type WelcomeCardService interface {
	IsHidden(ctx context.Context) (bool, error)
	Hide(ctx context.Context) error
}
