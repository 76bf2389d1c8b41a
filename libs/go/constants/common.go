package constants

// Common string constants used throughout the codebase
const (
	ServiceName = "store-admin-api"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Option flag values as stored by the store settings
	OptionYes = "yes"
	OptionNo  = "no"

	// Notice severities
	NoticeSuccess = "success"
	NoticeError   = "error"

	// Navigation
	DashboardRootPath = "/"
	TaskQueryParam    = "task"
	MethodQueryParam  = "method"
	PaymentsTaskName  = "payments"
)
