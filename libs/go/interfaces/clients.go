package interfaces

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

import (
	"context"

	"github.com/cyphera/store-admin/libs/go/types/business"
)

// OptionsStore is the store's global key-value settings table
type OptionsStore interface {
	GetOptions(ctx context.Context, names []string) (map[string]interface{}, error)
	// UpdateOptions queues a write and returns without waiting for it. The
	// outcome is observed later through RequestState.
	UpdateOptions(ctx context.Context, values map[string]interface{}) error
	RequestState(names []string) business.OptionRequestState
}

// OptionsBackend persists option values
type OptionsBackend interface {
	Load(ctx context.Context, names []string) (map[string]interface{}, error)
	Save(ctx context.Context, values map[string]interface{}) error
}

// Notifier shows a message to the merchant
type Notifier interface {
	Notify(severity, message string)
}

// Router exposes the dashboard's current location and moves it
type Router interface {
	CurrentPath() string
	CurrentQuery() map[string]string
	Navigate(path string, query map[string]string)
}

// EventRecorder records a tracking event. Implementations must not block
// and swallow their own failures.
type EventRecorder interface {
	Record(eventName string, properties map[string]interface{})
}

// PluginInstaller installs and activates plugins asynchronously
type PluginInstaller interface {
	ActivePlugins(ctx context.Context) ([]string, error)
	Install(ctx context.Context, slugs []string, onComplete func(), onError func(error))
}
