package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockOptionsStoreForTest creates a new mock OptionsStore for testing
func NewMockOptionsStoreForTest(t *testing.T) *MockOptionsStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockOptionsStore(ctrl)
}

// NewMockOptionsBackendForTest creates a new mock OptionsBackend for testing
func NewMockOptionsBackendForTest(t *testing.T) *MockOptionsBackend {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockOptionsBackend(ctrl)
}

// NewMockNotifierForTest creates a new mock Notifier for testing
func NewMockNotifierForTest(t *testing.T) *MockNotifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNotifier(ctrl)
}

// NewMockRouterForTest creates a new mock Router for testing
func NewMockRouterForTest(t *testing.T) *MockRouter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRouter(ctrl)
}

// NewMockEventRecorderForTest creates a new mock EventRecorder for testing
func NewMockEventRecorderForTest(t *testing.T) *MockEventRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEventRecorder(ctrl)
}

// NewMockPluginInstallerForTest creates a new mock PluginInstaller for testing
func NewMockPluginInstallerForTest(t *testing.T) *MockPluginInstaller {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPluginInstaller(ctrl)
}

// NewMockPaymentsTaskForTest creates a new mock PaymentsTask for testing
func NewMockPaymentsTaskForTest(t *testing.T) *MockPaymentsTask {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentsTask(ctrl)
}

// NewMockChartServiceForTest creates a new mock ChartService for testing
func NewMockChartServiceForTest(t *testing.T) *MockChartService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChartService(ctrl)
}

// NewMockWelcomeCardServiceForTest creates a new mock WelcomeCardService for testing
func NewMockWelcomeCardServiceForTest(t *testing.T) *MockWelcomeCardService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWelcomeCardService(ctrl)
}
