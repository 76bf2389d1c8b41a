package services_test

import (
	"context"
	"testing"

	"github.com/cyphera/store-admin/libs/go/client/options"
	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/mocks"
	"github.com/cyphera/store-admin/libs/go/services"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWelcomeCardService_IsHidden(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(store *mocks.MockOptionsStore)
		expected  bool
		wantErr   bool
	}{
		{
			name: "hidden",
			setupMock: func(store *mocks.MockOptionsStore) {
				store.EXPECT().GetOptions(gomock.Any(), []string{constants.OptionMarketingWelcomeHidden}).
					Return(map[string]interface{}{constants.OptionMarketingWelcomeHidden: "yes"}, nil)
			},
			expected: true,
		},
		{
			name: "explicitly shown",
			setupMock: func(store *mocks.MockOptionsStore) {
				store.EXPECT().GetOptions(gomock.Any(), gomock.Any()).
					Return(map[string]interface{}{constants.OptionMarketingWelcomeHidden: "no"}, nil)
			},
			expected: false,
		},
		{
			name: "never set",
			setupMock: func(store *mocks.MockOptionsStore) {
				store.EXPECT().GetOptions(gomock.Any(), gomock.Any()).Return(map[string]interface{}{}, nil)
			},
			expected: false,
		},
		{
			name: "store error",
			setupMock: func(store *mocks.MockOptionsStore) {
				store.EXPECT().GetOptions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockOptionsStoreForTest(t)
			tt.setupMock(store)

			hidden, err := services.NewWelcomeCardService(store).IsHidden(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hidden)
		})
	}
}

func TestWelcomeCardService_Hide(t *testing.T) {
	ctx := context.Background()

	t.Run("writes yes", func(t *testing.T) {
		store := mocks.NewMockOptionsStoreForTest(t)
		store.EXPECT().UpdateOptions(gomock.Any(), map[string]interface{}{
			constants.OptionMarketingWelcomeHidden: "yes",
		}).Return(nil)

		assert.NoError(t, services.NewWelcomeCardService(store).Hide(ctx))
	})

	t.Run("persists through the store", func(t *testing.T) {
		backend := options.NewMemoryBackend(nil)
		store := options.NewStore(backend)
		service := services.NewWelcomeCardService(store)

		require.NoError(t, service.Hide(ctx))
		store.Wait()

		saved, err := backend.Load(ctx, []string{constants.OptionMarketingWelcomeHidden})
		require.NoError(t, err)
		assert.Equal(t, "yes", saved[constants.OptionMarketingWelcomeHidden])

		hidden, err := services.NewWelcomeCardService(options.NewStore(backend)).IsHidden(ctx)
		require.NoError(t, err)
		assert.True(t, hidden)
	})

	t.Run("store error", func(t *testing.T) {
		store := mocks.NewMockOptionsStoreForTest(t)
		store.EXPECT().UpdateOptions(gomock.Any(), gomock.Any()).Return(errors.New("closed"))

		assert.Error(t, services.NewWelcomeCardService(store).Hide(ctx))
	})
}
