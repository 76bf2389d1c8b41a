package services

import (
	"context"

	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/pkg/errors"
)

// WelcomeCardService reads and dismisses the marketing overview welcome card
type WelcomeCardService struct {
	options interfaces.OptionsStore
	log     *logger.StructuredLogger
}

// NewWelcomeCardService creates a new welcome card service
func NewWelcomeCardService(options interfaces.OptionsStore) *WelcomeCardService {
	return &WelcomeCardService{
		options: options,
		log:     logger.NewStructuredLogger(logger.ComponentMarketing),
	}
}

// IsHidden reports whether the merchant dismissed the card
func (s *WelcomeCardService) IsHidden(ctx context.Context) (bool, error) {
	opts, err := s.options.GetOptions(ctx, []string{constants.OptionMarketingWelcomeHidden})
	if err != nil {
		return false, errors.Wrap(err, "failed to read welcome card option")
	}
	hidden, _ := opts[constants.OptionMarketingWelcomeHidden].(string)
	return hidden == constants.OptionYes, nil
}

// Hide dismisses the card for good
func (s *WelcomeCardService) Hide(ctx context.Context) error {
	err := s.options.UpdateOptions(ctx, map[string]interface{}{
		constants.OptionMarketingWelcomeHidden: constants.OptionYes,
	})
	if err != nil {
		return errors.Wrap(err, "failed to hide welcome card")
	}
	s.log.Info("Marketing welcome card hidden")
	return nil
}
