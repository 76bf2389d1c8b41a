package helpers

import (
	"github.com/cyphera/store-admin/libs/go/constants"
	"github.com/pkg/errors"
)

// Deployment stages. Prod and dev read credentials from Secrets Manager,
// local reads plain environment variables.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// ResolveStage reads STAGE, defaulting to local. defaulted reports whether
// the variable was unset.
func ResolveStage(getenv func(string) string) (stage string, defaulted bool, err error) {
	stage = getenv("STAGE")
	if stage == "" {
		return StageLocal, true, nil
	}
	if !IsValidStage(stage) {
		return "", false, errors.Errorf("invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, StageProd, StageDev, StageLocal)
	}
	return stage, false, nil
}
