package options_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Writes run on background goroutines; every test must leave
// none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
