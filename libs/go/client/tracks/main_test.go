package tracks

import (
	"testing"

	"go.uber.org/goleak"
)

// Sends run on background goroutines; every test must leave
// none behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
