package testutil

import (
	"os"
	"testing"
)

const envUseCI = "RSHA_CI"

// SkipCI skips long running tests unless RSHA_CI is set.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip RSHA CI")
	}
}
