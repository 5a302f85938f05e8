package misc

import (
	"errors"
	"testing"
)

func TestSetVerbosity(t *testing.T) {
	defer SetVerbosity("normal")

	for _, level := range []string{"minimal", "All", "NORMAL"} {
		if err := SetVerbosity(level); err != nil {
			t.Errorf("SetVerbosity(%q) failed: %v", level, err)
		}
	}
	if err := SetVerbosity("loud"); err == nil {
		t.Error("Expected an unknown verbosity to fail")
	}
	if verbosity != "normal" {
		t.Errorf("Failed call changed verbosity to %q", verbosity)
	}
}

func TestCheckErrorNonFatal(t *testing.T) {
	logger := NewLogger("Test")

	// None of these may terminate the test binary
	CheckError(nil, &logger, Fatal, "Nothing")
	CheckError(errors.New("boom"), &logger, Warning, "Warning")
	CheckError(errors.New("boom"), &logger, Info, "")
	CheckError(errors.New("boom"), &logger, Debug, "Debug")
}
