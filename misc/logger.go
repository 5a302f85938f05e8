package misc

import (
	"fmt"
	"os"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	logFile   *os.File
	verbosity = "normal"
)

// SetVerbosity changes the verbosity of every logger created after the call
func SetVerbosity(level string) error {
	switch strings.ToLower(level) {
	case "minimal", "normal", "all":
		verbosity = strings.ToLower(level)
		return nil
	default:
		return fmt.Errorf("unknown verbosity %q - expected minimal, normal or all", level)
	}
}

// SetLogFile mirrors the output of every logger created after the call into file
func SetLogFile(file *os.File) {
	logFile = file
}

func NewLogger(name string) bslogger.Logger {
	switch verbosity {
	case "minimal":
		return bslogger.NewLogger(name, bslogger.Minimal, logFile)
	case "all":
		return bslogger.NewLogger(name, bslogger.All, logFile)
	default:
		return bslogger.NewLogger(name, bslogger.Normal, logFile)
	}
}
