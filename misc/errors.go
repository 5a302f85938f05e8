package misc

import "github.com/BrugadaSyndrome/bslogger"

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

// CheckError
// Logs err at the given severity, prefixed with what was being attempted. A Fatal severity terminates the process.
func CheckError(err error, logger *bslogger.Logger, severity Severity, attempt string) {
	if err == nil {
		return
	}

	message := err.Error()
	if attempt != "" {
		message = attempt + " - " + message
	}

	switch severity {
	case Error:
		logger.Error(message)
	case Warning:
		logger.Warning(message)
	case Info:
		logger.Info(message)
	case Debug:
		logger.Debug(message)
	default:
		logger.Fatal(message)
	}
}
