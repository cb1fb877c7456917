package logging

import "os"

// logger is a global reference to a shared Logger (created/initialized with
// the bridge, but separated for general usage)
var logger Logger

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	var loglevel int
	switch loglevelname {
	case "silent":
		loglevel = LogLevelSilent
	case "error":
		loglevel = LogLevelError
	case "warning":
		loglevel = LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		loglevel = LogLevelVerbose
	}

	logger = newLogger(loglevel)
}

// ShouldProceed indicates whether or not the log module has encountered any
// errors.  This is useful for sections of the bridge that process many
// declarations and want an error accumulator
func ShouldProceed() bool {
	return logger.errorCount == 0
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their
// appropriate log level.

// LogImportError logs an error encountered while importing foreign
// declarations (eg. a foreign module exporting a malformed interface)
func LogImportError(kind int, moduleName, message string) {
	logger.handleMsg(&ImportMessage{
		Message:    message,
		Kind:       kind,
		ModuleName: moduleName,
		IsError:    true,
	})
}

// LogImportWarning logs a warning encountered while importing foreign
// declarations
func LogImportWarning(kind int, moduleName, message string) {
	logger.handleMsg(&ImportMessage{
		Message:    message,
		Kind:       kind,
		ModuleName: moduleName,
		IsError:    false,
	})
}

// LogConfigError logs an error related to bridge or tool configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogFatal logs a fatal bridge error: ie. the foreign frontend violated a
// contract the bridge cannot locally recover from.  This never returns.
func LogFatal(message string) {
	displayFatalError(message)
	os.Exit(1)
}

// FlushWarnings displays all warnings accumulated since the last flush
func FlushWarnings() {
	logger.flushWarnings()
}

// LogBridgeHeader displays the tool version and target before the bridge
// starts servicing lookups
func LogBridgeHeader(target string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBridgeHeader(target)
	}
}

// LogBeginPhase marks the beginning of a named bridge phase (eg. `Loading`)
func LogBeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// LogEndPhase marks the end of the current bridge phase
func LogEndPhase(success bool) {
	if logger.LogLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}
