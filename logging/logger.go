package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// import bridge and its tooling as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be logged once the current
	// bridge operation has finished
	warnings []LogMessage

	// m is the mutex used to synchronize the printing of error messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarning        // errors and warnings
	LogLevelVerbose        // errors, warnings, version and phase output (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts the logger to process a message -- errors are displayed
// immediately; warnings are accumulated and displayed when the enclosing
// operation flushes them
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}

	l.m.Unlock()
}

// flushWarnings displays all accumulated warnings and clears the warning list
func (l *Logger) flushWarnings() {
	l.m.Lock()

	if l.LogLevel >= LogLevelWarning {
		for _, lm := range l.warnings {
			lm.display()
		}
	}

	l.warnings = nil
	l.m.Unlock()
}
