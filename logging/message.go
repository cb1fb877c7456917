package logging

// LogMessage is the interface implemented by everything the logger can record
type LogMessage interface {
	display()
	isError() bool
}

// Enumeration of import message kinds
const (
	LMKModule = iota
	LMKName
	LMKMacro
	LMKExtension
	LMKAdapter
)

// ImportMessage represents an error or warning produced while bridging
// declarations from the foreign frontend
type ImportMessage struct {
	Message string

	// Kind must be one of the enumerated import message kinds
	Kind int

	// ModuleName is the full name of the foreign module the message concerns;
	// it may be empty when no single module is involved
	ModuleName string

	IsError bool
}

func (im *ImportMessage) isError() bool {
	return im.IsError
}

// ConfigError represents an error in bridge or tool configuration
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}
