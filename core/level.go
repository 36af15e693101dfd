package core

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (causes os.Exit(1))
	FatalLevel
	// PanicLevel for panic messages (causes panic)
	PanicLevel
)

// Syslog severities as defined by RFC 3164, section 4.1.1.
const (
	SeverityEmergency = 0
	SeverityAlert     = 1
	SeverityCritical  = 2
	SeverityError     = 3
	SeverityWarning   = 4
	SeverityNotice    = 5
	SeverityInfo      = 6
	SeverityDebug     = 7
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// Severity returns the syslog severity equivalent of the level.
// Unknown levels map to SeverityInfo.
func (l Level) Severity() int {
	switch l {
	case DebugLevel:
		return SeverityDebug
	case InfoLevel:
		return SeverityInfo
	case WarnLevel:
		return SeverityWarning
	case ErrorLevel:
		return SeverityError
	case FatalLevel:
		return SeverityCritical
	case PanicLevel:
		return SeverityEmergency
	default:
		return SeverityInfo
	}
}
