package logging

// Level represents a log level. Levels are ordered by verbosity: a logger
// emits a message if the message's level is at or below the logger's own.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only fatal errors are logged.
	LevelError
	// LevelWarn indicates that both fatal and non-fatal errors are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged (in
	// addition to all errors).
	LevelInfo
	// LevelDebug indicates that advanced execution information is logged (in
	// addition to basic information and all errors).
	LevelDebug
	// LevelTrace indicates that low-level execution information is logged (in
	// addition to all other execution information and all errors).
	LevelTrace
)

// levelNames maps log levels to their names.
var levelNames = map[Level]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// ParseLevel converts a log level name (as produced by String) to the
// corresponding Level value. It returns a boolean indicating whether or not
// the name was valid.
func ParseLevel(name string) (Level, bool) {
	for level, candidate := range levelNames {
		if candidate == name {
			return level, true
		}
	}
	return LevelDisabled, false
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}
