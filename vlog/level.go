package vlog

import (
	"fmt"
	"strings"
)

// Level defines the severity of a validation message. Levels are flags, so a
// logger can be enabled for an arbitrary subset such as LevelWarning|LevelError.
type Level uint8

const (
	LevelTrace Level = 1 << iota
	LevelDebug
	LevelInformation
	LevelWarning
	LevelError
)

const (
	// LevelNone matches no messages. It is not a valid level to log at.
	LevelNone Level = 0

	// LevelAll is the union of every severity flag.
	LevelAll = LevelTrace | LevelDebug | LevelInformation | LevelWarning | LevelError
)

// DefaultLevels is the enabled mask a logger starts with unless told otherwise.
const DefaultLevels = LevelInformation | LevelWarning | LevelError

// String returns the textual name of a level. Combined masks are rendered as
// their singular names joined by '|'.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelTrace:
		return "Trace"
	case LevelDebug:
		return "Debug"
	case LevelInformation:
		return "Information"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelAll:
		return "All"
	}

	var names []string
	for _, flag := range []Level{LevelTrace, LevelDebug, LevelInformation, LevelWarning, LevelError} {
		if l&flag != 0 {
			names = append(names, flag.String())
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return strings.Join(names, "|")
}

// IsSingular reports whether l is exactly one of the five severity flags.
// Only singular levels may be passed to Logger.Log.
func (l Level) IsSingular() bool {
	switch l {
	case LevelTrace, LevelDebug, LevelInformation, LevelWarning, LevelError:
		return true
	}
	return false
}

// ParseLevel resolves a level name to its flag. Matching is case-insensitive
// and accepts the singular names plus "None" and "All".
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return LevelNone, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "information", "info":
		return LevelInformation, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "all":
		return LevelAll, nil
	}
	return LevelNone, fmt.Errorf("unknown log level %q", name)
}
