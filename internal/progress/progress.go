// Package progress defines the progress event type shared by the
// offline pipeline stages (parsing, enrichment, preview caching) and
// rendered by the command-line tools.
package progress

import "fmt"

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents one progress update.
type Event struct {
	Message string
	Level   Level
}

// Func receives progress events. A nil Func is always safe to call
// through Emit.
type Func func(Event)

// Emit sends an event through fn if fn is non-nil.
func (fn Func) Emit(level Level, format string, args ...any) {
	if fn == nil {
		return
	}
	fn(Event{Message: fmt.Sprintf(format, args...), Level: level})
}

// Printer returns a Func that prints prefixed lines to stdout, the
// form the command-line tools use. Verbose events are dropped unless
// verbose is true.
func Printer(verbose bool) Func {
	return func(event Event) {
		if event.Level == LevelVerbose && !verbose {
			return
		}

		prefix := "   "
		switch event.Level {
		case LevelError:
			prefix = "✗ "
		case LevelWarning:
			prefix = "! "
		case LevelSuccess:
			prefix = "✓ "
		case LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	}
}
