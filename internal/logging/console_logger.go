package logging

import (
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// ConsoleLogger writes prefixed messages through pterm.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	mu      sync.Mutex

	verbosePrinter *pterm.PrefixPrinter
	info           *pterm.PrefixPrinter
	success        *pterm.PrefixPrinter
	warning        *pterm.PrefixPrinter
	error          *pterm.PrefixPrinter
}

// NewConsoleLoggerWithWriter creates a logger writing to w.
func NewConsoleLoggerWithWriter(w io.Writer, verbose bool) *ConsoleLogger {
	verbosePrinter := pterm.PrefixPrinter{
		MessageStyle: &pterm.ThemeDefault.DebugMessageStyle,
		Prefix: pterm.Prefix{
			Text:  "VERBOSE",
			Style: &pterm.ThemeDefault.DebugPrefixStyle,
		},
	}

	return &ConsoleLogger{
		verbose:        verbose,
		verbosePrinter: verbosePrinter.WithWriter(w),
		info:           pterm.Info.WithWriter(w),
		success:        pterm.Success.WithWriter(w),
		warning:        pterm.Warning.WithWriter(w),
		error:          pterm.Error.WithWriter(w),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.print(l.verbosePrinter, format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.print(l.info, format, args...)
}

// Success logs a completed step.
func (l *ConsoleLogger) Success(format string, args ...interface{}) {
	l.print(l.success, format, args...)
}

// Warn logs a non-blocking problem.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.print(l.warning, format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.print(l.error, format, args...)
}

func (l *ConsoleLogger) print(p *pterm.PrefixPrinter, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		p.Printfln(format, args...)
	} else {
		p.Println(format)
	}
}
