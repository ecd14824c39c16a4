package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelDebug
)

// Options configures the Logger.
type Options struct {
	// Out is where user-facing logs are printed.
	// In most cases this should be os.Stdout.
	Out io.Writer

	// LogLevel controls the amount of logs printed to Out.
	// error < info < warn < debug
	LogLevel LogLevel

	// Component identifies the source of log messages (e.g., "server", "publish").
	// If empty, no component tag is included in log output.
	Component string

	// Plain disables lipgloss styling, for non-terminal outputs.
	Plain bool
}

// Logger is the leveled stdout logger shared by all binaries.
type Logger struct {
	out       io.Writer
	mu        sync.Mutex
	style     styles
	component string
	plain     bool

	logLevel LogLevel
}

type styles struct {
	logInfo  lipgloss.Style
	logWarn  lipgloss.Style
	logError lipgloss.Style
	banner   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		logInfo:  lipgloss.NewStyle(),
		logWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange-ish
		logError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		banner:   lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder()).Padding(0, 1).Margin(1, 0),
	}
}

// New creates a new Logger.
func New(opts Options) *Logger {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Logger{
		out:       opts.Out,
		style:     defaultStyles(),
		logLevel:  opts.LogLevel,
		component: opts.Component,
		plain:     opts.Plain,
	}
}

func (l *Logger) SetLogLevel(logLevel LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLevel = logLevel
}

func (l *Logger) SetComponent(component string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.component = component
}

// SetOut redirects log output, e.g. to stderr when stdout carries the
// game protocol.
func (l *Logger) SetOut(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// MuteStdout silences log output until restore is called. The previous
// writer comes back on restore, so redirected loggers stay redirected.
func (l *Logger) MuteStdout() (restore func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.out
	l.out = io.Discard
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.out = prev
	}
}

func (l *Logger) Error(format string, args ...any) {
	l.printLog("ERR ", l.style.logError, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	if l.logLevel >= LogLevelWarn {
		l.printLog("WARN", l.style.logWarn, format, args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.logLevel >= LogLevelInfo {
		l.printLog("INFO", l.style.logInfo, format, args...)
	}
}

func (l *Logger) Debug(format string, args ...any) {
	if l.logLevel >= LogLevelDebug {
		l.printLog("DEBG", l.style.logInfo, format, args...)
	}
}

func (l *Logger) printLog(level string, style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02T15:04:05.000")

	componentTag := ""
	if l.component != "" {
		componentTag = fmt.Sprintf("[%s] ", l.component)
	}

	line := fmt.Sprintf("[%s] [%s] %s%s", timestamp, level, componentTag, msg)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.plain {
		fmt.Fprintln(l.out, line)
		return
	}
	fmt.Fprintln(l.out, style.Render(line))
}

// Banner prints a boxed title.
func (l *Logger) Banner(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.plain {
		fmt.Fprintf(l.out, "\n===== %s =====\n\n", title)
		return
	}
	fmt.Fprintln(l.out, l.style.banner.Render(title))
}
