package logging

// Structured logging for lsaddr

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLevel converts a level name (silent, error, info, verbose, debug) to a LogLevel.
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent", "off":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// String returns the level name.
func (lv LogLevel) String() string {
	switch lv {
	case LogLevelSilent:
		return "silent"
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(lv))
	}
}

// logrusLevel maps our levels onto logrus. Verbose sits between info and debug,
// so it is written at logrus debug and our debug at logrus trace.
func (lv LogLevel) logrusLevel() logrus.Level {
	switch lv {
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelVerbose:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Logger provides structured logging
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	format  string
	file    *os.File
	fileLog *logrus.Logger
	console *logrus.Logger
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	return NewLoggerWithOptions(level, logFile, "text")
}

// NewLoggerWithOptions creates a logger with an explicit file format ("text" or "json").
func NewLoggerWithOptions(level LogLevel, logFile, format string) (*Logger, error) {
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	l := &Logger{
		level:   level,
		format:  format,
		console: newLogrus(os.Stderr, &logrus.TextFormatter{DisableTimestamp: true}),
	}

	// Open log file if specified
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		var formatter logrus.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
		if format == "json" {
			formatter = &logrus.JSONFormatter{}
		}
		l.fileLog = newLogrus(file, formatter)
	}

	return l, nil
}

func newLogrus(out io.Writer, formatter logrus.Formatter) *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(out)
	lg.SetFormatter(formatter)
	lg.SetLevel(logrus.TraceLevel)
	return lg
}

// SetConsoleOutput redirects console messages, which go to stderr by default.
func (l *Logger) SetConsoleOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console.SetOutput(w)
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LogLevelError, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LogLevelInfo, format, v...)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	l.logf(LogLevelVerbose, format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LogLevelDebug, format, v...)
}

func (l *Logger) logf(lv LogLevel, format string, v ...interface{}) {
	l.write(lv, nil, fmt.Sprintf(format, v...))
}

// write writes a message to the appropriate outputs
func (l *Logger) write(lv LogLevel, fields logrus.Fields, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level < lv || lv == LogLevelSilent {
		return
	}

	// Always write to log file if available
	if l.fileLog != nil {
		l.fileLog.WithFields(fields).Log(lv.logrusLevel(), msg)
	}

	// Errors always reach the console; everything else only when verbose or debug
	if lv == LogLevelError || l.level >= LogLevelVerbose {
		l.console.WithFields(fields).Log(lv.logrusLevel(), msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogParse logs the outcome of parsing one address
func (l *Logger) LogParse(input, canonical, dataType string, startBit, endBit int64, err error) {
	if err != nil {
		l.write(LogLevelInfo, logrus.Fields{"input": input, "error": err.Error()}, "address rejected")
		return
	}
	l.write(LogLevelVerbose, logrus.Fields{
		"input":     input,
		"canonical": canonical,
		"type":      dataType,
		"start_bit": startBit,
		"end_bit":   endBit,
	}, "address parsed")
}

// LogStartup logs startup information
func (l *Logger) LogStartup(command, model string, memorySizeBits int64, configPath string) {
	l.Verbose("Starting lsaddr %s", command)
	l.Verbose("  Model: %s", model)
	l.Verbose("  Memory size: %d bits", memorySizeBits)
	if configPath != "" {
		l.Verbose("  Config: %s", configPath)
	}
}

// LogHex logs hex data (for debug level)
func (l *Logger) LogHex(label string, data []byte) {
	if l.GetLevel() < LogLevelDebug {
		return
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	l.Debug("%s: %s", label, strings.Join(parts, " "))
}
