package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity accepted by SetLevel
type Level logging.Level

// Verbosity levels, most verbose first
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// format prefixes each message with time, module and level
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// leveledBackend is replaced whenever the sink changes
var leveledBackend logging.LeveledBackend

// currentLevel survives SetSink so swapping the output keeps the verbosity
var currentLevel = logging.NOTICE

// Logger is a named leveled logger
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for the named module
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects every logger to sink
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(currentLevel, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity of every logger
func SetLevel(level Level) {
	switch level {
	case Debug:
		currentLevel = logging.DEBUG
	case Info:
		currentLevel = logging.INFO
	case Notice:
		currentLevel = logging.NOTICE
	case Warning:
		currentLevel = logging.WARNING
	case Error:
		currentLevel = logging.ERROR
	}

	leveledBackend.SetLevel(currentLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
