package logger

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"

	"world-cities/config"
)

// Logger is the subset of gookit/slog the application logs through.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields are attached to a single structured log line.
type Fields map[string]any

const defaultServiceName = "world-cities"

// Log is the process-wide logger. It logs at info until Init is called.
var Log Logger = NewLogger("info")

var serviceName = defaultServiceName

// Init replaces the global logger with one built from cfg. Unknown levels
// fall back to info.
func Init(cfg config.LoggingConfig) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)

	serviceName = defaultServiceName
	if sn := strings.TrimSpace(cfg.ServiceName); sn != "" {
		serviceName = sn
	}
}

// NewLogger builds a JSON console logger that emits level and above.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))

	return slog.NewWithHandlers(h)
}

func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		fields["service_name"] = serviceName
	}
	return fields
}

func logWithFields(lv slog.Level, msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Log(lv, msg)
		return
	}
	switch lv {
	case slog.ErrorLevel:
		Log.Error(msg)
	case slog.WarnLevel:
		Log.Warn(msg)
	default:
		Log.Info(msg)
	}
}

func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
