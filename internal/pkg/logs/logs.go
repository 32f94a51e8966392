// Package logs is the process-wide logger: logrus with a line formatter,
// optional lumberjack rotation and a per-run log id carried on the context.
package logs

import (
	"context"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const (
	ctxKeyLogID ctxKey = "log_id"
	callerField        = "caller"
)

type Options struct {
	Level      string
	Format     string // text, json
	Output     string // stderr, stdout, file, both
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var std = newLogger(stderr)

// Init replaces the process logger according to opts.
func Init(opts Options) error {
	output := strings.ToLower(strings.TrimSpace(opts.Output))
	if output == "" {
		output = "stderr"
	}
	w, err := buildWriter(opts, output)
	if err != nil {
		return err
	}

	l := newLogger(w)
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&lineFormatter{color: shouldColorize(output)})
	}
	l.SetLevel(ParseLevel(opts.Level))
	std = l
	return nil
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&lineFormatter{color: shouldColorize("stderr")})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// ParseLevel maps a config string onto a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func Warn(format string, v ...interface{})  { logf(nil, logrus.WarnLevel, format, v...) }
func Error(format string, v ...interface{}) { logf(nil, logrus.ErrorLevel, format, v...) }

func CtxDebug(ctx context.Context, format string, v ...interface{}) {
	logf(ctx, logrus.DebugLevel, format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...interface{}) {
	logf(ctx, logrus.InfoLevel, format, v...)
}

func CtxWarn(ctx context.Context, format string, v ...interface{}) {
	logf(ctx, logrus.WarnLevel, format, v...)
}

func CtxError(ctx context.Context, format string, v ...interface{}) {
	logf(ctx, logrus.ErrorLevel, format, v...)
}

// logf must be called directly by the exported helpers: the caller recorded
// on the entry is two frames up.
func logf(ctx context.Context, level logrus.Level, format string, v ...interface{}) {
	if !std.IsLevelEnabled(level) {
		return
	}

	entry := logrus.NewEntry(std)
	if _, file, line, ok := runtime.Caller(2); ok {
		entry = entry.WithField(callerField, shortFilePath(file)+":"+strconv.Itoa(line))
	}
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	entry.Logf(level, format, v...)
}

func NewLogID() string {
	return uuid.New().String()
}

func GetLogID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKeyLogID).(string)
	return id
}

func SetLogID(ctx context.Context, logID string) context.Context {
	return context.WithValue(ctx, ctxKeyLogID, logID)
}
