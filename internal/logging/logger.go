package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a zap logger bound to a rotating file.
type Logger struct {
	*zap.Logger
	file *lumberjack.Logger
}

// NewLogger writes JSON lines to <logDir>/<name>.log.
func NewLogger(logDir, name, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, name+".log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(file), lvl)
	return &Logger{Logger: zap.New(core, zap.AddCaller()), file: file}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and releases the log file.
func (l *Logger) Close() error {
	if l == nil || l.Logger == nil {
		return nil
	}
	err := l.Sync()
	if l.file != nil {
		err = multierr.Append(err, l.file.Close())
	}
	return err
}

func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
