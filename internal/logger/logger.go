// Package logger sets up structured logging on zap.
//
// The package keeps one process-wide logger so engine packages can log
// without threading a logger through every constructor.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger.
var Log *zap.Logger

// Sugar wraps Log for printf-style call sites.
var Sugar *zap.SugaredLogger

func init() {
	// Packages may log before Init runs (and tests rarely run it).
	Log = zap.NewNop()
	Sugar = Log.Sugar()
}

// FileConfig describes the rotating log file.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns the rotation settings used when only a
// path is given.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  20,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// Init sets up console logging at the given level. When path is
// non-empty the log also goes to a rotating file with the default
// rotation settings.
func Init(level, path string) error {
	var fileCfg FileConfig
	if path != "" {
		fileCfg = DefaultFileConfig(path)
	}
	return InitWithFileConfig(level, fileCfg, true)
}

// InitWithFileConfig sets up logging with explicit file settings. Set
// console to false to silence console output (used by tests).
func InitWithFileConfig(level string, fileCfg FileConfig, console bool) error {
	lvl := parseLevel(level)

	var cores []zapcore.Core
	if console {
		cores = append(cores, consoleCore(lvl))
	}
	if fileCfg.Path != "" {
		cores = append(cores, fileCore(fileCfg, lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Sugar = Log.Sugar()

	return nil
}

// consoleCore writes colored clock-time lines to stdout.
func consoleCore(lvl zapcore.Level) zapcore.Core {
	enc := encoderConfig(
		zapcore.TimeEncoderOfLayout("15:04:05.000"),
		zapcore.CapitalColorLevelEncoder,
	)
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(os.Stdout), lvl)
}

// fileCore writes plain ISO8601 lines through lumberjack rotation.
func fileCore(cfg FileConfig, lvl zapcore.Level) zapcore.Core {
	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	enc := encoderConfig(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder)
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(writer), lvl)
}

// encoderConfig is shared between the console and file encoders, which
// differ only in how they format time and level.
func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

var levelNames = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// parseLevel maps a level name to its zap level. Unknown names fall
// back to info.
func parseLevel(name string) zapcore.Level {
	if lvl, ok := levelNames[name]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// Sync flushes whatever the cores have buffered.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
