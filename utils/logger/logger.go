package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *zap.SugaredLogger

func init() {
	// Default logger so packages can log before Init runs (tests, init code)
	Init("", os.Getenv("GIN_MODE") != "release")
}

// Init configures the global logger. If filePath is non-empty, logs also go
// to a rolling file (10MB per file, 3 backups, kept a week). development
// controls DPanic behaviour: panic in dev, log and continue in release.
func Init(filePath string, development bool) {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(os.Stdout), zapcore.DebugLevel),
	}

	if filePath != "" {
		lj := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(lj), zapcore.DebugLevel))
	}

	opts := []zap.Option{zap.AddCaller()}
	if development {
		opts = append(opts, zap.Development())
	}

	Log = zap.New(zapcore.NewTee(cores...), opts...).Sugar()
}

// Sync flushes buffered log entries; call on shutdown
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

// Convenience functions
func Info(args ...interface{}) {
	Log.Info(args...)
}

func Infof(template string, args ...interface{}) {
	Log.Infof(template, args...)
}

func Error(args ...interface{}) {
	Log.Error(args...)
}

func Errorf(template string, args ...interface{}) {
	Log.Errorf(template, args...)
}

func Debug(args ...interface{}) {
	Log.Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	Log.Debugf(template, args...)
}

// DPanicf panics under the development option, logs at error level otherwise.
// Reserved for states that correct enqueue/dequeue discipline makes unreachable.
func DPanicf(template string, args ...interface{}) {
	Log.DPanicf(template, args...)
}
