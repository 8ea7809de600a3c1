package log

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
	"go.uber.org/zap"
)

var logger *zap.Logger
var defaultLogger *zap.Logger

// Logger falls back to the zap global logger until SetLogger is called.
func Logger() *zap.Logger {
	if logger == nil {
		return zap.L()
	}
	return logger
}

func SetLogger(l *zap.Logger) {
	logger = l
}

func DefaultLogger() *zap.Logger {
	if defaultLogger == nil {
		return zap.L()
	}
	return defaultLogger
}

func SetDefaultLogger(l *zap.Logger) {
	defaultLogger = l
	zap.ReplaceGlobals(l)
}

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case error:
		return fmt.Sprintf("%+v", v)
	case fmt.Stringer:
		return v.String()
	default:
		return cast.ToString(val)
	}
}

func CastToError(reason any) (msg string, err error) {
	switch v := reason.(type) {
	case nil:
		err = errors.NewAndSkip("Unknown Error", 2)
	case error:
		err = errors.WithStackAndSkip(v, 2)
	default:
		err = errors.NewAndSkip(toString(reason), 2)
	}

	if Logger().Level().Enabled(zap.DebugLevel) {
		msg = fmt.Sprintf("%+v", err)
	} else {
		msg = err.Error()
	}

	return
}

func Error(reason any, field ...zap.Field) {
	msg, err := CastToError(reason)

	Logger().Error(msg, append(field, zap.Error(err))...)
}

func Warn(reason any, field ...zap.Field) {
	msg, err := CastToError(reason)

	Logger().Warn(msg, append(field, zap.Error(err))...)
}

func Info(msg string, field ...zap.Field) {
	Logger().Info(msg, field...)
}

func Debug(msg string, field ...zap.Field) {
	Logger().Debug(msg, field...)
}
