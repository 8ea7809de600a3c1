package log

import (
	"github.com/vuuvv/vnmea/core"
	"github.com/vuuvv/vnmea/parser"
	"go.uber.org/zap"
)

// ParseErrors returns a parser error callback that logs every rejected
// sentence. Caller misuse is logged as a warning, data errors at debug
// level. userData, when set, is logged as "source".
func ParseErrors() parser.ErrorCallback {
	return func(class core.ErrorClass, code core.ErrorKind, message string, userData any) {
		fields := []zap.Field{
			zap.Stringer("class", class),
			zap.Stringer("code", code),
			zap.Int("errno", code.Code()),
		}
		if userData != nil {
			fields = append(fields, zap.String("source", toString(userData)))
		}
		if code.Fatal() {
			Logger().Warn(message, fields...)
			return
		}
		Logger().Debug(message, fields...)
	}
}
