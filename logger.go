package sketchdata

import (
	"fmt"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

type kitLogger struct {
	logger log.Logger
}

// NewKitLogger adapts a go-kit logger to Logger. Messages are logged
// under the "msg" key with the matching level.
func NewKitLogger(logger log.Logger) Logger {
	return &kitLogger{logger: logger}
}

func (l *kitLogger) Infof(format string, args ...any) {
	level.Info(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

func (l *kitLogger) Warnf(format string, args ...any) {
	level.Warn(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

func (l *kitLogger) Errorf(format string, args ...any) {
	level.Error(l.logger).Log("msg", fmt.Sprintf(format, args...))
}
