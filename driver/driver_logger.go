package driver

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/chainguard-dev/clog"
)

type driverLogger struct {
	logger *clog.Logger
}

func newDriverLogger(l *clog.Logger) aws.Logger {
	return driverLogger{logger: l}
}

func (l driverLogger) Log(args ...interface{}) {
	l.logger.Debugf("%s", fmt.Sprint(args...))
}
