package neocortex

import "github.com/sirupsen/logrus"

// Logger is the event log collaborator (spec: "accepts trace-level
// messages during normal operation and error-level messages during
// best-effort cleanup failures"). It is a narrow subset of
// logrus.FieldLogger so that a *logrus.Logger or *logrus.Entry can be
// passed directly; there is no format contract beyond "advisory".
type Logger interface {
	Tracef(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Tracef(string, ...interface{}) {}
func (noopLogger) Errorf(string, ...interface{}) {}

// defaultLogger is the package-wide no-op default. The core must not (and
// does not) behave differently whether or not a caller installs a real
// logger via SetLogger.
var defaultLogger Logger = noopLogger{}

// SetLogger installs the event log collaborator used by all handles and
// locks from this call on, including ones created before it. Passing nil
// restores the no-op default.
// This is a process-wide setting, the way logrus's own package-level
// logger is process-wide.
func SetLogger(l Logger) {
	if l == nil {
		defaultLogger = noopLogger{}
		return
	}
	defaultLogger = l
}

var _ Logger = (*logrus.Logger)(nil)
var _ Logger = (*logrus.Entry)(nil)
