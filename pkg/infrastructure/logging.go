// Package infrastructure provides reusable infrastructure components for Go applications.
package infrastructure

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// FxEventLogger routes the Fx framework's own lifecycle events through a Zap
// logger. Routine dependency-graph chatter is logged at debug level; anything
// that carries an error is logged at error level.
type FxEventLogger struct {
	logger *zap.Logger
}

// NewFxEventLogger creates a new fxevent.Logger backed by the given Zap logger.
// Pass it to fx.WithLogger when assembling the application.
func NewFxEventLogger(logger *zap.Logger) fxevent.Logger {
	return &FxEventLogger{logger: logger.Named("fx")}
}

// LogEvent implements fxevent.Logger.
func (l *FxEventLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("OnStart hook executing",
			zap.String("callee", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		l.hookExecuted("OnStart hook executed", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.OnStopExecuting:
		l.logger.Debug("OnStop hook executing",
			zap.String("callee", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		l.hookExecuted("OnStop hook executed", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.Supplied:
		l.errorOr(e.Err, "supplied", zap.String("type", e.TypeName))
	case *fxevent.Provided:
		l.errorOr(e.Err, "provided",
			zap.String("constructor", e.ConstructorName),
			zap.Strings("types", e.OutputTypeNames),
		)
	case *fxevent.Invoking:
		l.logger.Debug("invoking", zap.String("function", e.FunctionName))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error("invoke failed",
				zap.String("function", e.FunctionName),
				zap.Error(e.Err),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("received signal", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		l.errorOr(e.Err, "stopped")
	case *fxevent.RollingBack:
		l.logger.Error("start failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		l.errorOr(e.Err, "rolled back")
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error("start failed", zap.Error(e.Err))
		} else {
			l.logger.Info("started")
		}
	case *fxevent.LoggerInitialized:
		l.errorOr(e.Err, "initialized custom fxevent.Logger", zap.String("constructor", e.ConstructorName))
	default:
		l.logger.Debug("unhandled fx event", zap.Any("event", event))
	}
}

func (l *FxEventLogger) hookExecuted(msg, callee, caller, runtime string, err error) {
	if err != nil {
		l.logger.Error(msg,
			zap.String("callee", callee),
			zap.String("caller", caller),
			zap.Error(err),
		)

		return
	}
	l.logger.Debug(msg,
		zap.String("callee", callee),
		zap.String("caller", caller),
		zap.String("runtime", runtime),
	)
}

func (l *FxEventLogger) errorOr(err error, msg string, fields ...zap.Field) {
	if err != nil {
		l.logger.Error(msg, append(fields, zap.Error(err))...)

		return
	}
	l.logger.Debug(msg, fields...)
}
