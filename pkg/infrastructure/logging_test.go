package infrastructure_test

import (
	"errors"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/mangodia/mangodia-bot/pkg/infrastructure"
)

func TestNewFxEventLogger(t *testing.T) {
	logger := zaptest.NewLogger(t)

	adapter := infrastructure.NewFxEventLogger(logger)

	// Verify it implements the correct interface
	var _ fxevent.Logger = adapter

	if adapter == nil {
		t.Fatal("NewFxEventLogger returned nil")
	}
}

func TestFxEventLogger_LogEvent(t *testing.T) {
	logger := zaptest.NewLogger(t)
	adapter := infrastructure.NewFxEventLogger(logger)

	// Test various event types to ensure no panics
	events := []fxevent.Event{
		&fxevent.OnStartExecuting{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
		},
		&fxevent.OnStartExecuted{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
			Err:          nil,
		},
		&fxevent.Provided{
			ConstructorName: "testConstructor",
			OutputTypeNames: []string{"*zap.Logger"},
		},
		&fxevent.Invoking{
			FunctionName: "testFunc",
		},
		&fxevent.Started{
			Err: nil,
		},
	}

	// Should not panic
	for _, event := range events {
		adapter.LogEvent(event)
	}
}

func TestFxEventLogger_WithErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)
	adapter := infrastructure.NewFxEventLogger(logger)

	testError := errors.New("test error")

	// Test events with errors
	errorEvents := []fxevent.Event{
		&fxevent.OnStartExecuted{
			FunctionName: "testFunc",
			CallerName:   "testCaller",
			Err:          testError,
		},
		&fxevent.Started{
			Err: testError,
		},
		&fxevent.LoggerInitialized{
			ConstructorName: "testConstructor",
			Err:             testError,
		},
	}

	// Should not panic even with errors
	for _, event := range errorEvents {
		adapter.LogEvent(event)
	}
}

func TestFxIntegration(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Test that the adapter works with actual Fx
	app := fx.New(
		fx.WithLogger(infrastructure.NewFxEventLogger),
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Invoke(func(*zap.Logger) {
			// Simple function to invoke
		}),
	)

	// Should not panic during creation
	if app == nil {
		t.Fatal("Failed to create Fx app with logger adapter")
	}
}
