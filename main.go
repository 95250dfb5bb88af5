// Package main provides the entry point for the Mangodia Discord bot application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/mangodia/mangodia-bot/internal/app"
	"github.com/mangodia/mangodia-bot/internal/bot"
	"github.com/mangodia/mangodia-bot/internal/commands"
	"github.com/mangodia/mangodia-bot/internal/config"
	"github.com/mangodia/mangodia-bot/internal/discord"
	"github.com/mangodia/mangodia-bot/internal/gif"
	"github.com/mangodia/mangodia-bot/internal/infrastructure"
	"github.com/mangodia/mangodia-bot/internal/serverinfo"
	pkginfra "github.com/mangodia/mangodia-bot/pkg/infrastructure"
)

func main() {
	// Load a .env file if one is present; real environment variables win.
	_ = godotenv.Load()

	// Set a default config path. This can be overridden by environment variables if needed.
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	// Create the application with all modules
	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,

		// Application modules
		gif.Module,
		serverinfo.Module,
		commands.Module,
		bot.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxEventLogger),
	)

	// Set up a channel to listen for OS signals (like Ctrl+C)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start the application in a goroutine
	go application.Run()

	// Block until a signal is received
	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Create a context with timeout for graceful shutdown
	// Give the application 30 seconds to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	// Gracefully stop the application
	err := application.Stop(shutdownCtx)
	cancel() // Always cancel the context after Stop returns

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
