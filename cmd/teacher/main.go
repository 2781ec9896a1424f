package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/attendance"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/moderation"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/runtime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// All defers (closing the listener, flushing sessions) execute before the process exits,
// and the initialization logic stays decoupled from the main entry point.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Optional moderation of group-chat lines
	moderator, err := buildModerator(config, log)
	if err != nil {
		return err
	}

	// 3. Core composition: roster, router, attendance, controller
	roster := runtime.NewRoster()
	router := runtime.NewRouter(log, roster)
	attendanceLog := attendance.NewLog(config.AttendanceFile, log)
	controller := runtime.NewController(
		log, roster, router, attendanceLog, moderator,
		config.BufferSize, config.SinkTimeout, config.MetricInterval, config.RestartInterval,
	)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	console := newConsole(log, controller, addr, os.Stdout)
	controller.Add(console)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers (event fan-out, telemetry, health)
	go func() {
		_ = controller.Run(ctx)
	}()

	// 6. Teacher console, blocking until /quit or EOF
	console.Loop(ctx)

	if controller.IsRunning() {
		_ = controller.Stop()
	}
	log.Info("Shutting down gracefully...")
	return nil
}

func buildModerator(config Config, log *slog.Logger) (*moderation.Moderator, error) {
	if config.CensoredWordsFile == nil {
		return nil, nil
	}
	replacement, err := characterRune(config.CensoredChar)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.FromFile(*config.CensoredWordsFile, replacement, log)
	if err != nil {
		return nil, fmt.Errorf("could not load censored words: %w", err)
	}
	log.Info("Moderation enabled", "dictionary", *config.CensoredWordsFile)
	return moderator, nil
}

func characterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", str)
	}
	return r[0], nil
}
