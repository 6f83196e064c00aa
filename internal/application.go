package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	difficulty, err := entity.ParseDifficulty(conf.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid difficulty: %w", err)
	}

	botService := service.NewBotService(logger)
	gamePlayService := service.NewGamePlayService(logger, botService)

	log.Info("Starting console", "difficulty", difficulty)

	consoleServer := console.New(logger, gamePlayService, difficulty, os.Stdout)
	if err = consoleServer.Start(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}
