package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-manager/internal/cli"
	"library-manager/internal/config"
	"library-manager/pkg/container"
	"library-manager/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// The menu shares the terminal, so only warnings show by default
	logger.Init(cfg.App.Environment, cfg.Log.LevelOr("warn"))
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
	logger.Info("Starting CLI", map[string]any{"app": cfg.App.Name})

	// ========================================
	// BUILD DI CONTAINER
	// ========================================
	appContainer, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize container")
	}
	defer appContainer.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	menu := cli.New(os.Stdin, os.Stdout, cli.Services{
		Books:   appContainer.BookService,
		Users:   appContainer.UserService,
		Authors: appContainer.AuthorService,
		Genres:  appContainer.GenreService,
		Borrows: appContainer.BorrowService,
	})

	// ========================================
	// RUN MENU
	// ========================================
	// Reading stdin blocks, so a signal ends the program from here
	// instead of waiting for the next line.
	done := make(chan error, 1)
	go func() {
		done <- menu.Run(ctx)
	}()

	select {
	case err = <-done:
		if err != nil {
			logger.Error("Reading input failed", err)
		}
	case <-ctx.Done():
		log.Info().Msg("Interrupted, exiting")
	}
}
