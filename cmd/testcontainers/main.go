// This file is a helper for running a database with testcontainers during
// local development. It prints the environment the server needs to reach it.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/roulette-api/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a roulette database testcontainer with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file, providing DB_TYPE (mariadb, mysql or
               postgres) and DB_IMAGE (e.g. mariadb:11)

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		slog.Info("Loading environment variables", slog.String("file", envFilename))
		if err := godotenv.Load(envFilename); err != nil {
			slog.Error("Failed to load environment variables", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		slog.Info("No environment file specified, using current environment variables")
	}

	dbType := os.Getenv("DB_TYPE")
	image := os.Getenv("DB_IMAGE")
	if dbType == "" || image == "" {
		slog.Error("DB_TYPE and DB_IMAGE are required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	dc, err := testutil.StartDatabase(ctx, dbType, image)
	if err != nil {
		slog.Error("Failed to create test container", slog.Any("error", err))
		os.Exit(1)
	}

	cfg := dc.Config
	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	<-ctx.Done()
	slog.Info("Received signal, terminating test container...")
	if err := dc.Terminate(context.Background()); err != nil {
		slog.Error("Failed to terminate test container", slog.Any("error", err))
	}
}
