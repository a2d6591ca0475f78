// Package main is the entry point for the currency converter.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	_ "currencyconverter/internal/api/docs"
	"currencyconverter/internal/cli"
	"currencyconverter/internal/config"
	"currencyconverter/internal/logger"
)

// @title Currency Converter API
// @version 1.0
// @description Converts amounts between currencies using live exchangerate-api.com rates.
// @BasePath /
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			cli.Usage(os.Stdout)
			return cli.ExitOK
		case "serve":
			return runServe(args[1:])
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	runner := cli.NewRunner(newConverter(cfg, sugar), os.Stdin, os.Stdout, os.Stderr, sugar)
	return runner.Run(context.Background(), args)
}

func runServe(args []string) int {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.Int("port", 8080, "HTTP listen port")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cli.ExitOK
		}
		fmt.Fprintf(os.Stderr, "serve: %v\n", err)
		return cli.ExitUsage
	}

	v := viper.New()
	if err := v.BindPFlag("server.port", fs.Lookup("port")); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}
	if err := v.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	sugar.Infow("Starting Currency Converter API", "port", cfg.Server.Port)

	app := NewApp(cfg, sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		sugar.Errorw("Application error", "error", err)
		return 1
	}
	return cli.ExitOK
}
