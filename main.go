package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"logoOverlay/overlay"
)

const defaultConfigPath = "config.yaml"

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args); err != nil {
		log.Printf("error: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args cliArgs) error {
	overlay.SetDebugLogging(args.debug)

	cfg, err := loadConfig(args.configPath)
	if err != nil {
		return err
	}
	cfg = args.apply(cfg)

	opts, err := cfg.options()
	if err != nil {
		return err
	}

	results, err := generateOverlayImages(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Preview && len(results) > 0 {
		if err := showPreview(ctx, results[len(results)-1].Image, cfg.brightness()); err != nil {
			log.Printf("warning: preview: %v", err)
		}
	}
	return nil
}
