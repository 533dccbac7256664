// Package main implements a CHIP-8 virtual machine with multiple frontends
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/gui"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	printBanner(logger, opts)

	if err := emulateFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8 CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// emulateFile loads the ROM into a new virtual machine and hands it to the
// selected frontend.
func emulateFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	vm := chip8.New()
	if err := vm.LoadROM(rom); err != nil {
		return fmt.Errorf("initializing machine: %w", err)
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("bytes", len(rom)),
		log.String("frontend", opts.Frontend))

	switch opts.Frontend {
	case options.FrontendTerminal:
		return terminal.New(logger, vm, opts).Run(ctx)
	case options.FrontendNone:
		return runner.New(logger, vm, opts).Run(ctx)
	default:
		return gui.Run(logger, vm, opts)
	}
}
