// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(opts options.Program) error {
	switch opts.Frontend {
	case options.FrontendGUI, options.FrontendTerminal, options.FrontendNone:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s, %s",
			opts.Frontend, options.FrontendGUI, options.FrontendTerminal, options.FrontendNone)
	}

	if opts.CyclesPerTick <= 0 {
		return fmt.Errorf("cycles per tick must be positive, got %d", opts.CyclesPerTick)
	}
	if opts.MaxSteps < 0 {
		return fmt.Errorf("step limit must not be negative, got %d", opts.MaxSteps)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "f", options.FrontendGUI, "frontend to run the emulation with (gui/term/none)")
	flags.IntVar(&opts.CyclesPerTick, "c", options.DefaultCyclesPerTick, "instructions to execute per 60 Hz tick")
	flags.IntVar(&opts.MaxSteps, "steps", 0, "stop after executing the given number of instructions, 0 for no limit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
