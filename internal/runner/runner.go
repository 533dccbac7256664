// Package runner drives the virtual machine without a display.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// tickRate is the cadence the step batches are paced at. The machine has
// no wall clock coupling of its own, pacing the batches at 60 Hz makes the
// per-instruction timer decay approximate the 60 Hz timers of the original
// hardware.
const tickRate = time.Second / 60

// Runner executes a fixed number of instructions per tick until the step
// limit is reached, the context is cancelled or the machine reports an
// error. It is the frontend of choice for test ROMs and benchmarks that
// need no display or keypad.
type Runner struct {
	logger *log.Logger
	vm     *chip8.Chip8

	cyclesPerTick int
	maxSteps      int
	trace         bool
}

// New creates a new runner for the given virtual machine.
func New(logger *log.Logger, vm *chip8.Chip8, opts options.Program) *Runner {
	return &Runner{
		logger:        logger,
		vm:            vm,
		cyclesPerTick: opts.CyclesPerTick,
		maxSteps:      opts.MaxSteps,
		trace:         opts.Debug,
	}
}

// Run executes the step loop until a stop condition is hit.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	steps := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		for range r.cyclesPerTick {
			if r.trace {
				r.traceInstruction()
			}

			if err := r.vm.Step(); err != nil {
				return fmt.Errorf("executing instruction %d: %w", steps+1, err)
			}

			steps++
			if r.maxSteps > 0 && steps >= r.maxSteps {
				r.logger.Info("Step limit reached", log.Int("steps", steps))
				return nil
			}
		}
	}
}

// traceInstruction logs the instruction at the program counter before it
// executes.
func (r *Runner) traceInstruction() {
	pc := r.vm.PC()
	b1, err := r.vm.ReadMemory(pc)
	if err != nil {
		return // the failing step will report it
	}
	b2, err := r.vm.ReadMemory(pc + 1)
	if err != nil {
		return
	}

	opcode := uint16(b1)<<8 | uint16(b2)
	r.logger.Debug("Executing",
		log.String("address", fmt.Sprintf("$%03X", pc)),
		log.String("instruction", disasm.Format(opcode)))
}
