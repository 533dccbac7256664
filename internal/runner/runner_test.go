package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRunStepLimit(t *testing.T) {
	vm := chip8.New()
	// endless loop jumping to itself
	assert.NoError(t, vm.LoadROM([]byte{0x12, 0x00}))

	r := New(log.NewTestLogger(t), vm, options.Program{
		CyclesPerTick: 20,
		MaxSteps:      5,
	})

	err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint16(chip8.ProgramStart), vm.PC())
}

func TestRunStopsOnError(t *testing.T) {
	vm := chip8.New()
	// 0x0000 matches no instruction pattern
	assert.NoError(t, vm.LoadROM([]byte{0x00, 0x00}))

	r := New(log.NewTestLogger(t), vm, options.Program{
		CyclesPerTick: 1,
	})

	err := r.Run(context.Background())
	assert.Error(t, err)

	var opcodeErr *chip8.UnknownOpcodeError
	assert.True(t, errors.As(err, &opcodeErr))
	assert.Equal(t, uint16(chip8.ProgramStart), opcodeErr.Address)
}

func TestRunCancellation(t *testing.T) {
	vm := chip8.New()
	assert.NoError(t, vm.LoadROM([]byte{0x12, 0x00}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(log.NewTestLogger(t), vm, options.Program{
		CyclesPerTick: 1,
	})

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("runner did not stop on context cancellation")
	}
}
