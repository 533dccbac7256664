// Package terminal implements a raw mode terminal emulator frontend.
package terminal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/term/termios"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sys/unix"
)

// escape quits the emulation.
const escape = 0x1b

// keyMap maps terminal input bytes to the 16 key hexadecimal pad, same
// 4x4 layout as the windowed frontend.
var keyMap = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Terminal renders the framebuffer as block characters and feeds raw
// keyboard input to the keypad. Terminals only report key presses, not
// releases, so a pressed key is held for the tick it arrived in and
// released on the next one.
type Terminal struct {
	logger *log.Logger
	vm     *chip8.Chip8

	cyclesPerTick int

	originalConfig unix.Termios
	keyBuffer      chan byte
}

// New creates a new terminal frontend for the given virtual machine.
func New(logger *log.Logger, vm *chip8.Chip8, opts options.Program) *Terminal {
	return &Terminal{
		logger:        logger,
		vm:            vm,
		cyclesPerTick: opts.CyclesPerTick,
		keyBuffer:     make(chan byte, 16),
	}
}

// Run switches the terminal to raw mode and drives the step loop at 60 Hz
// until ESC is pressed, the context is cancelled or the machine reports an
// error.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.enableRawMode(); err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer t.disableRawMode()

	go t.pollKeyboard()

	fmt.Print("\x1b[2J") // clear the screen once, frames only rewrite it

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		quit, err := t.tick()
		if err != nil || quit {
			return err
		}
	}
}

// tick applies buffered input, executes one batch of instructions and
// renders the frame.
func (t *Terminal) tick() (bool, error) {
	t.vm.ResetKeys()
drain:
	for {
		select {
		case key := <-t.keyBuffer:
			if key == escape {
				return true, nil
			}
			if pad, ok := keyMap[key]; ok {
				t.vm.PressKey(pad)
			}
		default:
			break drain
		}
	}

	for range t.cyclesPerTick {
		if err := t.vm.Step(); err != nil {
			return false, fmt.Errorf("executing instruction: %w", err)
		}
	}

	t.render()
	return false, nil
}

// render writes the framebuffer to the terminal, two characters per cell
// to approximate square pixels.
func (t *Terminal) render() {
	var b strings.Builder
	b.WriteString("\x1b[H")

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if t.vm.Display().Pixel(x, y) {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\r\n")
	}

	fmt.Print(b.String())
}

// pollKeyboard reads raw input bytes from stdin into the key buffer.
func (t *Terminal) pollKeyboard() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			continue
		}
		t.keyBuffer <- buf[0]
	}
}

// enableRawMode configures the terminal to report key presses without
// line buffering or echo.
func (t *Terminal) enableRawMode() error {
	if err := termios.Tcgetattr(os.Stdin.Fd(), &t.originalConfig); err != nil {
		return err
	}

	raw := t.originalConfig
	raw.Lflag &^= unix.ICANON | unix.ECHO
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &raw)
}

// disableRawMode restores the terminal configuration.
func (t *Terminal) disableRawMode() {
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &t.originalConfig); err != nil {
		t.logger.Error("Restoring terminal configuration failed", log.Err(err))
	}
	fmt.Print("\n")
}
