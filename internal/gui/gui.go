// Package gui implements the windowed emulator frontend.
package gui

import (
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/colornames"
)

// scale is the size of one CHIP-8 pixel in window pixels.
const scale = 10

// keyMap maps the host keyboard to the 16 key hexadecimal pad, using the
// common 4x4 layout on the left side of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[pixelgl.Button]uint8{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// Run opens the emulator window and drives the step loop at 60 Hz until
// the window is closed. It takes over the main goroutine, the window
// system requires running on it.
func Run(logger *log.Logger, vm *chip8.Chip8, opts options.Program) error {
	var runErr error
	pixelgl.Run(func() {
		runErr = runWindow(logger, vm, opts)
	})
	return runErr
}

func runWindow(logger *log.Logger, vm *chip8.Chip8, opts options.Program) error {
	cfg := pixelgl.WindowConfig{
		Title:  "retrochip8",
		Bounds: pixel.R(0, 0, chip8.DisplayWidth*scale, chip8.DisplayHeight*scale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	imd := imdraw.New(nil)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	// after a step error the machine state is left untouched and the
	// window keeps showing the last frame
	halted := false

	for !win.Closed() {
		vm.ResetKeys()
		for key, pad := range keyMap {
			if win.Pressed(key) {
				vm.PressKey(pad)
			}
		}

		for i := 0; i < opts.CyclesPerTick && !halted; i++ {
			if err := vm.Step(); err != nil {
				logger.Error("Emulation halted", log.Err(err))
				halted = true
			}
		}

		drawFrame(win, imd, vm.Display())
		win.Update()

		<-ticker.C
	}
	return nil
}

// drawFrame renders the framebuffer cells as scaled rectangles. The
// framebuffer origin is the top left corner while the window origin is the
// bottom left corner, so rows are flipped.
func drawFrame(win *pixelgl.Window, imd *imdraw.IMDraw, display *chip8.Display) {
	win.Clear(colornames.Black)
	imd.Clear()

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if !display.Pixel(x, y) {
				continue
			}

			top := chip8.DisplayHeight - 1 - y
			imd.Color = colornames.White
			imd.Push(
				pixel.V(float64(x*scale), float64(top*scale)),
				pixel.V(float64((x+1)*scale), float64((top+1)*scale)),
			)
			imd.Rectangle(0)
		}
	}

	imd.Draw(win)
}
