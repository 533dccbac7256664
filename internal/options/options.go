// Package options contains the program options.
package options

// Frontend names selectable with the -f flag.
const (
	FrontendGUI      = "gui"
	FrontendTerminal = "term"
	FrontendNone     = "none"
)

// DefaultCyclesPerTick is the number of instructions executed per 60 Hz
// tick when no rate is given. Timers decay once per executed instruction,
// so this rate trades emulation speed against timer accuracy.
const DefaultCyclesPerTick = 10

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Frontend      string // gui, term or none
	CyclesPerTick int    // instructions executed per 60 Hz tick
	MaxSteps      int    // stop after this many instructions, 0 runs until an error

	Debug bool
	Quiet bool
}
