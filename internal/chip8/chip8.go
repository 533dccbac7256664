// Package chip8 implements the CHIP-8 virtual machine core.
// CHIP-8 is an interpreted programming language from the 1970s designed for simple games.
// The virtual machine executes one instruction per Step call and leaves all
// timing, input mapping and rendering to the host driving it.
package chip8

import (
	"fmt"
	"math/rand"
	"time"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// glyphSize is the size of one builtin font glyph in bytes.
	glyphSize = 5

	// keyCount is the number of keys on the hexadecimal keypad.
	keyCount = 16
)

// fontSet contains the builtin glyphs for the hexadecimal digits 0-F,
// 5 bytes per glyph. It is copied to address 0x000 on every ROM load.
var fontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0x80, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Chip8 is the complete state of one virtual machine instance: 16 general
// purpose registers, the index register, two timers, program counter, call
// stack, 4KB of memory, the keypad state and the display.
//
// An instance is a single mutable aggregate with no internal locking,
// it has to be exclusively owned by the goroutine driving its step loop.
type Chip8 struct {
	regs [16]uint8
	i    uint16
	dt   uint8
	st   uint8
	pc   uint16

	// jumped is set by handlers that assign the program counter themselves
	// and suppresses the default advance at the end of the step.
	jumped bool

	keys    [keyCount]bool
	memory  [MemorySize]byte
	stack   []uint16
	display Display

	rand *rand.Rand
}

// New returns a new virtual machine with cleared state and the program
// counter set to the program start address.
func New() *Chip8 {
	return &Chip8{
		pc:   ProgramStart,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadROM copies the program bytes to the program start address and the
// builtin font table to address 0x000. Both copies overwrite whatever was
// previously stored in those ranges.
func (c *Chip8) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return fmt.Errorf("loading ROM: no data")
	}
	if len(rom) > MemorySize-ProgramStart {
		return fmt.Errorf("loading ROM: %d bytes exceed the %d bytes of program space",
			len(rom), MemorySize-ProgramStart)
	}

	copy(c.memory[ProgramStart:], rom)
	copy(c.memory[:], fontSet[:])
	return nil
}

// Step executes exactly one instruction: fetch 2 bytes at the program
// counter, decode, dispatch, advance the program counter unless the
// instruction set it itself, then decrement both timers if they are above
// zero. A step applies atomically, a returned error leaves the machine in
// the state it had before the failing instruction took effect on control
// flow.
func (c *Chip8) Step() error {
	opcode, err := c.fetch()
	if err != nil {
		return err
	}

	ins := Decode(opcode)
	if ins.Op == Unknown {
		return &UnknownOpcodeError{Opcode: opcode, Address: c.pc}
	}

	c.jumped = false
	if err := c.execute(ins); err != nil {
		return err
	}

	if !c.jumped {
		c.pc += opcodeSize
	}

	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}
	return nil
}

// fetch reads the big-endian 16-bit opcode at the program counter.
func (c *Chip8) fetch() (uint16, error) {
	if int(c.pc)+1 >= MemorySize {
		return 0, &AddressRangeError{Address: c.pc}
	}
	return uint16(c.memory[c.pc])<<8 | uint16(c.memory[c.pc+1]), nil
}

// PressKey marks one key of the hexadecimal keypad as pressed.
// Key indexes outside 0-15 are ignored.
func (c *Chip8) PressKey(key uint8) {
	if key < keyCount {
		c.keys[key] = true
	}
}

// ResetKeys marks all 16 keys as released. Hosts call this before applying
// the currently pressed keys between execution batches.
func (c *Chip8) ResetKeys() {
	c.keys = [keyCount]bool{}
}

// Registers returns a copy of the 16 general purpose registers.
func (c *Chip8) Registers() [16]uint8 {
	return c.regs
}

// PC returns the current program counter.
func (c *Chip8) PC() uint16 {
	return c.pc
}

// IndexRegister returns the current value of the index register.
func (c *Chip8) IndexRegister() uint16 {
	return c.i
}

// DelayTimer returns the current value of the delay timer.
func (c *Chip8) DelayTimer() uint8 {
	return c.dt
}

// SoundTimer returns the current value of the sound timer. A host that
// wants audio output plays a tone while the value is above zero.
func (c *Chip8) SoundTimer() uint8 {
	return c.st
}

// Display returns the framebuffer for sampling by a renderer.
func (c *Chip8) Display() *Display {
	return &c.display
}

// ReadMemory reads one byte of the 4KB memory, for debugging and tracing.
func (c *Chip8) ReadMemory(address uint16) (byte, error) {
	if address >= MemorySize {
		return 0, &AddressRangeError{Address: address}
	}
	return c.memory[address], nil
}

// readByte reads memory from an instruction handler, converting accesses
// past the 4KB backing store into an address range error instead of
// touching undefined memory.
func (c *Chip8) readByte(address uint16) (byte, error) {
	if address >= MemorySize {
		return 0, &AddressRangeError{Address: address, PC: c.pc}
	}
	return c.memory[address], nil
}

// writeByte writes memory from an instruction handler, with the same
// bounds handling as readByte.
func (c *Chip8) writeByte(address uint16, value byte) error {
	if address >= MemorySize {
		return &AddressRangeError{Address: address, PC: c.pc}
	}
	c.memory[address] = value
	return nil
}

// setPC assigns the program counter and suppresses the default advance
// for the current step.
func (c *Chip8) setPC(address uint16) {
	c.pc = address
	c.jumped = true
}
