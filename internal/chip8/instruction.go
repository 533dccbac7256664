package chip8

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Operation identifies one of the recognized CHIP-8 operations.
type Operation uint8

// The recognized operations. The suffix letters follow the operand order of
// the assembly mnemonic: V = general register, B = immediate byte,
// I = index register, A = 12-bit address, K = keypad.
const (
	Unknown Operation = iota

	Cls   // 00E0 - clear the display
	Ret   // 00EE - return from subroutine
	Jp    // 1nnn - jump to address
	JpV0  // Bnnn - jump to address plus V0
	Call  // 2nnn - call subroutine
	SeVB  // 3xkk - skip next instruction if Vx == kk
	SeVV  // 5xy0 - skip next instruction if Vx == Vy
	SneVB // 4xkk - skip next instruction if Vx != kk
	SneVV // 9xy0 - skip next instruction if Vx != Vy
	Or    // 8xy1 - Vx |= Vy
	And   // 8xy2 - Vx &= Vy
	Xor   // 8xy3 - Vx ^= Vy
	AddVB // 7xkk - Vx += kk, no flag
	AddVV // 8xy4 - Vx += Vy, VF = carry
	AddIV // Fx1E - I += Vx, VF = overflow
	Sub   // 8xy5 - Vx -= Vy, VF = no borrow
	Subn  // 8xy7 - Vx = Vy - Vx, VF = no borrow
	Shr   // 8xy6 - Vx >>= 1, VF = shifted out bit
	Shl   // 8xyE - Vx doubled, VF = high bit
	LdVB  // 6xkk - Vx = kk
	LdVV  // 8xy0 - Vx = Vy
	LdIA  // Annn - I = address
	LdBV  // Fx33 - BCD of Vx to memory at I
	LdIV  // Fx55 - registers to memory at I
	LdVI  // Fx65 - memory at I to registers
	LdFV  // Fx29 - I = font glyph address of Vx
	LdVDT // Fx07 - Vx = delay timer
	LdDTV // Fx15 - delay timer = Vx
	LdSTV // Fx18 - sound timer = Vx
	LdVK  // Fx0A - block until key press, Vx = key
	Skp   // Ex9E - skip next instruction if key Vx pressed
	Sknp  // ExA1 - skip next instruction if key Vx not pressed
	Rnd   // Cxkk - Vx = random byte AND kk
	Drw   // Dxyn - draw n byte sprite at (Vx, Vy), VF = collision
)

// Instruction is a decoded opcode: the operation tag plus the operand
// fields projected from the opcode nibbles. Fields that an operation does
// not use are still filled, they are pure projections of the raw opcode.
type Instruction struct {
	Op     Operation
	Opcode uint16 // the raw opcode

	X   uint8  // bits 8-11, first register index
	Y   uint8  // bits 4-7, second register index
	N   uint8  // bits 0-3
	KK  uint8  // low byte immediate
	NNN uint16 // low 12 bits address
}

// Decode classifies a big-endian 16-bit opcode into its operation and
// extracts the operand fields. Decoding is pure, identical input always
// yields the identical instruction. Opcodes matching no recognized pattern
// yield the Unknown operation.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0x0F),
		Y:      uint8(opcode >> 4 & 0x0F),
		N:      uint8(opcode & 0x0F),
		KK:     uint8(opcode & 0xFF),
		NNN:    opcode & 0x0FFF,
	}
	ins.Op = classify(opcode)
	return ins
}

// classify maps the opcode nibble pattern to an operation tag.
func classify(opcode uint16) Operation {
	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return Cls
		case 0x00EE:
			return Ret
		}

	case 0x1000:
		return Jp
	case 0x2000:
		return Call
	case 0x3000:
		return SeVB
	case 0x4000:
		return SneVB

	case 0x5000:
		if opcode&0x000F == 0 {
			return SeVV
		}

	case 0x6000:
		return LdVB
	case 0x7000:
		return AddVB

	case 0x8000:
		switch opcode & 0x000F {
		case 0x0:
			return LdVV
		case 0x1:
			return Or
		case 0x2:
			return And
		case 0x3:
			return Xor
		case 0x4:
			return AddVV
		case 0x5:
			return Sub
		case 0x6:
			return Shr
		case 0x7:
			return Subn
		case 0xE:
			return Shl
		}

	case 0x9000:
		if opcode&0x000F == 0 {
			return SneVV
		}

	case 0xA000:
		return LdIA
	case 0xB000:
		return JpV0
	case 0xC000:
		return Rnd
	case 0xD000:
		return Drw

	case 0xE000:
		switch opcode & 0x00FF {
		case 0x9E:
			return Skp
		case 0xA1:
			return Sknp
		}

	case 0xF000:
		switch opcode & 0x00FF {
		case 0x07:
			return LdVDT
		case 0x0A:
			return LdVK
		case 0x15:
			return LdDTV
		case 0x18:
			return LdSTV
		case 0x1E:
			return AddIV
		case 0x29:
			return LdFV
		case 0x33:
			return LdBV
		case 0x55:
			return LdIV
		case 0x65:
			return LdVI
		}
	}
	return Unknown
}
