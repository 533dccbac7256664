package chip8

// execute dispatches a decoded instruction to its handler. Handlers that
// transfer control assign the program counter through setPC, all others
// rely on the default advance performed by Step.
func (c *Chip8) execute(ins Instruction) error {
	switch ins.Op {
	case Cls:
		c.display.Clear()
	case Ret:
		return c.ret()
	case Jp:
		c.setPC(ins.NNN)
	case JpV0:
		c.setPC(ins.NNN + uint16(c.regs[0]))
	case Call:
		c.call(ins)

	case SeVB:
		c.skipIf(c.regs[ins.X] == ins.KK)
	case SeVV:
		c.skipIf(c.regs[ins.X] == c.regs[ins.Y])
	case SneVB:
		c.skipIf(c.regs[ins.X] != ins.KK)
	case SneVV:
		c.skipIf(c.regs[ins.X] != c.regs[ins.Y])

	case Or:
		c.regs[ins.X] |= c.regs[ins.Y]
	case And:
		c.regs[ins.X] &= c.regs[ins.Y]
	case Xor:
		c.regs[ins.X] ^= c.regs[ins.Y]

	case AddVB:
		c.regs[ins.X] += ins.KK
	case AddVV:
		c.addVV(ins)
	case AddIV:
		c.addIV(ins)
	case Sub:
		c.sub(ins)
	case Subn:
		c.subn(ins)
	case Shr:
		c.shr(ins)
	case Shl:
		c.shl(ins)

	case LdVB:
		c.regs[ins.X] = ins.KK
	case LdVV:
		c.regs[ins.X] = c.regs[ins.Y]
	case LdIA:
		c.i = ins.NNN
	case LdBV:
		return c.ldBV(ins)
	case LdIV:
		return c.ldIV(ins)
	case LdVI:
		return c.ldVI(ins)
	case LdFV:
		c.i = uint16(c.regs[ins.X]) * glyphSize
	case LdVDT:
		c.regs[ins.X] = c.dt
	case LdDTV:
		c.dt = c.regs[ins.X]
	case LdSTV:
		c.st = c.regs[ins.X]
	case LdVK:
		c.ldVK(ins)

	case Skp:
		c.skipIf(c.keys[c.regs[ins.X]&0x0F])
	case Sknp:
		c.skipIf(!c.keys[c.regs[ins.X]&0x0F])

	case Rnd:
		c.regs[ins.X] = uint8(c.rand.Intn(256)) & ins.KK
	case Drw:
		return c.drw(ins)
	}
	return nil
}

// skipIf advances the program counter by one extra instruction when the
// condition holds, for a net advance of two instructions after the step
// completes.
func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.pc += opcodeSize
	}
}

// call pushes the address of the next instruction and transfers control to
// the call target.
func (c *Chip8) call(ins Instruction) {
	c.stack = append(c.stack, c.pc+opcodeSize)
	c.setPC(ins.NNN)
}

// ret pops the return address into the program counter. Returning with an
// empty call stack is left undefined by the original hardware and surfaces
// as a distinct error here.
func (c *Chip8) ret() error {
	if len(c.stack) == 0 {
		return &StackUnderflowError{Address: c.pc}
	}
	top := len(c.stack) - 1
	c.setPC(c.stack[top])
	c.stack = c.stack[:top]
	return nil
}

// addVV adds Vy to Vx in a widened intermediate, VF reports the carry out
// of 8 bits.
func (c *Chip8) addVV(ins Instruction) {
	sum := uint16(c.regs[ins.X]) + uint16(c.regs[ins.Y])
	c.regs[0xF] = flag(sum > 255)
	c.regs[ins.X] = uint8(sum)
}

// addIV adds Vx to the index register. VF reports the sum crossing the
// 255 boundary, not the end of the address space.
func (c *Chip8) addIV(ins Instruction) {
	x := uint16(c.regs[ins.X])
	c.regs[0xF] = flag(c.i+x > 255)
	c.i += x
}

func (c *Chip8) sub(ins Instruction) {
	x, y := c.regs[ins.X], c.regs[ins.Y]
	c.regs[0xF] = flag(x > y)
	c.regs[ins.X] = x - y
}

func (c *Chip8) subn(ins Instruction) {
	x, y := c.regs[ins.X], c.regs[ins.Y]
	c.regs[0xF] = flag(y > x)
	c.regs[ins.X] = y - x
}

// shr shifts Vx right by one, VF receives the shifted out bit.
func (c *Chip8) shr(ins Instruction) {
	x := c.regs[ins.X]
	c.regs[0xF] = x & 0x1
	c.regs[ins.X] = x >> 1
}

// shl doubles Vx with 8-bit wraparound, VF receives the high bit of the
// previous value via the 0xF0 mask.
func (c *Chip8) shl(ins Instruction) {
	x := c.regs[ins.X]
	c.regs[0xF] = flag((x&0xF0)>>7 == 1)
	c.regs[ins.X] = x * 2
}

// ldBV stores the BCD decomposition of Vx at I, I+1 and I+2: the hundreds
// digit, the tens digit and the ones digit of the decimal value.
func (c *Chip8) ldBV(ins Instruction) error {
	if int(c.i)+2 >= MemorySize {
		return &AddressRangeError{Address: c.i + 2, PC: c.pc}
	}

	x := c.regs[ins.X]
	c.memory[c.i] = x / 100
	c.memory[c.i+1] = (x / 100) % 10
	c.memory[c.i+2] = (x % 100) % 10
	return nil
}

// ldIV copies the registers V0 up to but excluding Vx to memory starting
// at I. The transfer is checked against the end of memory before any byte
// is written so a failing instruction has no partial effect.
func (c *Chip8) ldIV(ins Instruction) error {
	x := uint16(ins.X)
	if int(c.i)+int(x) > MemorySize {
		return &AddressRangeError{Address: c.i + x - 1, PC: c.pc}
	}

	for i := uint16(0); i < x; i++ {
		c.memory[c.i+i] = c.regs[i]
	}
	return nil
}

// ldVI copies memory starting at I to the registers V0 up to but
// excluding Vx.
func (c *Chip8) ldVI(ins Instruction) error {
	x := uint16(ins.X)
	if int(c.i)+int(x) > MemorySize {
		return &AddressRangeError{Address: c.i + x - 1, PC: c.pc}
	}

	for i := uint16(0); i < x; i++ {
		c.regs[i] = c.memory[c.i+i]
	}
	return nil
}

// ldVK scans the keypad in index order and loads the highest pressed key
// into Vx. With no key pressed the program counter is rewound by one
// instruction so the same instruction executes again on the next step,
// until the host supplies a key press between steps.
func (c *Chip8) ldVK(ins Instruction) {
	pressed := false
	for i, down := range c.keys {
		if down {
			c.regs[ins.X] = uint8(i)
			pressed = true
		}
	}

	if !pressed {
		c.pc -= opcodeSize
	}
}

// drw draws the n byte sprite at memory address I to position (Vx, Vy).
// VF reports whether any set pixel was flipped off by the draw.
func (c *Chip8) drw(ins Instruction) error {
	if int(c.i)+int(ins.N) > MemorySize {
		return &AddressRangeError{Address: c.i + uint16(ins.N) - 1, PC: c.pc}
	}

	x := int(c.regs[ins.X])
	y := int(c.regs[ins.Y])
	sprite := c.memory[c.i : c.i+uint16(ins.N)]

	c.regs[0xF] = flag(c.display.DrawSprite(x, y, sprite))
	return nil
}

// flag converts a condition to the 0/1 encoding of the VF register.
func flag(condition bool) uint8 {
	if condition {
		return 1
	}
	return 0
}
