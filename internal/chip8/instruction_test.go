package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeClassification(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		op     Operation
	}{
		{"clear screen", 0x00E0, Cls},
		{"return", 0x00EE, Ret},
		{"jump", 0x1228, Jp},
		{"jump V0 offset", 0xB228, JpV0},
		{"call", 0x2345, Call},
		{"skip equal byte", 0x3A12, SeVB},
		{"skip equal register", 0x5AB0, SeVV},
		{"skip not equal byte", 0x4A12, SneVB},
		{"skip not equal register", 0x9AB0, SneVV},
		{"or", 0x8AB1, Or},
		{"and", 0x8AB2, And},
		{"xor", 0x8AB3, Xor},
		{"add byte", 0x7A12, AddVB},
		{"add register", 0x8AB4, AddVV},
		{"add to index", 0xFA1E, AddIV},
		{"sub", 0x8AB5, Sub},
		{"subn", 0x8AB7, Subn},
		{"shift right", 0x8AB6, Shr},
		{"shift left", 0x8ABE, Shl},
		{"load byte", 0x6A12, LdVB},
		{"load register", 0x8AB0, LdVV},
		{"load index", 0xA123, LdIA},
		{"load BCD", 0xFA33, LdBV},
		{"registers to memory", 0xFA55, LdIV},
		{"memory to registers", 0xFA65, LdVI},
		{"load font address", 0xFA29, LdFV},
		{"load delay timer", 0xFA07, LdVDT},
		{"set delay timer", 0xFA15, LdDTV},
		{"set sound timer", 0xFA18, LdSTV},
		{"wait for key", 0xFA0A, LdVK},
		{"skip if key pressed", 0xEA9E, Skp},
		{"skip if key not pressed", 0xEAA1, Sknp},
		{"random", 0xCA12, Rnd},
		{"draw", 0xDAB5, Drw},

		{"machine code routine", 0x0123, Unknown},
		{"zero", 0x0000, Unknown},
		{"skip equal with low nibble", 0x5AB1, Unknown},
		{"skip not equal with low nibble", 0x9AB3, Unknown},
		{"arithmetic gap", 0x8AB8, Unknown},
		{"key group gap", 0xEA00, Unknown},
		{"timer group gap", 0xFAFF, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Decode(tt.opcode)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.opcode, ins.Opcode)
		})
	}
}

func TestDecodeOperandFields(t *testing.T) {
	ins := Decode(0xDAB5)

	assert.Equal(t, uint8(0xA), ins.X)
	assert.Equal(t, uint8(0xB), ins.Y)
	assert.Equal(t, uint8(0x5), ins.N)
	assert.Equal(t, uint8(0xB5), ins.KK)
	assert.Equal(t, uint16(0xAB5), ins.NNN)
}

func TestDecodeIsPure(t *testing.T) {
	first := Decode(0x8AB4)
	second := Decode(0x8AB4)

	assert.Equal(t, first, second)
}
