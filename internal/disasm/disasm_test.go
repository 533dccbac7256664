package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		want   string
	}{
		{"clear screen", 0x00E0, chip8.ClsInst.Name},
		{"return", 0x00EE, chip8.RetInst.Name},
		{"jump", 0x1228, chip8.JpInst.Name + " $228"},
		{"jump V0 offset", 0xB123, chip8.JpInst.Name + " V0, $123"},
		{"call", 0x2345, chip8.CallInst.Name + " $345"},
		{"skip equal byte", 0x3A12, chip8.SeInst.Name + " VA, $12"},
		{"skip equal register", 0x5AB0, chip8.SeInst.Name + " VA, VB"},
		{"skip not equal byte", 0x4A12, chip8.SneInst.Name + " VA, $12"},
		{"skip not equal register", 0x9AB0, chip8.SneInst.Name + " VA, VB"},
		{"load byte", 0x6A12, chip8.LdInst.Name + " VA, $12"},
		{"load register", 0x8AB0, chip8.LdInst.Name + " VA, VB"},
		{"load index", 0xA123, chip8.LdInst.Name + " I, $123"},
		{"load delay timer", 0xFA07, chip8.LdInst.Name + " VA, DT"},
		{"wait for key", 0xFA0A, chip8.LdInst.Name + " VA, K"},
		{"set delay timer", 0xFA15, chip8.LdInst.Name + " DT, VA"},
		{"set sound timer", 0xFA18, chip8.LdInst.Name + " ST, VA"},
		{"load font address", 0xFA29, chip8.LdInst.Name + " F, VA"},
		{"store BCD", 0xFA33, chip8.LdInst.Name + " B, VA"},
		{"registers to memory", 0xFA55, chip8.LdInst.Name + " [I], VA"},
		{"memory to registers", 0xFA65, chip8.LdInst.Name + " VA, [I]"},
		{"add byte", 0x7A12, chip8.AddInst.Name + " VA, $12"},
		{"add register", 0x8AB4, chip8.AddInst.Name + " VA, VB"},
		{"add to index", 0xFA1E, chip8.AddInst.Name + " I, VA"},
		{"or", 0x8AB1, chip8.OrInst.Name + " VA, VB"},
		{"and", 0x8AB2, chip8.AndInst.Name + " VA, VB"},
		{"xor", 0x8AB3, chip8.XorInst.Name + " VA, VB"},
		{"sub", 0x8AB5, chip8.SubInst.Name + " VA, VB"},
		{"subn", 0x8AB7, chip8.SubnInst.Name + " VA, VB"},
		{"shift right", 0x8AB6, chip8.ShrInst.Name + " VA"},
		{"shift left", 0x8ABE, chip8.ShlInst.Name + " VA"},
		{"random", 0xCA12, chip8.RndInst.Name + " VA, $12"},
		{"draw", 0xDAB5, chip8.DrwInst.Name + " VA, VB, $5"},
		{"skip if key pressed", 0xEA9E, chip8.SkpInst.Name + " VA"},
		{"skip if key not pressed", 0xEAA1, chip8.SknpInst.Name + " VA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.opcode))
		})
	}
}

func TestFormatUnknownOpcode(t *testing.T) {
	assert.Equal(t, ".byte $FF, $FF", Format(0xFFFF))
}

func TestFormatIsPure(t *testing.T) {
	for _, opcode := range []uint16{0x00E0, 0x1228, 0xDAB5} {
		first := Format(opcode)
		second := Format(opcode)
		assert.Equal(t, first, second)
	}
}
