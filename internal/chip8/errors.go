package chip8

import "fmt"

// UnknownOpcodeError is returned by Step when the opcode at the program
// counter matches no recognized instruction pattern.
type UnknownOpcodeError struct {
	Opcode  uint16 // the raw opcode
	Address uint16 // address the opcode was fetched from
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %#04x at address %#04x", e.Opcode, e.Address)
}

// StackUnderflowError is returned by Step when a return instruction
// executes with an empty call stack.
type StackUnderflowError struct {
	Address uint16 // address of the return instruction
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("call stack underflow at address %#04x", e.Address)
}

// AddressRangeError is returned by Step when an instruction or the fetch
// would access memory outside the 4KB address space. The reference
// interpreters index past the backing store in this case, the virtual
// machine reports it instead.
type AddressRangeError struct {
	Address uint16 // the out of range address
	PC      uint16 // address of the instruction, 0 for the fetch itself
}

func (e *AddressRangeError) Error() string {
	if e.PC != 0 {
		return fmt.Sprintf("address %#04x out of range at address %#04x", e.Address, e.PC)
	}
	return fmt.Sprintf("address %#04x out of range", e.Address)
}
