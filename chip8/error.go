package chip8

import "fmt"

// ErrorCode identifies a class of fatal emulator fault.
type ErrorCode int

// Known fault classes. None of them are recoverable; the instruction set
// defines no trap mechanism, so the run loop stops on the first fault.
const (
	RomTooLarge ErrorCode = iota
	InvalidOpcode
	InvalidRegister
	StackOverflow
	StackUnderflow
	PCOutOfBounds
	IndexOutOfBounds
)

// Error defines a fatal runtime error.
type Error struct {
	Code ErrorCode // Fault class.
	PC   uint16    // Address of the faulting instruction.
	Word uint16    // Offending instruction word or value, where applicable.
}

// NewError creates a new error of the given class.
func NewError(code ErrorCode, pc, word uint16) *Error {
	return &Error{Code: code, PC: pc, Word: word}
}

func (e *Error) Error() string {
	switch e.Code {
	case RomTooLarge:
		return fmt.Sprintf("rom is too large to fit in memory (%d bytes)", e.Word)
	case InvalidOpcode:
		return fmt.Sprintf("%04x: invalid opcode %04x", e.PC, e.Word)
	case InvalidRegister:
		return fmt.Sprintf("%04x: invalid register V%X", e.PC, e.Word)
	case StackOverflow:
		return fmt.Sprintf("%04x: stack overflow", e.PC)
	case StackUnderflow:
		return fmt.Sprintf("%04x: stack underflow", e.PC)
	case PCOutOfBounds:
		return fmt.Sprintf("program counter out of bounds (%04x)", e.PC)
	case IndexOutOfBounds:
		return fmt.Sprintf("%04x: index register out of bounds (%04x)", e.PC, e.Word)
	}
	return fmt.Sprintf("%04x: unknown fault %d", e.PC, e.Code)
}
