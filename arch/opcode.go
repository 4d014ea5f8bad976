// Package arch defines the CHIP-8 instruction set along with
// its decoder and some related helper functions.
package arch

// Known opcodes.
const (
	Clear           = iota // 00E0
	Return                 // 00EE
	Jump                   // 1NNN
	Call                   // 2NNN
	SkipEqualVal           // 3XNN
	SkipNotEqualVal        // 4XNN
	SkipEqual              // 5XY0
	SetVal                 // 6XNN
	AddVal                 // 7XNN
	Set                    // 8XY0
	Or                     // 8XY1
	And                    // 8XY2
	Xor                    // 8XY3
	Add                    // 8XY4
	SubY                   // 8XY5
	ShiftRight             // 8XY6
	SubX                   // 8XY7
	ShiftLeft              // 8XYE
	SkipNotEqual           // 9XY0
	SetIndex               // ANNN
	JumpV0                 // BNNN
	Random                 // CXNN
	Draw                   // DXYN
	SkipKey                // EX9E
	SkipNotKey             // EXA1
	GetDelay               // FX07
	WaitKey                // FX0A
	SetDelay               // FX15
	SetSound               // FX18
	AddIndex               // FX1E
	SpriteAddr             // FX29
	StoreBCD               // FX33
	StoreRegs              // FX55
	LoadRegs               // FX65

	opcodeCount
)

// Valid returns true if the given value is a known opcode.
func Valid(opcode int) bool {
	return opcode >= Clear && opcode < opcodeCount
}
