package arch

import "fmt"

// Instruction defines decoded instruction data.
type Instruction struct {
	Opcode int    // One of the known opcode constants.
	X      int    // Register index Vx; bits 11-8.
	Y      int    // Register index Vy; bits 7-4.
	N      byte   // 4-bit literal; bits 3-0.
	NN     byte   // 8-bit literal; bits 7-0.
	NNN    uint16 // 12-bit address or literal; bits 11-0.
	Word   uint16 // The raw instruction word.
}

// InvalidOpcode is returned by Decode for instruction words that do not
// map to any known instruction.
type InvalidOpcode uint16

func (e InvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode %04x", uint16(e))
}

// Decode splits the given instruction word into its nibble fields and maps
// it to one of the known instruction variants. Decode has no side effects
// and yields the same result for the same word on every call.
func Decode(word uint16) (Instruction, error) {
	i := Instruction{
		X:    int(word >> 8 & 0xf),
		Y:    int(word >> 4 & 0xf),
		N:    byte(word & 0xf),
		NN:   byte(word),
		NNN:  word & 0xfff,
		Word: word,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			i.Opcode = Clear
		case 0x00ee:
			i.Opcode = Return
		default:
			// 0NNN calls a machine language routine on the original
			// hardware. No program we care about uses it.
			return i, InvalidOpcode(word)
		}
	case 0x1:
		i.Opcode = Jump
	case 0x2:
		i.Opcode = Call
	case 0x3:
		i.Opcode = SkipEqualVal
	case 0x4:
		i.Opcode = SkipNotEqualVal
	case 0x5:
		if i.N != 0 {
			return i, InvalidOpcode(word)
		}
		i.Opcode = SkipEqual
	case 0x6:
		i.Opcode = SetVal
	case 0x7:
		i.Opcode = AddVal
	case 0x8:
		switch i.N {
		case 0x0:
			i.Opcode = Set
		case 0x1:
			i.Opcode = Or
		case 0x2:
			i.Opcode = And
		case 0x3:
			i.Opcode = Xor
		case 0x4:
			i.Opcode = Add
		case 0x5:
			i.Opcode = SubY
		case 0x6:
			i.Opcode = ShiftRight
		case 0x7:
			i.Opcode = SubX
		case 0xe:
			i.Opcode = ShiftLeft
		default:
			return i, InvalidOpcode(word)
		}
	case 0x9:
		if i.N != 0 {
			return i, InvalidOpcode(word)
		}
		i.Opcode = SkipNotEqual
	case 0xa:
		i.Opcode = SetIndex
	case 0xb:
		i.Opcode = JumpV0
	case 0xc:
		i.Opcode = Random
	case 0xd:
		i.Opcode = Draw
	case 0xe:
		switch i.NN {
		case 0x9e:
			i.Opcode = SkipKey
		case 0xa1:
			i.Opcode = SkipNotKey
		default:
			return i, InvalidOpcode(word)
		}
	case 0xf:
		switch i.NN {
		case 0x07:
			i.Opcode = GetDelay
		case 0x0a:
			i.Opcode = WaitKey
		case 0x15:
			i.Opcode = SetDelay
		case 0x18:
			i.Opcode = SetSound
		case 0x1e:
			i.Opcode = AddIndex
		case 0x29:
			i.Opcode = SpriteAddr
		case 0x33:
			i.Opcode = StoreBCD
		case 0x55:
			i.Opcode = StoreRegs
		case 0x65:
			i.Opcode = LoadRegs
		default:
			return i, InvalidOpcode(word)
		}
	}

	return i, nil
}

// String returns the instruction in conventional assembler notation.
func (i Instruction) String() string {
	switch i.Opcode {
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP 0x%03x", i.NNN)
	case Call:
		return fmt.Sprintf("CALL 0x%03x", i.NNN)
	case SkipEqualVal:
		return fmt.Sprintf("SE V%X, 0x%02x", i.X, i.NN)
	case SkipNotEqualVal:
		return fmt.Sprintf("SNE V%X, 0x%02x", i.X, i.NN)
	case SkipEqual:
		return fmt.Sprintf("SE V%X, V%X", i.X, i.Y)
	case SetVal:
		return fmt.Sprintf("LD V%X, 0x%02x", i.X, i.NN)
	case AddVal:
		return fmt.Sprintf("ADD V%X, 0x%02x", i.X, i.NN)
	case Set:
		return fmt.Sprintf("LD V%X, V%X", i.X, i.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", i.X, i.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", i.X, i.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", i.X, i.Y)
	case Add:
		return fmt.Sprintf("ADD V%X, V%X", i.X, i.Y)
	case SubY:
		return fmt.Sprintf("SUB V%X, V%X", i.X, i.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", i.X)
	case SubX:
		return fmt.Sprintf("SUBN V%X, V%X", i.X, i.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", i.X)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%X, V%X", i.X, i.Y)
	case SetIndex:
		return fmt.Sprintf("LD I, 0x%03x", i.NNN)
	case JumpV0:
		return fmt.Sprintf("JP V0, 0x%03x", i.NNN)
	case Random:
		return fmt.Sprintf("RND V%X, 0x%02x", i.X, i.NN)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, %d", i.X, i.Y, i.N)
	case SkipKey:
		return fmt.Sprintf("SKP V%X", i.X)
	case SkipNotKey:
		return fmt.Sprintf("SKNP V%X", i.X)
	case GetDelay:
		return fmt.Sprintf("LD V%X, DT", i.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", i.X)
	case SetDelay:
		return fmt.Sprintf("LD DT, V%X", i.X)
	case SetSound:
		return fmt.Sprintf("LD ST, V%X", i.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", i.X)
	case SpriteAddr:
		return fmt.Sprintf("LD F, V%X", i.X)
	case StoreBCD:
		return fmt.Sprintf("LD B, V%X", i.X)
	case StoreRegs:
		return fmt.Sprintf("LD [I], V%X", i.X)
	case LoadRegs:
		return fmt.Sprintf("LD V%X, [I]", i.X)
	}
	return fmt.Sprintf(".dw 0x%04x", i.Word)
}
