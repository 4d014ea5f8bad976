package arch

import "testing"

// TestDecodeTotal exercises the decoder against every possible instruction
// word. Each word must either yield exactly one known opcode or fail with
// InvalidOpcode; there is no third outcome.
func TestDecodeTotal(t *testing.T) {
	var valid int

	for w := 0; w <= 0xffff; w++ {
		word := uint16(w)

		i, err := Decode(word)
		if err != nil {
			if _, ok := err.(InvalidOpcode); !ok {
				t.Fatalf("%04x: unexpected error type %T", word, err)
			}
			continue
		}

		if !Valid(i.Opcode) {
			t.Fatalf("%04x: decoded to unknown opcode %d", word, i.Opcode)
		}

		// The decoder must be referentially transparent.
		j, err := Decode(word)
		if err != nil || i != j {
			t.Fatalf("%04x: repeated decode diverged: %v vs %v", word, i, j)
		}

		valid++
	}

	if valid == 0 {
		t.Fatal("no valid instruction words decoded")
	}
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		word   uint16
		opcode int
		x, y   int
		n, nn  byte
		nnn    uint16
	}{
		{0x00e0, Clear, 0, 0xe, 0x0, 0xe0, 0x0e0},
		{0x00ee, Return, 0, 0xe, 0xe, 0xee, 0x0ee},
		{0x1234, Jump, 2, 3, 4, 0x34, 0x234},
		{0x2456, Call, 4, 5, 6, 0x56, 0x456},
		{0x3a7f, SkipEqualVal, 0xa, 7, 0xf, 0x7f, 0xa7f},
		{0x5120, SkipEqual, 1, 2, 0, 0x20, 0x120},
		{0x8ab4, Add, 0xa, 0xb, 4, 0xb4, 0xab4},
		{0x8126, ShiftRight, 1, 2, 6, 0x26, 0x126},
		{0x812e, ShiftLeft, 1, 2, 0xe, 0x2e, 0x12e},
		{0xa123, SetIndex, 1, 2, 3, 0x23, 0x123},
		{0xb001, JumpV0, 0, 0, 1, 0x01, 0x001},
		{0xc3f0, Random, 3, 0xf, 0, 0xf0, 0x3f0},
		{0xd125, Draw, 1, 2, 5, 0x25, 0x125},
		{0xe19e, SkipKey, 1, 9, 0xe, 0x9e, 0x19e},
		{0xe2a1, SkipNotKey, 2, 0xa, 1, 0xa1, 0x2a1},
		{0xf10a, WaitKey, 1, 0, 0xa, 0x0a, 0x10a},
		{0xf533, StoreBCD, 5, 3, 3, 0x33, 0x533},
		{0xf765, LoadRegs, 7, 6, 5, 0x65, 0x765},
	}

	for _, tc := range tests {
		i, err := Decode(tc.word)
		if err != nil {
			t.Fatalf("%04x: unexpected decode error: %v", tc.word, err)
		}
		if i.Opcode != tc.opcode {
			t.Fatalf("%04x: opcode mismatch: want %d, have %d", tc.word, tc.opcode, i.Opcode)
		}
		if i.X != tc.x || i.Y != tc.y || i.N != tc.n || i.NN != tc.nn || i.NNN != tc.nnn {
			t.Fatalf("%04x: field mismatch: %+v", tc.word, i)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	words := []uint16{
		0x0000, // 0NNN machine call
		0x0123,
		0x00e1,
		0x5121, // 5XYN with N != 0
		0x8128, // 8XYN with unassigned N
		0x9231,
		0xe19f,
		0xe200,
		0xf000,
		0xf0ff,
		0xf166,
	}

	for _, word := range words {
		if _, err := Decode(word); err == nil {
			t.Fatalf("%04x: expected decode failure", word)
		} else if e, ok := err.(InvalidOpcode); !ok || uint16(e) != word {
			t.Fatalf("%04x: expected InvalidOpcode(%04x), have %v", word, word, err)
		}
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00e0, "CLS"},
		{0x1234, "JP 0x234"},
		{0x2456, "CALL 0x456"},
		{0x6a02, "LD VA, 0x02"},
		{0x8014, "ADD V0, V1"},
		{0x8106, "SHR V1"},
		{0xa22a, "LD I, 0x22a"},
		{0xb210, "JP V0, 0x210"},
		{0xc3f0, "RND V3, 0xf0"},
		{0xd125, "DRW V1, V2, 5"},
		{0xe19e, "SKP V1"},
		{0xf10a, "LD V1, K"},
		{0xf255, "LD [I], V2"},
	}

	for _, tc := range tests {
		i, err := Decode(tc.word)
		if err != nil {
			t.Fatalf("%04x: unexpected decode error: %v", tc.word, err)
		}
		if have := i.String(); have != tc.want {
			t.Fatalf("%04x: want %q, have %q", tc.word, tc.want, have)
		}
	}
}
