package chip8

import "github.com/c8vm/chip8/arch"

// Step fetches, decodes and executes a single instruction.
func (s *System) Step() error {
	if s.pc >= MemorySize-1 {
		return NewError(PCOutOfBounds, s.pc, 0)
	}

	pc := s.pc
	word := s.memory.U16(pc)
	s.pc += 2

	instr, err := arch.Decode(word)
	if err != nil {
		return NewError(InvalidOpcode, pc, word)
	}

	s.trace(pc, instr)
	s.cycleCount++
	return s.execute(pc, instr)
}

// execute applies the given instruction to the machine state.
// pc is the address the instruction was fetched from; s.pc has already
// advanced past it, which is what CALL pushes and skips add to.
func (s *System) execute(pc uint16, i arch.Instruction) error {
	v := s.v[:]

	switch i.Opcode {
	case arch.Clear:
		for j := range s.display {
			s.display[j] = 0
		}
		s.dirty = true

	case arch.Return:
		if len(s.stack) == 0 {
			return NewError(StackUnderflow, pc, i.Word)
		}
		s.pc = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

	case arch.Jump:
		s.pc = i.NNN

	case arch.Call:
		if len(s.stack) == StackDepth {
			return NewError(StackOverflow, pc, i.Word)
		}
		s.stack = append(s.stack, s.pc)
		s.pc = i.NNN

	case arch.SkipEqualVal:
		if v[i.X] == i.NN {
			s.pc += 2
		}
	case arch.SkipNotEqualVal:
		if v[i.X] != i.NN {
			s.pc += 2
		}
	case arch.SkipEqual:
		if v[i.X] == v[i.Y] {
			s.pc += 2
		}
	case arch.SkipNotEqual:
		if v[i.X] != v[i.Y] {
			s.pc += 2
		}

	case arch.SetVal:
		v[i.X] = i.NN
	case arch.AddVal:
		// No carry flag for the immediate form.
		v[i.X] += i.NN
	case arch.Set:
		v[i.X] = v[i.Y]
	case arch.Or:
		v[i.X] |= v[i.Y]
	case arch.And:
		v[i.X] &= v[i.Y]
	case arch.Xor:
		v[i.X] ^= v[i.Y]

	case arch.Add:
		sum := uint16(v[i.X]) + uint16(v[i.Y])
		v[i.X] = byte(sum)
		v[VF] = byte(sum >> 8)
	case arch.SubY:
		flag := byte(0)
		if v[i.X] >= v[i.Y] {
			flag = 1
		}
		v[i.X] -= v[i.Y]
		v[VF] = flag
	case arch.SubX:
		flag := byte(0)
		if v[i.Y] >= v[i.X] {
			flag = 1
		}
		v[i.X] = v[i.Y] - v[i.X]
		v[VF] = flag
	case arch.ShiftRight:
		out := v[i.X] & 1
		v[i.X] >>= 1
		v[VF] = out
	case arch.ShiftLeft:
		out := v[i.X] >> 7
		v[i.X] <<= 1
		v[VF] = out

	case arch.SetIndex:
		s.index = i.NNN
	case arch.JumpV0:
		// BNNN adds V0 regardless of the high nibble of NNN. A quirk of
		// the original interpreter that programs rely on.
		s.pc = uint16(v[0]) + i.NNN
	case arch.Random:
		v[i.X] = byte(s.rng.Intn(256)) & i.NN

	case arch.Draw:
		if err := s.checkIndexSpan(pc, int(i.N)); err != nil {
			return err
		}
		s.draw(int(v[i.X]), int(v[i.Y]), int(i.N))

	case arch.SkipKey:
		if v[i.X] > 0xf {
			return NewError(InvalidRegister, pc, uint16(v[i.X]))
		}
		if s.frontend.IsKeyDown(v[i.X]) {
			s.pc += 2
		}
	case arch.SkipNotKey:
		if v[i.X] > 0xf {
			return NewError(InvalidRegister, pc, uint16(v[i.X]))
		}
		if !s.frontend.IsKeyDown(v[i.X]) {
			s.pc += 2
		}
	case arch.WaitKey:
		// Stall by replay: rewinding PC refetches this instruction next
		// cycle, so quit and debug signals keep getting serviced.
		if key, ok := s.frontend.PendingKey(); ok {
			v[i.X] = key
		} else {
			s.pc -= 2
		}

	case arch.GetDelay:
		v[i.X] = s.delay
	case arch.SetDelay:
		s.delay = v[i.X]
	case arch.SetSound:
		s.sound = v[i.X]

	case arch.AddIndex:
		s.index += uint16(v[i.X])
	case arch.SpriteAddr:
		s.index = FontBase + uint16(v[i.X]&0xf)*GlyphSize
	case arch.StoreBCD:
		if err := s.checkIndexSpan(pc, 3); err != nil {
			return err
		}
		s.memory[s.index] = v[i.X] / 100
		s.memory[s.index+1] = v[i.X] / 10 % 10
		s.memory[s.index+2] = v[i.X] % 10
	case arch.StoreRegs:
		// I is left unmodified. Some interpreter variants increment it
		// by X+1; this one deliberately does not.
		if err := s.checkIndexSpan(pc, i.X+1); err != nil {
			return err
		}
		copy(s.memory[s.index:], v[:i.X+1])
	case arch.LoadRegs:
		if err := s.checkIndexSpan(pc, i.X+1); err != nil {
			return err
		}
		copy(v[:i.X+1], s.memory[s.index:])
	}

	return nil
}

// checkIndexSpan faults when a transfer of span bytes starting at the
// index register would run past the end of memory. SetIndex and AddIndex
// may park I anywhere; the fault surfaces at the instruction that
// dereferences it.
func (s *System) checkIndexSpan(pc uint16, span int) error {
	if int(s.index)+span > MemorySize {
		return NewError(IndexOutOfBounds, pc, s.index)
	}
	return nil
}

// draw blits an n-byte tall, 8 pixel wide sprite from memory at I onto
// the display at (x, y). The start position wraps around the display
// edges; rows and columns falling off the edge during drawing are
// clipped. Pixels are XORed in and VF reports whether any set pixel was
// cleared by the draw.
func (s *System) draw(x, y, n int) {
	x %= DisplayWidth
	y %= DisplayHeight
	s.v[VF] = 0

	for row := 0; row < n; row++ {
		py := y + row
		if py >= DisplayHeight {
			break
		}

		bits := s.memory[int(s.index)+row]

		for col := 0; col < 8; col++ {
			px := x + col
			if px >= DisplayWidth {
				break
			}
			if bits>>(7-col)&1 == 0 {
				continue
			}

			cell := &s.display[py*DisplayWidth+px]
			if *cell != 0 {
				s.v[VF] = 1
			}
			*cell ^= 1
		}
	}

	s.dirty = true
}
