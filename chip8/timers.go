package chip8

import "time"

// timerRate is the fixed decrement rate of the delay and sound timers
// in herz. It is deliberately decoupled from the instruction rate: the
// instruction clock is configurable, the timer clock is not.
const timerRate = 60

// tickTimers decrements both countdown timers when at least one timer
// period has elapsed since the previous decrement. Timers floor at zero.
func (s *System) tickTimers() {
	if time.Since(s.lastTick) < time.Second/timerRate {
		return
	}
	s.lastTick = time.Now()

	if s.delay > 0 {
		s.delay--
	}
	if s.sound > 0 {
		s.sound--
	}
}

// DelayTimer returns the current delay timer value.
func (s *System) DelayTimer() byte {
	return s.delay
}

// SoundTimer returns the current sound timer value. A nonzero value
// means a program is asking for the buzzer; no audio is synthesized.
func (s *System) SoundTimer() byte {
	return s.sound
}
