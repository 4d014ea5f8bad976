package chip8

import (
	"time"

	"github.com/pkg/errors"
)

// DefaultCycleRate is the default instruction rate in instructions per second.
const DefaultCycleRate = 720

// Signal is a bitmask of control requests reported by the frontend.
type Signal int

// Known signals.
const (
	SigPause    Signal = 1 << iota // Toggle pause. Reachable in debug mode only.
	SigStepMode                    // Toggle single-step mode. Debug mode only.
	SigStep                        // Arm execution of one instruction in step mode.
	SigReset                       // Reinitialize all state except the loaded program.
	SigQuit                        // Stop the emulator. Terminal.
)

// Frontend represents the presentation and input backend the core is
// wired to. The core polls it; it never calls back into the core.
type Frontend interface {
	// Poll reports pending control signals. It must not block beyond
	// one cycle. Poll errors are fatal to the run loop.
	Poll() (Signal, error)

	// Draw presents the given 64x32 display snapshot. Cells hold 0 or 1,
	// one byte per pixel, in row-major order.
	Draw(display []byte)

	// IsKeyDown reports whether the given logical key 0x0-0xF is held.
	IsKeyDown(key byte) bool

	// PendingKey returns the most recent unconsumed key press, if any.
	// A returned key counts as consumed.
	PendingKey() (byte, bool)
}

// Run drives the fetch-decode-execute cycle against the given frontend
// until a quit signal arrives or execution faults. It owns the calling
// goroutine for its entire duration.
func (s *System) Run(f Frontend) error {
	s.frontend = f
	s.started = time.Now()
	s.lastTick = time.Now()

	for !s.quit {
		if s.runnable() {
			s.tickTimers()
			if err := s.Step(); err != nil {
				return err
			}
		}

		time.Sleep(s.cycleTime)

		if s.stepMode && s.stepArmed {
			s.present(f)
			s.stepArmed = false
		} else if s.dirty {
			s.present(f)
		}

		sig, err := f.Poll()
		if err != nil {
			return errors.Wrap(err, "frontend poll failed")
		}
		s.apply(sig, f)
	}

	return nil
}

// runnable reports whether an instruction should execute this cycle.
// Paused and unarmed step-mode cycles execute nothing; they are no-op
// cycles, not replays.
func (s *System) runnable() bool {
	return !s.paused && (!s.stepMode || s.stepArmed)
}

// apply performs run-state transitions for the given signal mask.
// Quit is absorbing; once seen, no other transition applies.
func (s *System) apply(sig Signal, f Frontend) {
	if sig&SigQuit != 0 {
		s.quit = true
		return
	}

	if sig&SigPause != 0 && s.debug {
		s.paused = !s.paused
		s.present(f)
	}

	if sig&SigStepMode != 0 && s.debug {
		s.stepMode = !s.stepMode
		s.stepArmed = false
		s.present(f)
	}

	if sig&SigStep != 0 {
		s.stepArmed = true
	}

	if sig&SigReset != 0 {
		s.Reset()
		s.present(f)
	}
}

func (s *System) present(f Frontend) {
	f.Draw(s.display[:])
	s.dirty = false
}
