// Package chip8 implements the CHIP-8 interpreter core.
package chip8

import (
	"math/rand"
	"time"

	"github.com/c8vm/chip8/arch"
)

// Display dimensions and machine limits.
const (
	DisplayWidth  = 64 // Display width in pixels.
	DisplayHeight = 32 // Display height in pixels.
	NumRegisters  = 16 // General purpose registers V0-VF.
	StackDepth    = 16 // Call stack capacity.
)

// VF doubles as the carry/borrow/collision flag output of several
// instructions. Flag-producing instructions write it last, so the flag
// wins when VF is also the destination register.
const VF = 0xf

// TraceFunc represents a callback handler for debug trace output.
// It is invoked once per executed instruction.
type TraceFunc func(pc uint16, i arch.Instruction)

// System holds the complete machine state of one emulated CHIP-8.
// It is driven from a single goroutine; nothing in here is safe for
// concurrent use.
type System struct {
	memory  Memory
	v       [NumRegisters]byte
	stack   []uint16
	display [DisplayWidth * DisplayHeight]byte
	index   uint16 // Index register I.
	pc      uint16
	delay   byte
	sound   byte

	rng      *rand.Rand
	trace    TraceFunc
	frontend Frontend

	romSize   int           // Length of the loaded program image.
	cycleTime time.Duration // Sleep per run-loop cycle.
	lastTick  time.Time     // Last 60 Hz timer decrement.

	cycleCount uint64    // Instructions executed since start or reset.
	started    time.Time // Start of the current frequency measurement.

	debug     bool // Are the pause/step transitions reachable?
	paused    bool
	stepMode  bool
	stepArmed bool
	quit      bool
	dirty     bool // Display contents changed since the last present.
}

// New creates a system with the given program loaded at ProgramBase and
// the font table seeded at FontBase. Optionally with the given debug
// trace handler. Programs larger than the available memory are rejected
// before any instruction executes.
func New(rom []byte, debug bool, trace TraceFunc) (*System, error) {
	if len(rom) > MemorySize-ProgramBase {
		return nil, NewError(RomTooLarge, 0, uint16(len(rom)))
	}

	if trace == nil {
		trace = func(uint16, arch.Instruction) { /* nop */ }
	}

	s := &System{
		memory:    make(Memory, MemorySize),
		stack:     make([]uint16, 0, StackDepth),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		trace:     trace,
		debug:     debug,
		pc:        ProgramBase,
		romSize:   len(rom),
		cycleTime: time.Second / DefaultCycleRate,
		lastTick:  time.Now(),
		started:   time.Now(),
	}

	s.memory.Write(FontBase, fontSprites[:])
	s.memory.Write(ProgramBase, rom)
	return s, nil
}

// SetCycleRate sets the target instruction rate in instructions per second.
func (s *System) SetCycleRate(hz int) {
	if hz <= 0 {
		hz = DefaultCycleRate
	}
	s.cycleTime = time.Second / time.Duration(hz)
}

// SetRand replaces the random source consumed by the RND instruction.
// Mainly useful for deterministic tests.
func (s *System) SetRand(rng *rand.Rand) {
	s.rng = rng
}

// Frequency returns the effective instruction rate in herz.
func (s *System) Frequency() float64 {
	elapsed := time.Since(s.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.cycleCount) / elapsed
}

// Reset returns the system to its post-load state. The loaded program
// image and the font table survive; registers, index, timers, stack,
// display and the rest of memory are zeroed and PC returns to ProgramBase.
func (s *System) Reset() {
	for i := range s.v {
		s.v[i] = 0
	}
	for i := range s.display {
		s.display[i] = 0
	}

	zero := func(from, to int) {
		for i := from; i < to; i++ {
			s.memory[i] = 0
		}
	}
	zero(0, FontBase)
	zero(FontBase+len(fontSprites), ProgramBase)
	zero(ProgramBase+s.romSize, MemorySize)

	s.stack = s.stack[:0]
	s.index = 0
	s.pc = ProgramBase
	s.delay = 0
	s.sound = 0

	s.paused = false
	s.stepMode = false
	s.stepArmed = false

	s.cycleCount = 0
	s.started = time.Now()
	s.lastTick = time.Now()
	s.dirty = true
}
