// Package keypad implements the 16-key CHIP-8 keypad.
package keypad

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/c8vm/chip8/devices"
)

// NumKeys is the number of logical keypad keys.
const NumKeys = 16

// keyMap translates host keys to logical key codes using the
// conventional 4x4 block:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyMap = map[glfw.Key]byte{
	glfw.Key1: 0x1, glfw.Key2: 0x2, glfw.Key3: 0x3, glfw.Key4: 0xc,
	glfw.KeyQ: 0x4, glfw.KeyW: 0x5, glfw.KeyE: 0x6, glfw.KeyR: 0xd,
	glfw.KeyA: 0x7, glfw.KeyS: 0x8, glfw.KeyD: 0x9, glfw.KeyF: 0xe,
	glfw.KeyZ: 0xa, glfw.KeyX: 0x0, glfw.KeyC: 0xb, glfw.KeyV: 0xf,
}

// Device tracks the state of the 16 keypad keys, plus the most recent
// unconsumed press and the most recent release.
type Device struct {
	down         [NumKeys]bool
	lastPressed  int // Logical key code, -1 when consumed.
	lastReleased int // Logical key code, -1 when none.
}

var _ devices.Device = &Device{}

// New creates a new device.
func New() *Device {
	return &Device{lastPressed: -1, lastReleased: -1}
}

// Name returns the device name.
func (d *Device) Name() string {
	return "keypad"
}

// Startup initializes device resources.
func (d *Device) Startup() error {
	d.clear()
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// HandleKey processes a host key event. Keys outside the keypad block
// are ignored; repeat events do not register as new presses.
func (d *Device) HandleKey(key glfw.Key, action glfw.Action) {
	code, ok := keyMap[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		d.down[code] = true
		d.lastPressed = int(code)
	case glfw.Release:
		d.down[code] = false
		d.lastReleased = int(code)
	}
}

// IsDown reports whether the given logical key is held.
func (d *Device) IsDown(key byte) bool {
	return key < NumKeys && d.down[key]
}

// Pending returns the most recent unconsumed key press, if any.
// The key counts as consumed by the call.
func (d *Device) Pending() (byte, bool) {
	if d.lastPressed < 0 {
		return 0, false
	}
	key := byte(d.lastPressed)
	d.lastPressed = -1
	return key, true
}

// LastReleased returns the most recently released key, if any.
// The key counts as consumed by the call.
func (d *Device) LastReleased() (byte, bool) {
	if d.lastReleased < 0 {
		return 0, false
	}
	key := byte(d.lastReleased)
	d.lastReleased = -1
	return key, true
}

func (d *Device) clear() {
	for i := range d.down {
		d.down[i] = false
	}
	d.lastPressed = -1
	d.lastReleased = -1
}
