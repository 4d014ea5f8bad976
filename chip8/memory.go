package chip8

// Memory layout constants.
const (
	MemorySize  = 4096  // Total addressable memory in bytes.
	ProgramBase = 0x200 // Load address for program ROMs.
	FontBase    = 0x050 // Load address for the built-in font table.
	GlyphSize   = 5     // Bytes per font glyph.
)

// Memory defines the system's memory bank.
type Memory []byte

// U16 returns the big-endian 16-bit value at the given address.
func (m Memory) U16(addr uint16) uint16 {
	return uint16(m[addr])<<8 | uint16(m[addr+1])
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(addr uint16, p []byte) {
	copy(m[addr:], p)
}

// fontSprites holds the built-in glyphs for the hexadecimal digits 0-F.
// Five bytes per glyph, one display row per byte, upper nibble used.
var fontSprites = [16 * GlyphSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
