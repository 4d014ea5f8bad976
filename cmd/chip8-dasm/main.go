package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/c8vm/chip8/arch"
	"github.com/c8vm/chip8/chip8"
)

func main() {
	c := parseArgs()

	rom, err := ioutil.ReadFile(c.Input)
	if err != nil {
		log.Fatal(err)
	}

	if len(rom) > chip8.MemorySize-chip8.ProgramBase {
		log.Fatalf("rom is too large to fit in memory (%d bytes)", len(rom))
	}

	disassemble(os.Stdout, rom)
}

// disassemble prints one line per instruction word: the load address,
// the raw word and its mnemonic. Words that do not decode render as raw
// data; plenty of ROMs interleave sprite data with code.
func disassemble(w io.Writer, rom []byte) {
	for i := 0; i+1 < len(rom); i += 2 {
		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		addr := chip8.ProgramBase + i

		instr, err := arch.Decode(word)
		if err != nil {
			fmt.Fprintf(w, "%04x  %04x  .dw 0x%04x\n", addr, word, word)
			continue
		}

		fmt.Fprintf(w, "%04x  %04x  %s\n", addr, word, instr)
	}

	if len(rom)%2 != 0 {
		b := rom[len(rom)-1]
		fmt.Fprintf(w, "%04x  %02x    .db 0x%02x\n", chip8.ProgramBase+len(rom)-1, b, b)
	}
}
