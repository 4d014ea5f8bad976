package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Rom         string // Path to the ROM file to load.
	ScaleFactor int    // Amount by which each framebuffer pixel is scaled.
	CycleRate   int    // Target instruction rate in instructions per second.
	Fullscreen  bool   // Run in fullscreen?
	Debug       bool   // Enable debug mode? This makes pause/step reachable.
	Trace       bool   // Print instruction trace data?
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the
// program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.ScaleFactor = 8
	c.CycleRate = 720

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.BoolVar(&c.Debug, "debug", c.Debug, "Run in debug mode. Enables the pause and step keys.")
	flag.BoolVar(&c.Trace, "trace", c.Trace, "Print instruction trace data to stdout.")
	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	flag.IntVar(&c.CycleRate, "cycle-rate", c.CycleRate, "Target instruction rate in instructions per second.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Rom = flag.Arg(0)
	c.Trace = c.Trace || c.Debug
	return &c
}
