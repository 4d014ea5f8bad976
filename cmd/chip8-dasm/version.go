package main

import "fmt"

// Various version related constants.
const (
	AppVendor  = "c8vm"
	AppName    = "chip8-dasm"
	AppVersion = "v1.2.0"
)

// Version returns program version information.
func Version() string {
	return fmt.Sprintf("%s %s %s", AppVendor, AppName, AppVersion)
}
