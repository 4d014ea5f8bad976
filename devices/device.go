// Package devices defines the lifecycle contract shared by the
// emulator's peripheral devices.
package devices

import (
	"log"

	"github.com/pkg/errors"
)

// Device represents a peripheral with explicit lifecycle management.
type Device interface {
	// Name identifies the device in logs and error messages.
	Name() string

	// Startup initializes internal resources.
	Startup() error

	// Shutdown cleans up internal resources.
	Shutdown() error
}

// Startup initializes the given devices in order. All devices are
// attempted; failures are collected into an ErrorSet.
func Startup(devs ...Device) error {
	var errorset ErrorSet

	for _, dev := range devs {
		log.Println(dev.Name(), "startup")
		if err := dev.Startup(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.Name()))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}
	return errorset
}

// Shutdown cleans up the given devices in order. All devices are
// attempted; failures are collected into an ErrorSet.
func Shutdown(devs ...Device) error {
	var errorset ErrorSet

	for _, dev := range devs {
		log.Println(dev.Name(), "shutdown")
		if err := dev.Shutdown(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", dev.Name()))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}
	return errorset
}
