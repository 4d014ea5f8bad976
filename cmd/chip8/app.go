package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/c8vm/chip8/arch"
	"github.com/c8vm/chip8/chip8"
	"github.com/c8vm/chip8/devices"
	"github.com/c8vm/chip8/devices/display"
	"github.com/c8vm/chip8/devices/keypad"
)

// App defines application context. It owns the window and the devices
// and implements chip8.Frontend on top of them.
type App struct {
	config       *Config         // Application configuration.
	window       *glfw.Window    // OpenGL/GLFW context.
	sys          *chip8.System   // Interpreter core with the loaded program.
	display      *display.Device // Framebuffer renderer.
	keypad       *keypad.Device  // 16-key logical keypad.
	signals      chip8.Signal    // Accumulated by the key callback, drained by Poll.
	titleUpdated time.Time       // Value used to periodically update the window title.
}

var _ chip8.Frontend = &App{}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.display = display.New()
	a.keypad = keypad.New()
	return &a
}

// Run runs the application and does not return until the program quits,
// execution faults, or an error occurred during initialization.
func (a *App) Run() error {
	rom, err := ioutil.ReadFile(a.config.Rom)
	if err != nil {
		return errors.Wrapf(err, "failed to read rom %q", a.config.Rom)
	}

	log.Println("loading", a.config.Rom)

	a.sys, err = chip8.New(rom, a.config.Debug, a.traceFunc())
	if err != nil {
		return err
	}
	a.sys.SetCycleRate(a.config.CycleRate)

	if err := a.initGL(); err != nil {
		return err
	}
	defer a.dispose()

	if err := devices.Startup(a.display, a.keypad); err != nil {
		return err
	}

	log.Println(Version())
	printHelp()

	return a.sys.Run(a)
}

// Poll pumps window events and reports accumulated control signals.
func (a *App) Poll() (chip8.Signal, error) {
	glfw.PollEvents()

	if a.window.ShouldClose() {
		return chip8.SigQuit, nil
	}

	// Periodically update the window title to show the effective
	// instruction rate.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		a.titleUpdated = time.Now()
		freq := prettyFrequency(a.sys.Frequency())
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, freq))
	}

	sig := a.signals
	a.signals = 0
	return sig, nil
}

// Draw presents the given framebuffer snapshot.
func (a *App) Draw(fb []byte) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	a.display.Update(fb)
	a.display.Draw()
	a.window.SwapBuffers()
}

// IsKeyDown reports whether the given logical key is held.
func (a *App) IsKeyDown(key byte) bool {
	return a.keypad.IsDown(key)
}

// PendingKey returns the most recent unconsumed key press, if any.
func (a *App) PendingKey() (byte, bool) {
	return a.keypad.Pending()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	a.keypad.HandleKey(key, action)

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF5:
		a.signals |= chip8.SigReset
	case glfw.KeyP:
		a.signals |= chip8.SigPause
	case glfw.KeyM:
		a.signals |= chip8.SigStepMode
	case glfw.KeyN:
		a.signals |= chip8.SigStep
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := display.Width * a.config.ScaleFactor
	height := display.Height * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if err := devices.Shutdown(a.display, a.keypad); err != nil {
		log.Println(err)
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

// traceFunc returns the instruction trace handler, or nil when tracing
// is disabled.
func (a *App) traceFunc() chip8.TraceFunc {
	if !a.config.Trace {
		return nil
	}
	return func(pc uint16, i arch.Instruction) {
		fmt.Printf("%04x  %04x  %s\n", pc, i.Word, i)
	}
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the emulator.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       Reset the machine. The loaded program survives.\n")
	sb.WriteString(" P        Pause/resume execution. Debug mode only.\n")
	sb.WriteString(" M        Enter/leave single-step mode. Debug mode only.\n")
	sb.WriteString(" N        Execute one instruction while in step mode.")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock
// frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
