/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/faiface/mainthread"
	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.CPU

	/// Clock driving the virtual machine in real time.
	///
	Clock *chip8.Clock

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Path of the loaded ROM, empty when running the idle program.
	///
	File string

	/// Stdout logger shared by the frontend and the VM.
	///
	logger *log.Logger
)

/// Idle is run when no ROM is loaded: JP #0200.
///
var Idle = []byte{0x12, 0x00}

func main() {
	opts, err := ParseFlags(os.Args[1:])
	if err != nil {
		logger = CreateLogger(opts.Debug, opts.Quiet)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			PrintBanner(logger)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	logger = CreateLogger(opts.Debug, opts.Quiet)
	PrintBanner(logger)

	ctx := app.Context()
	failed := false

	// SDL must own the main OS thread
	mainthread.Run(func() {
		if err := run(ctx, opts); err != nil {
			logger.Error("Emulation failed", log.Err(err))
			failed = true
		}
	})

	if failed {
		os.Exit(1)
	}
}

/// PrintBanner logs the program name and build version.
///
func PrintBanner(logger *log.Logger) {
	logger.Info("CHIP-8 virtual machine", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, opts Options) error {
	VM = chip8.New(chip8.Config{Logger: logger})
	Clock = chip8.NewClock(VM, opts.Speed)
	Clock.Paused = opts.Paused

	if err := mainthread.CallErr(func() error { return initSDL(opts) }); err != nil {
		return err
	}
	defer mainthread.Call(closeSDL)

	File = opts.ROM
	mainthread.Call(Load)

	if opts.Paused {
		Console.Log("Paused, press SPACE to run")
	}

	video := time.NewTicker(time.Second / chip8.TimerFrequency)
	defer video.Stop()

	Clock.Start(time.Now())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil

		case now := <-video.C:
			if err := Clock.Advance(now); err != nil {
				Fault(err)
			}

			running := true
			mainthread.Call(func() {
				running = ProcessEvents()
				if running {
					Refresh()
				}
			})

			if !running {
				return nil
			}
		}
	}
}

/// Fault pauses emulation after the VM failed to execute an instruction.
///
func Fault(err error) {
	Clock.Paused = true

	logger.Error("Emulation halted", log.Err(err))
	Console.Logln("HALTED:", err.Error())
	Console.Log("Press BACKSPACE to reset")
}

func initSDL(opts Options) error {
	var err error

	if err = sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	w, h := WindowSize(opts.Scale)
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN); err != nil {
		sdl.Quit()
		return err
	}

	Window.SetTitle("CHIP-8")

	if err = InitScreen(opts.Scale); err != nil {
		closeSDL()
		return err
	}

	if err = InitFont(opts.Font); err != nil {
		logger.Warn("Debug font unavailable", log.String("file", opts.Font), log.Err(err))
	}

	return nil
}

func closeSDL() {
	if Font != nil {
		_ = Font.Destroy()
	}
	if Screen != nil {
		_ = Screen.Destroy()
	}
	if Renderer != nil {
		_ = Renderer.Destroy()
	}
	if Window != nil {
		_ = Window.Destroy()
	}

	sdl.Quit()
}

/// Load the current ROM file into the VM, or the idle program.
///
func Load() {
	if File == "" {
		if err := VM.LoadROM(Idle); err != nil {
			logger.Error("Loading idle program failed", log.Err(err))
		}

		Window.SetTitle("CHIP-8")
		return
	}

	rom, err := os.ReadFile(File)
	if err == nil {
		err = VM.LoadROM(rom)
	}

	if err != nil {
		logger.Error("Loading ROM failed", log.String("file", File), log.Err(err))
		Console.Logln("Failed to load", File)
		Console.Log(err.Error())

		// fall back to the idle program
		File = ""
		Load()
		return
	}

	logger.Info("Loaded ROM", log.String("file", File), log.Int("size", len(rom)))
	Console.Logln("Loaded", File)
	Window.SetTitle("CHIP-8 - " + File)
}

/// Refresh renders every panel of the emulator window.
///
func Refresh() {
	_ = Renderer.SetDrawColor(32, 42, 53, 255)
	_ = Renderer.Clear()

	l := NewLayout(ScreenScale)

	// frame various portions of the app
	Frame(l.Screen)
	Frame(l.Assembly)
	Frame(l.Registers)
	Frame(l.Log)

	// update the video screen and copy it
	if VM.Redraw() {
		RefreshScreen()
		VM.ClearRedraw()
	}
	CopyScreen(l.Screen.X+2, l.Screen.Y+2)

	// debug assembly, virtual registers and the log
	snap := VM.Snapshot()

	DebugAssembly(snap, l.Assembly.X+4, l.Assembly.Y+4)
	DebugRegisters(snap, l.Registers.X+4, l.Registers.Y+4)
	DebugLog(l.Log.X+4, l.Log.Y+4, l.Log.W-8)

	// show the new frame
	Renderer.Present()
}

/// Frame draws a bevelled border around a panel.
///
func Frame(r sdl.Rect) {
	x, y, w, h := r.X, r.Y, r.W, r.H

	_ = Renderer.SetDrawColor(0, 0, 0, 255)
	_ = Renderer.DrawLine(x, y, x+w, y)
	_ = Renderer.DrawLine(x, y, x, y+h)

	// highlight
	_ = Renderer.SetDrawColor(95, 112, 120, 255)
	_ = Renderer.DrawLine(x+w, y, x+w, y+h)
	_ = Renderer.DrawLine(x, y+h, x+w, y+h)
}
