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
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]uint8{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns
/// false once the window was closed.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			key, mapped := KeyMap[ev.Keysym.Scancode]

			switch {
			case ev.Type == sdl.KEYDOWN && mapped:
				if err := VM.PressKey(key); err != nil {
					logger.Error("Pressing key failed", log.Uint8("key", key), log.Err(err))
				}
			case ev.Type == sdl.KEYUP && mapped:
				if err := VM.ReleaseKey(key); err != nil {
					logger.Error("Releasing key failed", log.Uint8("key", key), log.Err(err))
				}
			case ev.Type == sdl.KEYDOWN:
				HotKey(ev.Keysym.Scancode, ev.Keysym.Mod&sdl.KMOD_CTRL != 0)
			}
		}
	}

	return true
}

/// HotKey runs the emulator command bound to a non-keypad key.
///
func HotKey(code sdl.Scancode, ctrl bool) {
	switch code {
	case sdl.SCANCODE_ESCAPE:
		File = ""

		// go back to the idle program
		Console.Logln("Unloading ROM")
		Load()
	case sdl.SCANCODE_BACKSPACE:
		Reset(ctrl)
	case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
		Console.ScrollUp()
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
		Console.ScrollDown(logLines)
	case sdl.SCANCODE_HOME:
		Console.Home()
	case sdl.SCANCODE_END:
		Console.End()
	case sdl.SCANCODE_F2:
		Load()
	case sdl.SCANCODE_F3:
		LoadDialog()
	case sdl.SCANCODE_H:
		DebugHelp()
	case sdl.SCANCODE_LEFTBRACKET:
		Clock.DecSpeed()
		Console.Logf("Speed %d Hz", Clock.Speed())
	case sdl.SCANCODE_RIGHTBRACKET:
		Clock.IncSpeed()
		Console.Logf("Speed %d Hz", Clock.Speed())
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		Clock.Paused = !Clock.Paused
	case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
		if Clock.Paused {
			Step()
		}
	case sdl.SCANCODE_F8:
		if Clock.Paused {
			DebugMemory()
		}
	}
}

/// Reset the VM, keeping the loaded ROM. Holding control resets paused.
///
func Reset(paused bool) {
	VM.Reset()

	Clock.Paused = paused
	Clock.Start(time.Now())

	Console.Logln("Reset")
}

/// Step a single instruction while paused.
///
func Step() {
	snap, err := Clock.Step()
	if err != nil {
		Console.Log(err.Error())
		logger.Warn("Step failed", log.Err(err))
		return
	}

	logger.Debug("Stepped",
		log.Hex("pc", snap.PC),
		log.String("instruction", snap.Instruction.String()))
}

/// LoadDialog asks for a ROM file and loads it.
///
func LoadDialog() {
	file, err := dialog.File().
		Filter("CHIP-8 ROMs", "ch8", "c8").
		Filter("All files", "*").
		Title("Load ROM").
		Load()

	switch {
	case errors.Is(err, dialog.ErrCancelled):
		return
	case err != nil:
		logger.Error("Open dialog failed", log.Err(err))
		Console.Log(fmt.Sprintf("Open failed: %v", err))
		return
	}

	File = file
	Load()
}
