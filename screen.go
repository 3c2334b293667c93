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
	"github.com/massung/chip8-vm/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Render target holding the CHIP-8 video memory at 1:1.
	///
	Screen *sdl.Texture

	/// Size of a CHIP-8 pixel in the window.
	///
	ScreenScale int32
)

const (
	/// Width of the disassembly panel.
	///
	assemblyWidth = 204

	/// Width of the register panel.
	///
	registersWidth = 146

	/// Height of the register and log panels.
	///
	bottomHeight = 164

	/// Smallest panel height that fits 16 lines of disassembly.
	///
	minTopHeight = 162
)

/// Layout is the placement of every panel in the window.
///
type Layout struct {
	Screen    sdl.Rect
	Assembly  sdl.Rect
	Registers sdl.Rect
	Log       sdl.Rect
}

/// NewLayout positions the panels around a screen of the given scale.
///
func NewLayout(scale int32) Layout {
	sw := chip8.Width*scale + 2
	sh := chip8.Height*scale + 2

	// the top row is as tall as the screen or the disassembly
	top := max(sh, minTopHeight)
	bottom := 8 + top + 6

	w, _ := WindowSize(int(scale))

	return Layout{
		Screen:    sdl.Rect{X: 8, Y: 8, W: sw, H: sh},
		Assembly:  sdl.Rect{X: sw + 16, Y: 8, W: assemblyWidth, H: top},
		Registers: sdl.Rect{X: 8, Y: bottom, W: registersWidth, H: bottomHeight},
		Log:       sdl.Rect{X: registersWidth + 14, Y: bottom, W: w - registersWidth - 22, H: bottomHeight},
	}
}

/// WindowSize returns the window dimensions for a screen scale.
///
func WindowSize(scale int) (int32, int32) {
	s := int32(scale)

	w := chip8.Width*s + 2 + 16 + assemblyWidth + 8
	h := 8 + max(chip8.Height*s+2, minTopHeight) + 6 + bottomHeight + 8

	return w, h
}

/// InitScreen creates the render target for the CHIP-8 video memory.
///
func InitScreen(scale int) error {
	var err error

	ScreenScale = int32(scale)

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888), sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	return err
}

/// RefreshScreen with the CHIP-8 video memory.
///
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		logger.Error("Selecting screen render target failed", log.Err(err))
		return
	}

	// the background color for the screen
	_ = Renderer.SetDrawColor(143, 145, 133, 255)
	_ = Renderer.Clear()

	// set the pixel color
	_ = Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the lit cells, row-major
	for p, c := range VM.Pixels() {
		if c != 0 {
			_ = Renderer.DrawPoint(int32(p%chip8.Width), int32(p/chip8.Width))
		}
	}

	// restore the render target
	_ = Renderer.SetRenderTarget(nil)
}

/// CopyScreen stretches the render target into the window.
///
func CopyScreen(x, y int32) {
	src := sdl.Rect{W: chip8.Width, H: chip8.Height}
	dst := sdl.Rect{X: x, Y: y, W: chip8.Width * ScreenScale, H: chip8.Height * ScreenScale}

	_ = Renderer.Copy(Screen, &src, &dst)
}
