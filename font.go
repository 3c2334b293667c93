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
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Texture containing a predefined font for debugging, etc.
	///
	Font *sdl.Texture
)

const (
	/// Glyph cell in the font bitmap.
	///
	glyphWidth  = 5
	glyphHeight = 7

	/// Horizontal advance per character.
	///
	glyphAdvance = 7
)

/// InitFont loads the bitmap surface with font on it. Text rendering
/// is disabled when the bitmap can't be loaded.
///
func InitFont(file string) error {
	surface, err := sdl.LoadBMP(file)
	if err != nil {
		return err
	}
	defer surface.Free()

	// magenta is transparent
	mask := sdl.MapRGB(surface.Format, 255, 0, 255)

	if err = surface.SetColorKey(true, mask); err != nil {
		return err
	}

	Font, err = Renderer.CreateTextureFromSurface(surface)
	return err
}

/// DrawText using the loaded font.
///
func DrawText(s string, x, y int32) {
	if Font == nil {
		return
	}

	src := sdl.Rect{W: glyphWidth, H: glyphHeight}
	dst := sdl.Rect{X: x, Y: y, W: glyphWidth, H: glyphHeight}

	// loop over all the characters in the string
	for _, c := range s {
		if c > 32 && c < 94 {
			src.X = (c - 33) * (glyphWidth + 1)

			// draw the character to the renderer
			_ = Renderer.Copy(Font, &src, &dst)
		}

		// advance
		dst.X += glyphAdvance
	}
}

/// TextWidth is the number of characters that fit in w pixels.
///
func TextWidth(w int32) int {
	return int(w / glyphAdvance)
}
