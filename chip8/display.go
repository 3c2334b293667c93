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

package chip8

const (
	/// Width of the display in pixels.
	///
	Width = 64

	/// Height of the display in pixels.
	///
	Height = 32
)

/// PixelBuffer is the 64x32 display. Each cell is 0 or 1, row-major, so
/// pixel <x,y> is cell y*Width+x.
///
type PixelBuffer struct {
	cells  [Width * Height]byte
	redraw bool
}

/// Clear turns every pixel off and requests a redraw.
///
func (p *PixelBuffer) Clear() {
	p.cells = [Width * Height]byte{}
	p.redraw = true
}

/// DrawSprite XORs an 8-pixel wide sprite onto the display with its top
/// left corner at <x,y>. Coordinates wrap around both axes. Returns true if
/// any pixel that was on got turned off.
///
func (p *PixelBuffer) DrawSprite(x, y byte, sprite []byte) bool {
	collision := false

	ox := int(x) % Width
	oy := int(y) % Height

	for row, bits := range sprite {
		py := (oy + row) % Height

		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) == 0 {
				continue
			}

			i := py*Width + (ox+col)%Width

			// was a lit pixel turned off?
			if p.cells[i] == 1 {
				collision = true
			}

			p.cells[i] ^= 1
		}
	}

	p.redraw = true

	return collision
}

/// pixel returns the cell at <x,y>, wrapping coordinates.
///
func (p *PixelBuffer) pixel(x, y int) byte {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height

	return p.cells[y*Width+x]
}

/// Pixels returns a copy of all cells so the renderer never sees a
/// half-drawn sprite.
///
func (p *PixelBuffer) Pixels() []byte {
	out := make([]byte, len(p.cells))
	copy(out, p.cells[:])
	return out
}

/// Redraw is true when the display changed since the last ClearRedraw.
///
func (p *PixelBuffer) Redraw() bool {
	return p.redraw
}

/// ClearRedraw acknowledges that the consumer rendered the display.
///
func (p *PixelBuffer) ClearRedraw() {
	p.redraw = false
}

func (p *PixelBuffer) reset() {
	p.cells = [Width * Height]byte{}
	p.redraw = true
}
