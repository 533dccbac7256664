package chip8

// Display dimension constants.
const (
	// DisplayWidth is the width of the display in pixels.
	DisplayWidth = 64
	// DisplayHeight is the height of the display in pixels.
	DisplayHeight = 32

	displayCells = DisplayWidth * DisplayHeight
)

// Display is the 64x32 monochrome framebuffer, row-major with one cell per
// pixel. Sprites are combined into it with XOR, the common way CHIP-8
// programs erase a sprite is drawing it a second time at the same position.
// The display does not render, a host samples the cells after steps.
type Display struct {
	buffer [displayCells]uint8
}

// Clear sets every cell to 0.
func (d *Display) Clear() {
	d.buffer = [displayCells]uint8{}
}

// Pixel reports whether the cell at the given coordinates is set.
func (d *Display) Pixel(x, y int) bool {
	return d.buffer[x+y*DisplayWidth] == 1
}

// Pixels returns a copy of the flattened cell grid.
func (d *Display) Pixels() [displayCells]uint8 {
	return d.buffer
}

// DrawSprite XORs a sprite into the display at position (x, y). Each sprite
// byte is one row of 8 pixels, most significant bit leftmost. Target cells
// past the end of the grid are clamped to the last cell instead of wrapping
// to the next row. It reports whether any set cell was flipped off.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	collision := false

	for i, row := range sprite {
		for j := range 8 {
			if row&(0x80>>j) == 0 {
				continue
			}

			offset := x + j + (y+i)*DisplayWidth
			if offset >= displayCells {
				offset = displayCells - 1
			}

			if d.buffer[offset] == 1 {
				collision = true
			}
			d.buffer[offset] ^= 1
		}
	}
	return collision
}
