package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayClear(t *testing.T) {
	var d Display
	d.DrawSprite(10, 10, []byte{0xFF})

	d.Clear()

	for _, cell := range d.Pixels() {
		assert.Equal(t, uint8(0), cell)
	}
}

func TestDrawSprite(t *testing.T) {
	var d Display

	collision := d.DrawSprite(8, 4, []byte{0b10100000})

	assert.False(t, collision)
	assert.True(t, d.Pixel(8, 4))
	assert.False(t, d.Pixel(9, 4))
	assert.True(t, d.Pixel(10, 4))
}

func TestDrawSpriteCollision(t *testing.T) {
	var d Display

	assert.False(t, d.DrawSprite(8, 4, []byte{0xF0, 0x90}))

	// the identical draw erases every cell and reports the collision
	assert.True(t, d.DrawSprite(8, 4, []byte{0xF0, 0x90}))
	for _, cell := range d.Pixels() {
		assert.Equal(t, uint8(0), cell)
	}
}

func TestDrawSpriteOverlap(t *testing.T) {
	var d Display

	assert.False(t, d.DrawSprite(0, 0, []byte{0b10000000}))

	// one shared cell is enough to set the collision flag
	assert.True(t, d.DrawSprite(0, 0, []byte{0b11000000}))
	assert.False(t, d.Pixel(0, 0))
	assert.True(t, d.Pixel(1, 0))
}

// Cells past the end of the grid clamp to the last cell instead of
// wrapping to the next row.
func TestDrawSpriteClamp(t *testing.T) {
	var d Display

	collision := d.DrawSprite(DisplayWidth-1, DisplayHeight-1, []byte{0b11000000})

	// the first bit sets the last cell, the second clamps onto it and
	// toggles it off again
	assert.True(t, collision)
	assert.False(t, d.Pixel(DisplayWidth-1, DisplayHeight-1))
}
