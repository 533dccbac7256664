// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// maxROMSize is the largest program image that fits into the program space
// of the virtual machine.
const maxROMSize = chip8.MemorySize - chip8.ProgramStart

// Load reads a raw CHIP-8 ROM file and returns its bytes. The file has no
// header, the whole content is the program image that gets copied to the
// program start address.
func Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("file %s contains no data", path)
	}
	if len(rom) > maxROMSize {
		return nil, fmt.Errorf("file %s exceeds the maximum ROM size of %d bytes", path, maxROMSize)
	}

	return rom, nil
}
