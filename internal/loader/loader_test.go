package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56, 0x78}
		file := createTempFile(t, data)

		rom, err := Load(file)
		assert.NoError(t, err)
		assert.Equal(t, data, rom)
	})

	t.Run("load maximum size ROM", func(t *testing.T) {
		file := createTempFile(t, make([]byte, maxROMSize))

		rom, err := Load(file)
		assert.NoError(t, err)
		assert.Len(t, rom, maxROMSize)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		file := createTempFile(t, nil)

		_, err := Load(file)
		assert.Error(t, err)
	})

	t.Run("oversized file", func(t *testing.T) {
		file := createTempFile(t, make([]byte, maxROMSize+1))

		_, err := Load(file)
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(file, data, 0o644))
	return file
}
