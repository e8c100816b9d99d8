package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestLoadInput(t *testing.T) {
	path := writeTempFile(t, "blob.bin", []byte{1, 2, 3, 4, 5})

	data, err := LoadInput(path, false, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, data)
}

func TestLoadInputZeroTerminator(t *testing.T) {
	path := writeTempFile(t, "blob.bin", []byte{1, 2, 3, 4, 5})

	data, err := LoadInput(path, false, true)
	require.NoError(t, err)
	require.Len(t, data, 6)
	assert.Equal(t, byte(0), data[5])
}

func TestLoadInputTextMode(t *testing.T) {
	path := writeTempFile(t, "text.txt", []byte("one\r\ntwo\r\nthree"))

	data, err := LoadInput(path, true, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("one\ntwo\nthree"), data)
}

func TestLoadInputTextModeKeepsLoneCarriageReturns(t *testing.T) {
	path := writeTempFile(t, "text.txt", []byte("a\rb"))

	data, err := LoadInput(path, true, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("a\rb"), data)
}

func TestLoadInputBinaryModeKeepsLineEndings(t *testing.T) {
	path := writeTempFile(t, "text.txt", []byte("one\r\ntwo"))

	data, err := LoadInput(path, false, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("one\r\ntwo"), data)
}

func TestLoadInputMissingFile(t *testing.T) {
	_, err := LoadInput(filepath.Join(t.TempDir(), "nope.bin"), false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}
