package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Drone-Survey/internal/terrain"
)

func TestWriteSnapshot_PNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "terrain.png")
	sc, err := writeSnapshot(snapshotOptions{out: out, width: 64, height: 40, seed: 3})
	require.NoError(t, err)
	assert.Len(t, sc.Lines, terrain.LineCount)
	assert.Len(t, sc.Blobs, terrain.BlobCount)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestWriteSnapshot_FormatFlagWins(t *testing.T) {
	out := filepath.Join(t.TempDir(), "terrain.img")
	_, err := writeSnapshot(snapshotOptions{out: out, width: 8, height: 8, seed: 1, format: "bmp"})
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "BM", string(data[:2]))
}

func TestWriteSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := writeSnapshot(snapshotOptions{out: filepath.Join(dir, "a.png"), width: -1, height: 8, seed: 1})
	assert.ErrorIs(t, err, terrain.ErrInvalidSize)

	_, err = writeSnapshot(snapshotOptions{out: filepath.Join(dir, "a.png"), width: 8, height: 8, format: "gif"})
	assert.Error(t, err)
}

func TestSnapshotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cmd.tiff")
	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"snapshot", "--out", out, "--width", "32", "--height", "24", "--seed", "9"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "32x24 lines=50")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
