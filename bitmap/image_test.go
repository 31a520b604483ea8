package bitmap

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	src := Frame(32, 16)
	tests := []struct {
		name     string
		filename string
		wantErr  error
	}{
		{"png", "out.png", nil},
		{"jpeg", "out.jpeg", nil},
		{"jpg upper case", "OUT.JPG", nil},
		{"gif", "out.gif", nil},
		{"bmp", "out.bmp", nil},
		{"webp is not supported", "out.webp", ErrUnsupportedFormat},
		{"no extension", "out", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), tt.filename)
			err := Save(src, filename)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NoFileExists(t, filename)
				return
			}
			require.NoError(t, err)
			got, err := Open(filename)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds().Size(), got.Bounds().Size())
		})
	}
}

func TestSave_overwrites(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "a.png")
	require.NoError(t, Save(Checkers(10, 10), filename))
	require.NoError(t, Save(Checkers(20, 5), filename))

	got, err := Open(filename)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(20, 5), got.Bounds().Size())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("corrupt file", func(t *testing.T) {
		filename := filepath.Join(dir, "corrupt.png")
		require.NoError(t, os.WriteFile(filename, []byte("definitely not a png"), 0o644))
		_, err := Open(filename)
		assert.Error(t, err)
	})
}

func TestSaveICO(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "favicon.ico")
	f, _ := Filter("")
	require.NoError(t, SaveICO(Square(Logo(256), 48, f), filename))

	r, err := os.Open(filename)
	require.NoError(t, err)
	defer r.Close()

	img, err := ico.Decode(r)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())
}
