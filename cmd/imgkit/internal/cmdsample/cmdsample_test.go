package cmdsample

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/imgkit/icons"
	"github.com/rusq/imgkit/mover"
)

func Test_writeSamples(t *testing.T) {
	dir := t.TempDir()
	var created []string
	require.NoError(t, writeSamples(dir, 64, func(filename string) { created = append(created, filename) }))
	assert.Len(t, created, 7)

	// the samples are usable by the other commands.
	s, err := mover.New(mover.Config{
		SourceDir: filepath.Join(dir, "icons"),
		TargetDir: filepath.Join(dir, "cropped_icons"),
		Strip:     "cropped_",
	}).Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 4, s.Processed())
	require.Len(t, s.Failures(), 1)
	assert.Equal(t, "cropped_broken.png", s.Failures()[0].Name)
	assert.FileExists(t, filepath.Join(dir, "cropped_icons", "logo.bmp"))

	res, err := icons.Generate(t.Context(), icons.DefaultConfig(filepath.Join(dir, "public")))
	require.NoError(t, err)
	assert.Len(t, res, 5)
}
