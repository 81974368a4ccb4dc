package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	p := Load()
	assert.Equal(t, Default(), p)
	_, err := os.Stat(Path)
	assert.True(t, os.IsNotExist(err), "Load must not create a file")
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(Path), 0755))
	require.NoError(t, os.WriteFile(Path, []byte("{not json"), 0644))
	assert.Equal(t, Default(), Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdir(t, t.TempDir())
	want := Prefs{
		ShowFPS:      true,
		ShowMemAlloc: true,
		GridVisible:  false,
		LightCount:   12,
		VSync:        false,
		ThirdPerson:  true,
	}
	require.NoError(t, Save(want))
	assert.Equal(t, want, Load())
}

func TestLoadSanitizesLightCount(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, Save(Prefs{LightCount: 0, GridVisible: true}))
	assert.Equal(t, Default().LightCount, Load().LightCount)
}
