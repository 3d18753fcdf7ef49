package source

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceText(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"proc/uptime": {Data: []byte("3323.71 36380.42\n")},
	})

	text, err := src.Text("/proc/uptime")
	require.NoError(t, err)
	assert.Equal(t, "3323.71 36380.42\n", text)
}

func TestSourceTextMissing(t *testing.T) {
	src := NewFS(fstest.MapFS{})

	text, err := src.Text("/proc/uptime")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, text)
}

func TestSourceFromRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "proc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "proc", "uptime"), []byte("1.00 2.00\n"), 0o644))

	src := New(root)
	assert.Equal(t, root, src.Root())

	text, err := src.Text("/proc/uptime")
	require.NoError(t, err)
	assert.Equal(t, "1.00 2.00\n", text)
}

func TestSourceFSHasNoRoot(t *testing.T) {
	assert.Empty(t, NewFS(fstest.MapFS{}).Root())
	assert.Equal(t, DefaultRoot, New("").Root())
}

func TestSourceDir(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"sys/devices/system/cpu/cpu0/topology/core_id": {Data: []byte("0\n")},
		"sys/devices/system/cpu/cpu1/topology/core_id": {Data: []byte("1\n")},
		"sys/devices/system/cpu/cpufreq/policy0":       {Data: []byte("")},
	})

	entries, err := src.Dir("/sys/devices/system/cpu")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.Equal(t, []string{"cpu0", "cpu1", "cpufreq"}, names)

	_, err = src.Dir("/sys/nothing")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSourceFirst(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"usr/lib/os-release": {Data: []byte("NAME=Arch Linux\n")},
	})

	text, err := src.First("/etc/os-release", "/usr/lib/os-release")
	require.NoError(t, err)
	assert.Equal(t, "NAME=Arch Linux\n", text)

	_, err = src.First("/etc/os-release", "/etc/missing")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = src.First()
	assert.ErrorIs(t, err, ErrUnavailable)
}
