package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/platform"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

func fullSnapshot() platform.Snapshot {
	return platform.Snapshot{
		OS: &osrelease.Release{Name: "Arch Linux", PrettyName: "Arch Linux", ID: "arch"},
		CPU: &cpu.Info{
			Brand:         "AMD Ryzen 7 5700U",
			PhysicalCores: 8,
			LogicalCores:  16,
			Frequency:     1776664,
		},
		Uptime: &uptime.Uptime{Seconds: 133799999, IdleSeconds: 56600},
	}
}

func TestLines(t *testing.T) {
	lines := Lines(fullSnapshot(), 1)
	assert.Equal(t, []Line{
		{Name: "os", Value: "Arch Linux"},
		{Name: "cpu", Value: "AMD Ryzen 7 5700U, 8, 1.8 GHz"},
		{Name: "tm", Value: "4 years"},
	}, lines)
}

func TestLinesUnits(t *testing.T) {
	lines := Lines(platform.Snapshot{Uptime: &uptime.Uptime{Seconds: 133799999}}, 3)
	require.Len(t, lines, 1)
	assert.Equal(t, "4 years, 3 months, 18 days", lines[0].Value)
}

func TestLinesSkipAbsent(t *testing.T) {
	assert.Empty(t, Lines(platform.Snapshot{}, 1))

	snap := fullSnapshot()
	snap.CPU = nil
	lines := Lines(snap, 1)
	require.Len(t, lines, 2)
	assert.Equal(t, "os", lines[0].Name)
	assert.Equal(t, "tm", lines[1].Name)
}

func TestLinesZeroUptime(t *testing.T) {
	assert.Empty(t, Lines(platform.Snapshot{Uptime: &uptime.Uptime{}}, 6))
}

func TestLinesWholeGHz(t *testing.T) {
	snap := platform.Snapshot{CPU: &cpu.Info{Brand: "x", PhysicalCores: 1, Frequency: 2000000}}
	assert.Equal(t, "x, 1, 2.0 GHz", Lines(snap, 1)[0].Value)
}

func TestLinesMemoryAndDisk(t *testing.T) {
	snap := fullSnapshot()
	snap.Memory = &memory.Info{Total: 16 << 30, Available: 12 << 30}
	snap.Disk = &disk.Info{Mountpoint: "/", Total: 500 << 30, Used: 100 << 30, Free: 300 << 30}

	lines := Lines(snap, 1)
	require.Len(t, lines, 5)
	assert.Equal(t, Line{Name: "mem", Value: "4.0 GiB / 16 GiB (25%)"}, lines[2])
	assert.Equal(t, Line{Name: "fs", Value: "100 GiB / 500 GiB (25%)"}, lines[3])
	assert.Equal(t, "tm", lines[4].Name)
}

func TestPrinterFetchPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.Ascii)

	require.NoError(t, p.Fetch(Lines(fullSnapshot(), 1)))
	assert.Equal(t,
		"  os  ~ Arch Linux\n"+
			"  cpu ~ AMD Ryzen 7 5700U, 8, 1.8 GHz\n"+
			"  tm  ~ 4 years\n",
		buf.String())
}

func TestPrinterFetchColored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.ANSI)

	require.NoError(t, p.Fetch([]Line{{Name: "cpu", Value: "x"}}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "cpu")
}

func TestPrinterHelp(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.Ascii)

	require.NoError(t, p.Help("picofetch", "  -h, --help   Print help information\n"))
	out := buf.String()
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "picofetch [OPTIONS]")
	assert.Contains(t, out, "OPTIONS:")
	assert.Contains(t, out, "--help")
}

func TestPrinterParseError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.Ascii)

	require.NoError(t, p.ParseError([]string{"--bogus", "x"}))
	assert.Equal(t, "Failed to parse args: --bogus x\n", buf.String())
}

func TestProfileNoColor(t *testing.T) {
	assert.Equal(t, termenv.Ascii, Profile(&bytes.Buffer{}, false))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, fullSnapshot(), 2))

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "AMD Ryzen 7 5700U", out["cpu"]["brand"])
	assert.EqualValues(t, 1776664, out["cpu"]["frequency_khz"])
	assert.EqualValues(t, 1776.7, out["cpu"]["frequency_mhz"])
	assert.EqualValues(t, 1.8, out["cpu"]["frequency_ghz"])
	assert.EqualValues(t, 133799999, out["uptime"]["uptime_seconds"])
	assert.Equal(t, "4 years, 3 months", out["uptime"]["formatted"])
	assert.Equal(t, "15 hours, 43 minutes", out["uptime"]["idle_formatted"])
	assert.Equal(t, "Arch Linux", out["os"]["pretty_name"])
	assert.NotContains(t, out, "memory")
}

func TestJSONMemoryAndDisk(t *testing.T) {
	snap := platform.Snapshot{
		Memory: &memory.Info{Total: 100, Available: 75},
		Disk:   &disk.Info{Mountpoint: "/", Total: 100, Used: 40, Free: 60},
	}
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, snap, 1))
	assert.JSONEq(t, `{
		"memory": {"total_bytes": 100, "available_bytes": 75, "used_bytes": 25, "used_percent": 25},
		"disk": {"mountpoint": "/", "total_bytes": 100, "used_bytes": 40, "free_bytes": 60, "used_percent": 40}
	}`, buf.String())
}

func TestJSONOmitsAbsent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, platform.Snapshot{}, 1))
	assert.JSONEq(t, `{}`, buf.String())
}
