package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/source"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

type cpuStub struct {
	info *cpu.Info
	err  error
}

func (s cpuStub) GetInfo(context.Context) (*cpu.Info, error) { return s.info, s.err }

type uptimeStub struct {
	up  *uptime.Uptime
	err error
}

func (s uptimeStub) GetInfo(context.Context) (*uptime.Uptime, error) { return s.up, s.err }

type releaseStub struct {
	release *osrelease.Release
	err     error
}

func (s releaseStub) GetInfo(context.Context) (*osrelease.Release, error) { return s.release, s.err }

type memoryStub struct {
	info *memory.Info
	err  error
}

func (s memoryStub) GetInfo(context.Context) (*memory.Info, error) { return s.info, s.err }

type diskStub struct {
	info *disk.Info
	err  error
}

func (s diskStub) GetInfo(context.Context) (*disk.Info, error) { return s.info, s.err }

type stubProbes struct {
	cpu       cpuStub
	uptime    uptimeStub
	osRelease releaseStub
	memory    memoryStub
	disk      diskStub
}

func (p stubProbes) Name() string                { return "stub" }
func (p stubProbes) CPU() cpu.Reader             { return p.cpu }
func (p stubProbes) Uptime() uptime.Reader       { return p.uptime }
func (p stubProbes) OSRelease() osrelease.Reader { return p.osRelease }
func (p stubProbes) Memory() memory.Reader       { return p.memory }
func (p stubProbes) Disk() disk.Reader           { return p.disk }

func healthy() stubProbes {
	return stubProbes{
		cpu: cpuStub{info: &cpu.Info{
			Brand:         "AMD Ryzen 7 5700U",
			PhysicalCores: 8,
			LogicalCores:  16,
			Frequency:     1776664,
		}},
		uptime:    uptimeStub{up: &uptime.Uptime{Seconds: 3323, IdleSeconds: 36380}},
		osRelease: releaseStub{release: &osrelease.Release{Name: "Arch Linux", PrettyName: "Arch Linux", ID: "arch"}},
		memory:    memoryStub{info: &memory.Info{Total: 16 << 30, Available: 12 << 30}},
		disk:      diskStub{info: &disk.Info{Mountpoint: "/", Total: 500 << 30, Used: 100 << 30, Free: 400 << 30}},
	}
}

func TestFacadeSnapshot(t *testing.T) {
	facade := NewFacade(healthy(), zerolog.Nop())

	snap := facade.Snapshot(context.Background())
	require.NotNil(t, snap.CPU)
	require.NotNil(t, snap.Uptime)
	require.NotNil(t, snap.OS)
	assert.Equal(t, "AMD Ryzen 7 5700U", snap.CPU.Brand)
	assert.Equal(t, uint64(3323), snap.Uptime.Seconds)
	assert.Equal(t, "Arch Linux", snap.OS.PrettyName)
	require.NotNil(t, snap.Memory)
	assert.Equal(t, uint64(4<<30), snap.Memory.Used())
	require.NotNil(t, snap.Disk)
	assert.Equal(t, "/", snap.Disk.Mountpoint)
	assert.False(t, snap.Empty())
	assert.Equal(t, "stub", facade.Name())
}

func TestSnapshotEmpty(t *testing.T) {
	facade := NewFacade(stubProbes{
		cpu:       cpuStub{err: errors.New("no cpu")},
		uptime:    uptimeStub{err: errors.New("no uptime")},
		osRelease: releaseStub{err: errors.New("no release")},
		memory:    memoryStub{err: errors.New("no memory")},
		disk:      diskStub{err: errors.New("no disk")},
	}, zerolog.Nop())

	assert.True(t, facade.Snapshot(context.Background()).Empty())
}

func TestFacadeFailuresAreAbsent(t *testing.T) {
	probes := healthy()
	probes.cpu = cpuStub{err: fmt.Errorf("%w: %w", cpu.ErrAcquisition, source.ErrUnavailable)}
	probes.uptime = uptimeStub{err: fmt.Errorf("%w: %w", uptime.ErrAcquisition, source.ErrParse)}

	var buf bytes.Buffer
	facade := NewFacade(probes, zerolog.New(&buf).Level(zerolog.DebugLevel))

	snap := facade.Snapshot(context.Background())
	assert.Nil(t, snap.CPU)
	assert.Nil(t, snap.Uptime)
	require.NotNil(t, snap.OS)

	logged := buf.String()
	assert.Contains(t, logged, `"probe":"cpu"`)
	assert.Contains(t, logged, `"probe":"uptime"`)
	assert.Contains(t, logged, `"platform":"stub"`)
	assert.Contains(t, logged, `"level":"debug"`)
}

func TestFacadeIndividualAccessors(t *testing.T) {
	probes := healthy()
	probes.osRelease = releaseStub{err: errors.New("boom")}
	facade := NewFacade(probes, zerolog.Nop())
	ctx := context.Background()

	assert.Nil(t, facade.OSRelease(ctx))
	assert.NotNil(t, facade.CPUInfo(ctx))
	assert.NotNil(t, facade.Uptime(ctx))
	assert.NotNil(t, facade.Memory(ctx))
	assert.NotNil(t, facade.Disk(ctx))
}

func TestSnapshotJSONOmitsAbsent(t *testing.T) {
	data, err := json.Marshal(Snapshot{Uptime: &uptime.Uptime{Seconds: 60}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"uptime":{"uptime_seconds":60,"idle_seconds":0}}`, string(data))
}

func TestValidate(t *testing.T) {
	for _, os := range []SupportedOS{Linux, Windows, Darwin, FreeBSD} {
		assert.NoError(t, validate(os), os)
	}

	err := validate("plan9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan9")
	assert.False(t, isSupported("js"))
}
