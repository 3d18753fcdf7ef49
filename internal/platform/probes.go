// Package platform selects the probes for the running operating system and
// combines them behind a Facade that never fails.
package platform

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

// Probes is the set of readers available on a platform.
type Probes interface {
	Name() string
	CPU() cpu.Reader
	Uptime() uptime.Reader
	OSRelease() osrelease.Reader
	Memory() memory.Reader
	Disk() disk.Reader
}

// Snapshot holds one reading of every probe. Nil fields were not available.
type Snapshot struct {
	OS     *osrelease.Release `json:"os,omitempty"`
	CPU    *cpu.Info          `json:"cpu,omitempty"`
	Memory *memory.Info       `json:"memory,omitempty"`
	Disk   *disk.Info         `json:"disk,omitempty"`
	Uptime *uptime.Uptime     `json:"uptime,omitempty"`
}

// Empty reports whether no probe produced a reading.
func (s Snapshot) Empty() bool {
	return s.OS == nil && s.CPU == nil && s.Memory == nil && s.Disk == nil && s.Uptime == nil
}

// Facade exposes probe results as optional values. Every call re-reads the
// host; nothing is cached.
type Facade struct {
	probes Probes
	log    zerolog.Logger
}

// NewFacade creates a Facade over probes. Failures are logged to log.
func NewFacade(probes Probes, log zerolog.Logger) *Facade {
	return &Facade{
		probes: probes,
		log:    log.With().Str("platform", probes.Name()).Logger(),
	}
}

// Name returns the name of the underlying probe set.
func (f *Facade) Name() string {
	return f.probes.Name()
}

// CPUInfo returns the CPU description, or nil if it could not be acquired.
func (f *Facade) CPUInfo(ctx context.Context) *cpu.Info {
	info, err := f.probes.CPU().GetInfo(ctx)
	if err != nil {
		f.failed("cpu", err)
		return nil
	}
	return info
}

// Uptime returns the system uptime, or nil if it could not be acquired.
func (f *Facade) Uptime(ctx context.Context) *uptime.Uptime {
	up, err := f.probes.Uptime().GetInfo(ctx)
	if err != nil {
		f.failed("uptime", err)
		return nil
	}
	return up
}

// OSRelease returns the OS identity, or nil if it could not be acquired.
func (f *Facade) OSRelease(ctx context.Context) *osrelease.Release {
	release, err := f.probes.OSRelease().GetInfo(ctx)
	if err != nil {
		f.failed("os-release", err)
		return nil
	}
	return release
}

// Memory returns memory usage, or nil if it could not be acquired.
func (f *Facade) Memory(ctx context.Context) *memory.Info {
	info, err := f.probes.Memory().GetInfo(ctx)
	if err != nil {
		f.failed("memory", err)
		return nil
	}
	return info
}

// Disk returns usage of the root filesystem, or nil if it could not be
// acquired.
func (f *Facade) Disk(ctx context.Context) *disk.Info {
	info, err := f.probes.Disk().GetInfo(ctx)
	if err != nil {
		f.failed("disk", err)
		return nil
	}
	return info
}

// Snapshot reads every probe once.
func (f *Facade) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		OS:     f.OSRelease(ctx),
		CPU:    f.CPUInfo(ctx),
		Memory: f.Memory(ctx),
		Disk:   f.Disk(ctx),
		Uptime: f.Uptime(ctx),
	}
}

func (f *Facade) failed(probe string, err error) {
	f.log.Debug().Str("probe", probe).Err(err).Msg("probe failed")
}
