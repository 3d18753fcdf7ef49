//go:build !linux && !windows

package platform

import (
	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/source"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

// HostProbes uses gopsutil for every reading.
type HostProbes struct {
	cpu       *cpu.HostReader
	uptime    *uptime.HostReader
	osRelease *osrelease.HostReader
	memory    *memory.HostReader
	disk      *disk.HostReader
}

// NewProbes creates the gopsutil probe set. The source root only selects the
// filesystem whose usage is reported.
func NewProbes(src *source.Source) Probes {
	return &HostProbes{
		cpu:       cpu.NewHostReader(),
		uptime:    uptime.NewHostReader(),
		osRelease: osrelease.NewHostReader(),
		memory:    memory.NewHostReader(),
		disk:      disk.NewHostReader(src.Root()),
	}
}

func (p *HostProbes) Name() string                { return string(GetOS()) }
func (p *HostProbes) CPU() cpu.Reader             { return p.cpu }
func (p *HostProbes) Uptime() uptime.Reader       { return p.uptime }
func (p *HostProbes) OSRelease() osrelease.Reader { return p.osRelease }
func (p *HostProbes) Memory() memory.Reader       { return p.memory }
func (p *HostProbes) Disk() disk.Reader           { return p.disk }
