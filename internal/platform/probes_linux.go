//go:build linux

package platform

import (
	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/source"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

// LinuxProbes reads /proc, /sys and os-release below a source root.
type LinuxProbes struct {
	cpu       *cpu.ProcReader
	uptime    *uptime.ProcReader
	osRelease *osrelease.FileReader
	memory    *memory.ProcReader
	disk      *disk.HostReader
}

// NewProbes creates the probe set for Linux. Disk usage is reported for the
// filesystem holding the source root.
func NewProbes(src *source.Source) Probes {
	return &LinuxProbes{
		cpu:       cpu.NewProcReader(src),
		uptime:    uptime.NewProcReader(src),
		osRelease: osrelease.NewFileReader(src),
		memory:    memory.NewProcReader(src),
		disk:      disk.NewHostReader(src.Root()),
	}
}

func (p *LinuxProbes) Name() string                { return string(Linux) }
func (p *LinuxProbes) CPU() cpu.Reader             { return p.cpu }
func (p *LinuxProbes) Uptime() uptime.Reader       { return p.uptime }
func (p *LinuxProbes) OSRelease() osrelease.Reader { return p.osRelease }
func (p *LinuxProbes) Memory() memory.Reader       { return p.memory }
func (p *LinuxProbes) Disk() disk.Reader           { return p.disk }
