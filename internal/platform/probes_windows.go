//go:build windows

package platform

import (
	"os"

	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/source"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

// WindowsProbes combines gopsutil readers with a WMI release reader.
type WindowsProbes struct {
	cpu       *cpu.HostReader
	uptime    *uptime.HostReader
	osRelease *osrelease.WMIReader
	memory    *memory.HostReader
	disk      *disk.HostReader
}

// NewProbes creates the probe set for Windows. The source root is not used.
func NewProbes(_ *source.Source) Probes {
	return &WindowsProbes{
		cpu:       cpu.NewHostReader(),
		uptime:    uptime.NewHostReader(),
		osRelease: osrelease.NewWMIReader(),
		memory:    memory.NewHostReader(),
		disk:      disk.NewHostReader(systemDrive()),
	}
}

func systemDrive() string {
	if drive := os.Getenv("SystemDrive"); drive != "" {
		return drive + `\`
	}
	return `C:\`
}

func (p *WindowsProbes) Name() string                { return string(Windows) }
func (p *WindowsProbes) CPU() cpu.Reader             { return p.cpu }
func (p *WindowsProbes) Uptime() uptime.Reader       { return p.uptime }
func (p *WindowsProbes) OSRelease() osrelease.Reader { return p.osRelease }
func (p *WindowsProbes) Memory() memory.Reader       { return p.memory }
func (p *WindowsProbes) Disk() disk.Reader           { return p.disk }
