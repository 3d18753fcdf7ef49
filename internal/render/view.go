package render

import (
	"encoding/json"
	"io"

	"github.com/CristiGvl/picoFetch/internal/cpu"
	"github.com/CristiGvl/picoFetch/internal/disk"
	"github.com/CristiGvl/picoFetch/internal/memory"
	"github.com/CristiGvl/picoFetch/internal/osrelease"
	"github.com/CristiGvl/picoFetch/internal/platform"
	"github.com/CristiGvl/picoFetch/internal/uptime"
)

// CPUView adds derived frequency units to cpu.Info.
type CPUView struct {
	*cpu.Info
	FrequencyMHz float64 `json:"frequency_mhz"`
	FrequencyGHz float64 `json:"frequency_ghz"`
}

// UptimeView adds the formatted uptime to uptime.Uptime.
type UptimeView struct {
	*uptime.Uptime
	Formatted     string `json:"formatted"`
	IdleFormatted string `json:"idle_formatted"`
}

// MemoryView adds derived usage to memory.Info.
type MemoryView struct {
	*memory.Info
	Used        uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// DiskView adds the usage percentage to disk.Info.
type DiskView struct {
	*disk.Info
	UsedPercent float64 `json:"used_percent"`
}

// SnapshotView is the JSON shape of a snapshot. Absent readings are omitted.
type SnapshotView struct {
	OS     *osrelease.Release `json:"os,omitempty"`
	CPU    *CPUView           `json:"cpu,omitempty"`
	Memory *MemoryView        `json:"memory,omitempty"`
	Disk   *DiskView          `json:"disk,omitempty"`
	Uptime *UptimeView        `json:"uptime,omitempty"`
}

// NewCPUView returns nil for a nil info.
func NewCPUView(info *cpu.Info) *CPUView {
	if info == nil {
		return nil
	}
	return &CPUView{
		Info:         info,
		FrequencyMHz: info.Frequency.MHz(),
		FrequencyGHz: info.Frequency.GHz(),
	}
}

// NewUptimeView returns nil for a nil uptime.
func NewUptimeView(up *uptime.Uptime, units int) *UptimeView {
	if up == nil {
		return nil
	}
	return &UptimeView{
		Uptime:        up,
		Formatted:     up.Format(units),
		IdleFormatted: up.IdleFormat(units),
	}
}

// NewMemoryView returns nil for a nil info.
func NewMemoryView(info *memory.Info) *MemoryView {
	if info == nil {
		return nil
	}
	return &MemoryView{Info: info, Used: info.Used(), UsedPercent: info.UsedPercent()}
}

// NewDiskView returns nil for a nil info.
func NewDiskView(info *disk.Info) *DiskView {
	if info == nil {
		return nil
	}
	return &DiskView{Info: info, UsedPercent: info.UsedPercent()}
}

func NewSnapshotView(snap platform.Snapshot, units int) SnapshotView {
	return SnapshotView{
		OS:     snap.OS,
		CPU:    NewCPUView(snap.CPU),
		Memory: NewMemoryView(snap.Memory),
		Disk:   NewDiskView(snap.Disk),
		Uptime: NewUptimeView(snap.Uptime, units),
	}
}

// JSON writes the snapshot as indented JSON.
func JSON(w io.Writer, snap platform.Snapshot, units int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSnapshotView(snap, units))
}
