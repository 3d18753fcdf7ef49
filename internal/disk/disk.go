package disk

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrAcquisition is wrapped by every error a Reader returns.
var ErrAcquisition = errors.New("disk info acquisition failed")

// Info represents usage of the filesystem holding a mountpoint
type Info struct {
	Mountpoint string `json:"mountpoint"`
	Filesystem string `json:"filesystem,omitempty"`
	Total      uint64 `json:"total_bytes"`
	Used       uint64 `json:"used_bytes"`
	Free       uint64 `json:"free_bytes"`
}

// Reader interface for disk information
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// UsedPercent returns Used as a percentage of Used + Free. Reserved blocks
// are left out, as df does.
func (i Info) UsedPercent() float64 {
	if i.Used+i.Free == 0 {
		return 0
	}
	return float64(i.Used) / float64(i.Used+i.Free) * 100
}

// String renders "used / total (percent%)" with binary units.
func (i Info) String() string {
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.IBytes(i.Used), humanize.IBytes(i.Total), i.UsedPercent())
}
