package cpu

import (
	"context"
	"errors"
	"strings"
)

// ErrAcquisition is wrapped by every error a Reader returns.
var ErrAcquisition = errors.New("cpu info acquisition failed")

// Frequency is a clock frequency in KHz.
type Frequency uint64

// KHz returns the raw frequency.
func (f Frequency) KHz() uint64 {
	return uint64(f)
}

// MHz returns the frequency in MHz rounded half-up to one decimal.
func (f Frequency) MHz() float64 {
	return float64((uint64(f)+50)/100) / 10
}

// GHz returns the frequency in GHz rounded half-up to one decimal.
func (f Frequency) GHz() float64 {
	return float64((uint64(f)+50_000)/100_000) / 10
}

// Info represents CPU information
type Info struct {
	Brand         string    `json:"brand"`
	PhysicalCores int       `json:"physical_cores"`
	LogicalCores  int       `json:"logical_cores"`
	Frequency     Frequency `json:"frequency_khz"`
}

// Reader interface for CPU information
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// TrimBrand cuts integrated-graphics suffixes such as
// "AMD Ryzen 7 5700U with Radeon Graphics" down to the CPU model.
func TrimBrand(brand string) string {
	if i := strings.Index(brand, " with"); i >= 0 {
		brand = brand[:i]
	}
	return strings.TrimSpace(brand)
}
