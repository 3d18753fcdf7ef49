//go:build windows

package osrelease

import (
	"context"
	"fmt"
	"strings"

	"github.com/StackExchange/wmi"
)

// Win32_OperatingSystem represents WMI operating system data
type Win32_OperatingSystem struct {
	Caption     string
	Version     string
	BuildNumber string
}

// WMIReader implements release information for Windows
type WMIReader struct{}

// NewWMIReader creates a new Windows release reader
func NewWMIReader() *WMIReader {
	return &WMIReader{}
}

// GetInfo returns release information
func (r *WMIReader) GetInfo(ctx context.Context) (*Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	var systems []Win32_OperatingSystem
	err := wmi.Query("SELECT Caption, Version, BuildNumber FROM Win32_OperatingSystem", &systems)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquisition, err)
	}

	if len(systems) == 0 {
		return nil, fmt.Errorf("%w: no operating system reported", ErrAcquisition)
	}

	return fromWin32(systems[0])
}

func fromWin32(os Win32_OperatingSystem) (*Release, error) {
	caption := strings.TrimSpace(os.Caption)
	if caption == "" {
		return nil, fmt.Errorf("%w: empty caption", ErrAcquisition)
	}

	return &Release{
		Name:            caption,
		PrettyName:      caption,
		ID:              "windows",
		Version:         optional(os.Version),
		VersionID:       optional(os.Version),
		VersionCodename: optional(os.BuildNumber),
	}, nil
}
