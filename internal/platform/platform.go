package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
	Darwin  SupportedOS = "darwin"
	FreeBSD SupportedOS = "freebsd"
)

var supported = []SupportedOS{Linux, Windows, Darwin, FreeBSD}

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	return isSupported(GetOS())
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	return validate(GetOS())
}

func isSupported(os SupportedOS) bool {
	for _, s := range supported {
		if s == os {
			return true
		}
	}
	return false
}

func validate(os SupportedOS) error {
	if isSupported(os) {
		return nil
	}
	names := make([]string, len(supported))
	for i, s := range supported {
		names[i] = string(s)
	}
	return fmt.Errorf("unsupported operating system: %s. Supported: %s", os, strings.Join(names, ", "))
}
