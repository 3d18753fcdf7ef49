// Package render prints snapshots for humans.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/CristiGvl/picoFetch/internal/platform"
)

const nameWidth = 3

// Line is one "name ~ value" row of fetch output.
type Line struct {
	Name  string
	Value string
}

// Lines lays out a snapshot. Absent readings produce no line.
func Lines(snap platform.Snapshot, units int) []Line {
	var lines []Line
	if snap.OS != nil {
		lines = append(lines, Line{Name: "os", Value: snap.OS.PrettyName})
	}
	if snap.CPU != nil {
		lines = append(lines, Line{
			Name: "cpu",
			Value: fmt.Sprintf("%s, %d, %s GHz",
				snap.CPU.Brand,
				snap.CPU.PhysicalCores,
				strconv.FormatFloat(snap.CPU.Frequency.GHz(), 'f', 1, 64),
			),
		})
	}
	if snap.Memory != nil {
		lines = append(lines, Line{Name: "mem", Value: snap.Memory.String()})
	}
	if snap.Disk != nil {
		lines = append(lines, Line{Name: "fs", Value: snap.Disk.String()})
	}
	if snap.Uptime != nil {
		if value := snap.Uptime.Format(units); value != "" {
			lines = append(lines, Line{Name: "tm", Value: value})
		}
	}
	return lines
}

// Profile picks the color profile for w. Color off always means plain text.
func Profile(w io.Writer, color bool) termenv.Profile {
	if !color {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// Printer writes styled output.
type Printer struct {
	w       io.Writer
	name    lipgloss.Style
	value   lipgloss.Style
	heading lipgloss.Style
	flag    lipgloss.Style
	bad     lipgloss.Style
}

// NewPrinter creates a Printer for w using profile.
func NewPrinter(w io.Writer, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	return &Printer{
		w:       w,
		name:    r.NewStyle().Foreground(lipgloss.Color("2")),
		value:   r.NewStyle().Foreground(lipgloss.Color("7")),
		heading: r.NewStyle().Foreground(lipgloss.Color("3")),
		flag:    r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		bad:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Fetch writes one line per entry, names padded to a common width.
func (p *Printer) Fetch(lines []Line) error {
	width := nameWidth
	for _, line := range lines {
		width = max(width, len(line.Name))
	}
	for _, line := range lines {
		pad := strings.Repeat(" ", width-len(line.Name))
		if _, err := fmt.Fprintf(p.w, "  %s%s ~ %s\n", p.name.Render(line.Name), pad, p.value.Render(line.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Help writes the usage banner followed by the flag table.
func (p *Printer) Help(program, flagUsages string) error {
	_, err := fmt.Fprintf(p.w, "\n%s:\n    %s\n\n%s:\n%s\n",
		p.heading.Render("USAGE"),
		p.flag.Render(program+" [OPTIONS]"),
		p.heading.Render("OPTIONS"),
		flagUsages,
	)
	return err
}

// ParseError reports arguments that could not be understood.
func (p *Printer) ParseError(args []string) error {
	_, err := fmt.Fprintf(p.w, "Failed to parse args: %s\n", p.bad.Render(strings.Join(args, " ")))
	return err
}
