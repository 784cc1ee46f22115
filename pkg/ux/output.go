// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides rich terminal output styling for the countdown CLI.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Aleutian color palette - deep ocean teals and arctic waters
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // Bright teal - highlights, success
	ColorTealPrimary = lipgloss.Color("#20B9B4") // Primary teal - main brand color
	ColorTealDeep    = lipgloss.Color("#16858E") // Deep teal - borders, accents
	ColorSlate       = lipgloss.Color("#2C4A54") // Slate - muted text, borders

	// Semantic colors (keeping standard conventions for clarity)
	ColorSuccess = lipgloss.Color("#2CD7C7") // Bright teal for success
	ColorWarning = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors
	ColorNumber  = lipgloss.Color("#F4D03F") // Amber for puzzle numbers
	ColorTarget  = lipgloss.Color("#E74C3C") // Red for the target
)

// interactive is true when stdout is a terminal; styling is suppressed
// otherwise so piped output stays clean.
var interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Number    lipgloss.Style
	Target    lipgloss.Style
	Box       lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorTealBright),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorTealPrimary),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSlate),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorTealBright).Bold(true),
	Number:    lipgloss.NewStyle().Foreground(ColorNumber),
	Target:    lipgloss.NewStyle().Bold(true).Foreground(ColorTarget),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTealDeep).
		Padding(0, 1),
}

// render applies a style only on interactive terminals.
func render(style lipgloss.Style, text string) string {
	if !interactive {
		return text
	}
	return style.Render(text)
}

// Title prints a styled title line.
func Title(text string) {
	fmt.Println(render(Styles.Title, text))
}

// Success prints a success line with a check mark.
func Success(text string) {
	fmt.Println(render(Styles.Success, "✓ "+text))
}

// Warning prints a warning line.
func Warning(text string) {
	fmt.Println(render(Styles.Warning, "⚠ "+text))
}

// Error prints an error line to stderr.
func Error(text string) {
	fmt.Fprintln(os.Stderr, render(Styles.Error, "✗ "+text))
}

// Muted prints a muted/secondary line.
func Muted(text string) {
	fmt.Println(render(Styles.Muted, text))
}

// Highlight returns text styled for emphasis inline.
func Highlight(text string) string {
	return render(Styles.Highlight, text)
}

// Number returns a puzzle number styled inline.
func Number(text string) string {
	return render(Styles.Number, text)
}

// Target returns the target number styled inline.
func Target(text string) string {
	return render(Styles.Target, text)
}
