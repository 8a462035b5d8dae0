package style

import (
	"github.com/pterm/pterm"
)

// Status classifies a line of status output.
type Status string

const (
	StatusRunning Status = "running" // An instance is active
	StatusStopped Status = "stopped" // No instance active
	StatusOK      Status = "ok"      // Alias/logs are in the expected state
	StatusMissing Status = "missing" // Alias or image absent
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusRunning:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusStopped:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusOK:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusMissing:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderStatus renders a status label, degrading to plain text when stdout
// is not a terminal.
func RenderStatus(status Status) string {
	if !IsTerminal() {
		return string(status)
	}
	return StatusStyle(status).Sprint(string(status))
}
