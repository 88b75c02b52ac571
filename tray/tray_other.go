//go:build !windows

package tray

import "log/slog"

// Manager is a no-op outside Windows
type Manager struct{}

// NewManager creates a tray manager that never shows an icon
func NewManager(title, tooltip, status string, iconData []byte, onQuit func()) *Manager {
	return &Manager{}
}

// Start logs that no tray is available
func (m *Manager) Start() {
	slog.Debug("System tray not supported on this platform")
}

// Stop does nothing
func (m *Manager) Stop() {}
