//go:build windows

package tray

import (
	"log/slog"
	"runtime"

	"github.com/getlantern/systray"
)

// Manager manages the system tray icon and menu
type Manager struct {
	title    string
	tooltip  string
	status   string
	iconData []byte

	onQuit quitHook
}

// NewManager creates a tray manager. onQuit runs once when the user picks Quit
// or the tray exits for any reason other than Stop.
func NewManager(title, tooltip, status string, iconData []byte, onQuit func()) *Manager {
	return &Manager{
		title:    title,
		tooltip:  tooltip,
		status:   status,
		iconData: iconData,
		onQuit:   quitHook{fn: onQuit},
	}
}

// Start runs the tray on its own locked OS thread
func (m *Manager) Start() {
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		systray.Run(m.onReady, m.onExit)
	}()
}

// Stop removes the tray icon without calling onQuit
func (m *Manager) Stop() {
	m.onQuit.disarm()
	systray.Quit()
}

// onReady is called when the systray is ready
func (m *Manager) onReady() {
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}

	systray.SetTitle(m.title)
	systray.SetTooltip(m.tooltip)

	mStatus := systray.AddMenuItem(m.status, m.tooltip)
	mStatus.Disable()
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Unregister the hot key and exit")

	go func() {
		<-mQuit.ClickedCh
		slog.Info("User requested quit from system tray")
		m.onQuit.fire()
		systray.Quit()
	}()
}

// onExit is called when the systray is exiting
func (m *Manager) onExit() {
	slog.Debug("System tray exited")
	m.onQuit.fire()
}
