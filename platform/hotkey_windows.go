//go:build windows

package platform

import (
	"fmt"
)

var (
	registerHotKey   = user32.NewProc("RegisterHotKey")
	unregisterHotKey = user32.NewProc("UnregisterHotKey")
)

// WindowsHotkey implements the Hotkey interface for Windows.
// Registrations are bound to the calling thread's message queue, so callers
// must stay on one locked OS thread.
type WindowsHotkey struct{}

// NewHotkey creates a new Windows hotkey registrar
func NewHotkey() Hotkey {
	return &WindowsHotkey{}
}

// Register claims combo system-wide. Fails if another process already holds it.
func (h *WindowsHotkey) Register(id int, combo KeyCombo) error {
	r, _, err := registerHotKey.Call(
		0,
		uintptr(id),
		uintptr(combo.Modifiers()|modNoRepeat),
		uintptr(combo.Key),
	)
	if r == 0 {
		return fmt.Errorf("RegisterHotKey failed: %w", err)
	}
	return nil
}

// Unregister releases the registration made under id
func (h *WindowsHotkey) Unregister(id int) error {
	r, _, err := unregisterHotKey.Call(0, uintptr(id))
	if r == 0 {
		return fmt.Errorf("UnregisterHotKey failed: %w", err)
	}
	return nil
}
