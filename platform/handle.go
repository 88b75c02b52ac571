package platform

import (
	"fmt"
	"sync"
)

// HotkeyHandle is a successful hotkey registration. Release unregisters it
// exactly once no matter how many times it is called.
type HotkeyHandle struct {
	hotkey Hotkey
	id     int
	combo  KeyCombo

	once sync.Once
	err  error
}

// RegisterHotkey claims combo under id. A nil handle is returned on failure
// and nothing needs releasing.
func RegisterHotkey(hk Hotkey, id int, combo KeyCombo) (*HotkeyHandle, error) {
	if err := hk.Register(id, combo); err != nil {
		return nil, fmt.Errorf("failed to register hotkey %s: %w", combo, err)
	}
	return &HotkeyHandle{hotkey: hk, id: id, combo: combo}, nil
}

// ID returns the registration id carried by hotkey messages
func (h *HotkeyHandle) ID() int {
	return h.id
}

// Combo returns the registered key combination
func (h *HotkeyHandle) Combo() KeyCombo {
	return h.combo
}

// Release unregisters the hotkey. Only the first call reaches the OS.
func (h *HotkeyHandle) Release() error {
	h.once.Do(func() {
		if err := h.hotkey.Unregister(h.id); err != nil {
			h.err = fmt.Errorf("failed to unregister hotkey %s: %w", h.combo, err)
		}
	})
	return h.err
}
