package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHotkey struct {
	registerErr   error
	unregisterErr error
	registered    []int
	unregistered  []int
}

func (h *countingHotkey) Register(id int, combo KeyCombo) error {
	if h.registerErr != nil {
		return h.registerErr
	}
	h.registered = append(h.registered, id)
	return nil
}

func (h *countingHotkey) Unregister(id int) error {
	h.unregistered = append(h.unregistered, id)
	return h.unregisterErr
}

func TestKeyCombo_String(t *testing.T) {
	combo := KeyCombo{Ctrl: true, Alt: true, Shift: true, Key: 0x50}
	assert.Equal(t, "Ctrl+Alt+Shift+P", combo.String())

	assert.Equal(t, "Win+F5", KeyCombo{Win: true, Key: 0x74}.String())
	assert.Equal(t, "Ctrl+Space", KeyCombo{Ctrl: true, Key: 0x20}.String())
}

func TestKeyCombo_Modifiers(t *testing.T) {
	combo := KeyCombo{Ctrl: true, Alt: true, Shift: true, Key: 0x50}
	assert.Equal(t, uint32(modControl|modAlt|modShift), combo.Modifiers())
	assert.Equal(t, uint32(0), KeyCombo{Key: 0x50}.Modifiers())
}

func TestVKCode(t *testing.T) {
	code, err := VKCode("p")
	require.NoError(t, err)
	assert.Equal(t, 0x50, code)

	code, err = VKCode("F12")
	require.NoError(t, err)
	assert.Equal(t, 0x7B, code)

	_, err = VKCode("hyper")
	assert.Error(t, err)

	_, err = VKCode("")
	assert.Error(t, err)
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "P", KeyName(0x50))
	assert.Equal(t, "F10", KeyName(0x79))
	assert.Equal(t, "", KeyName(0xFF))
}

func TestANSIText_Windows1252(t *testing.T) {
	b, err := ANSIText("p2", 1252)
	require.NoError(t, err)
	assert.Equal(t, []byte("p2"), b)

	b, err = ANSIText("café", 1252)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)

	b, err = ANSIText("€", 1252)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)

	// Not representable in Windows-1252
	b, err = ANSIText("日", 1252)
	require.NoError(t, err)
	assert.Len(t, b, 1)
}

func TestANSIText_FollowsCodePage(t *testing.T) {
	b, err := ANSIText("Пароль1", 1251)
	require.NoError(t, err)
	assert.Equal(t, []byte("\xcf\xe0\xf0\xee\xeb\xfc1"), b)

	b, err = ANSIText("中", 936)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xD6, 0xD0}, b)

	b, err = ANSIText("Пароль1", CodePageUTF8)
	require.NoError(t, err)
	assert.Equal(t, []byte("Пароль1"), b)
}

func TestANSIText_UnknownCodePageUsesWindows1252(t *testing.T) {
	b, err := ANSIText("café", 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, b)
}

func TestRegisterHotkey_ReleaseOnce(t *testing.T) {
	hk := &countingHotkey{}
	combo := KeyCombo{Ctrl: true, Alt: true, Shift: true, Key: 0x50}

	h, err := RegisterHotkey(hk, 0, combo)
	require.NoError(t, err)
	assert.Equal(t, 0, h.ID())
	assert.Equal(t, combo, h.Combo())
	assert.Equal(t, []int{0}, hk.registered)

	require.NoError(t, h.Release())
	require.NoError(t, h.Release())
	assert.Equal(t, []int{0}, hk.unregistered)
}

func TestRegisterHotkey_Failure(t *testing.T) {
	hk := &countingHotkey{registerErr: errors.New("hotkey already registered")}

	h, err := RegisterHotkey(hk, 0, KeyCombo{Ctrl: true, Key: 0x50})
	require.Error(t, err)
	assert.Nil(t, h)
	assert.Contains(t, err.Error(), "Ctrl+P")
	assert.Empty(t, hk.unregistered)
}

func TestHotkeyHandle_ReleaseErrorIsSticky(t *testing.T) {
	hk := &countingHotkey{unregisterErr: errors.New("not registered")}

	h, err := RegisterHotkey(hk, 0, KeyCombo{Ctrl: true, Key: 0x50})
	require.NoError(t, err)

	err = h.Release()
	require.Error(t, err)
	assert.ErrorIs(t, err, hk.unregisterErr)
	assert.Equal(t, err, h.Release())
	assert.Len(t, hk.unregistered, 1)
}
