//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var messageBox = user32.NewProc("MessageBoxW")

const (
	mbOK              = 0x00000000
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
	mbTopmost         = 0x00040000
)

// WindowsNotifier implements the Notifier interface with a message box
type WindowsNotifier struct{}

// NewNotifier creates a new Windows notifier
func NewNotifier() Notifier {
	return &WindowsNotifier{}
}

// Notify shows a modal OK box and blocks until it is dismissed
func (n *WindowsNotifier) Notify(title, text string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}
	b, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return fmt.Errorf("invalid text: %w", err)
	}

	r, _, err := messageBox.Call(
		0,
		uintptr(unsafe.Pointer(b)),
		uintptr(unsafe.Pointer(t)),
		mbOK|mbIconInformation|mbSetForeground|mbTopmost,
	)
	if r == 0 {
		return fmt.Errorf("MessageBox failed: %w", err)
	}
	return nil
}
