//go:build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	openClipboard    = user32.NewProc("OpenClipboard")
	closeClipboard   = user32.NewProc("CloseClipboard")
	emptyClipboard   = user32.NewProc("EmptyClipboard")
	setClipboardData = user32.NewProc("SetClipboardData")
	globalAlloc      = kernel32.NewProc("GlobalAlloc")
	globalFree       = kernel32.NewProc("GlobalFree")
	globalLock       = kernel32.NewProc("GlobalLock")
	globalUnlock     = kernel32.NewProc("GlobalUnlock")
	getACP           = kernel32.NewProc("GetACP")
)

const (
	cfText        = 1
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

// WindowsClipboard implements the Clipboard interface for Windows
type WindowsClipboard struct {
	retries    int
	retryDelay time.Duration
	codePage   uint32
}

// NewClipboard creates a Windows clipboard that retries OpenClipboard while another process holds it
func NewClipboard(retries int, retryDelay time.Duration) Clipboard {
	if retries < 1 {
		retries = 1
	}
	acp, _, _ := getACP.Call()
	return &WindowsClipboard{retries: retries, retryDelay: retryDelay, codePage: uint32(acp)}
}

// Open takes ownership of the clipboard and empties it
func (c *WindowsClipboard) Open() (ClipboardSession, error) {
	var err error
	opened := false
	for i := 0; i < c.retries; i++ {
		var r uintptr
		r, _, err = openClipboard.Call(0)
		if r != 0 {
			opened = true
			break
		}
		time.Sleep(c.retryDelay)
	}
	if !opened {
		return nil, fmt.Errorf("failed to open clipboard after %d attempts: %w", c.retries, err)
	}

	if r, _, err := emptyClipboard.Call(); r == 0 {
		closeClipboard.Call()
		return nil, fmt.Errorf("EmptyClipboard failed: %w", err)
	}

	return &windowsClipboardSession{codePage: c.codePage}, nil
}

type windowsClipboardSession struct {
	codePage uint32
	closed   bool
}

// SetText stores text as CF_TEXT in the system ANSI code page
func (s *windowsClipboardSession) SetText(text string) error {
	b, err := ANSIText(text, s.codePage)
	if err != nil {
		return fmt.Errorf("ANSI conversion failed: %w", err)
	}
	b = append(b, 0)
	return s.set(cfText, unsafe.Pointer(&b[0]), len(b))
}

// SetUnicodeText stores text as CF_UNICODETEXT
func (s *windowsClipboardSession) SetUnicodeText(text string) error {
	utf16, err := windows.UTF16FromString(text)
	if err != nil {
		return fmt.Errorf("UTF16 conversion failed: %w", err)
	}
	return s.set(cfUnicodeText, unsafe.Pointer(&utf16[0]), len(utf16)*2)
}

func (s *windowsClipboardSession) set(format uintptr, src unsafe.Pointer, n int) error {
	if s.closed {
		return fmt.Errorf("clipboard session already closed")
	}

	h, _, err := globalAlloc.Call(gmemMoveable, uintptr(n))
	if h == 0 {
		return fmt.Errorf("GlobalAlloc failed: %w", err)
	}

	l, _, err := globalLock.Call(h)
	if l == 0 {
		globalFree.Call(h)
		return fmt.Errorf("GlobalLock failed: %w", err)
	}

	dest := unsafe.Slice((*byte)(unsafe.Pointer(l)), n)
	copy(dest, unsafe.Slice((*byte)(src), n))

	globalUnlock.Call(h)

	// On success the system owns h
	r, _, err := setClipboardData.Call(format, h)
	if r == 0 {
		globalFree.Call(h)
		return fmt.Errorf("SetClipboardData failed: %w", err)
	}

	return nil
}

// Close releases the clipboard
func (s *windowsClipboardSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if r, _, err := closeClipboard.Call(); r == 0 {
		return fmt.Errorf("CloseClipboard failed: %w", err)
	}
	return nil
}
