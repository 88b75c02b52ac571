package platform

import (
	"errors"
	"strings"
)

// ErrUnsupported is returned by every primitive on platforms without a native implementation
var ErrUnsupported = errors.New("platform not supported")

// Windows MOD_* flags for RegisterHotKey
const (
	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000
)

// KeyCombo represents a keyboard key combination
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   int // Virtual key code
}

// Modifiers returns the combo's modifier set as a MOD_* bitmask
func (k KeyCombo) Modifiers() uint32 {
	var mods uint32
	if k.Ctrl {
		mods |= modControl
	}
	if k.Alt {
		mods |= modAlt
	}
	if k.Shift {
		mods |= modShift
	}
	if k.Win {
		mods |= modWin
	}
	return mods
}

// String renders the combo the way it is shown to the user, e.g. "Ctrl+Alt+Shift+P"
func (k KeyCombo) String() string {
	var parts []string
	if k.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if k.Alt {
		parts = append(parts, "Alt")
	}
	if k.Shift {
		parts = append(parts, "Shift")
	}
	if k.Win {
		parts = append(parts, "Win")
	}
	if name := KeyName(k.Key); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, "+")
}

// MessageKind classifies a message taken from the OS input queue
type MessageKind int

const (
	MessageOther MessageKind = iota
	MessageHotkey
)

// Message is one OS input message
type Message struct {
	Kind     MessageKind
	HotkeyID int

	native any
}

// Hotkey registers system-wide key combinations
type Hotkey interface {
	Register(id int, combo KeyCombo) error
	Unregister(id int) error
}

// MessageQueue is the OS input queue of the thread that registered the hotkey
type MessageQueue interface {
	// Next blocks until a message arrives. ok is false once the OS asks the loop to quit.
	Next() (m Message, ok bool, err error)
	// Dispatch hands a message to default OS processing.
	Dispatch(m Message)
	// Quit asks the queue to report quit. Safe to call from any goroutine.
	Quit()
}

// Prompt shows a modal selection list
type Prompt interface {
	// Select blocks until the user picks a label or dismisses the list.
	// ok is false on dismissal; when ok is true, 0 <= index < len(labels).
	Select(title string, labels []string) (index int, ok bool, err error)
}

// Clipboard provides exclusive clipboard access
type Clipboard interface {
	Open() (ClipboardSession, error)
}

// ClipboardSession is an open, emptied clipboard owned by this process.
// Close must be called exactly once; it is safe to call again.
type ClipboardSession interface {
	SetText(text string) error
	SetUnicodeText(text string) error
	Close() error
}

// Notifier shows a one-off informational message
type Notifier interface {
	Notify(title, text string) error
}
