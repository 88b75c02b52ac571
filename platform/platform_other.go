//go:build !windows

package platform

import "time"

type unsupported struct{}

// NewHotkey returns a Hotkey whose Register always fails with ErrUnsupported
func NewHotkey() Hotkey { return unsupported{} }

// NewMessageQueue returns a MessageQueue whose Next always fails with ErrUnsupported
func NewMessageQueue() MessageQueue { return unsupported{} }

// NewPrompt returns a Prompt whose Select always fails with ErrUnsupported
func NewPrompt() Prompt { return unsupported{} }

// NewClipboard returns a Clipboard whose Open always fails with ErrUnsupported
func NewClipboard(retries int, retryDelay time.Duration) Clipboard { return unsupported{} }

// NewNotifier returns a Notifier whose Notify always fails with ErrUnsupported
func NewNotifier() Notifier { return unsupported{} }

func (unsupported) Register(int, KeyCombo) error               { return ErrUnsupported }
func (unsupported) Unregister(int) error                       { return ErrUnsupported }
func (unsupported) Next() (Message, bool, error)               { return Message{}, false, ErrUnsupported }
func (unsupported) Dispatch(Message)                           {}
func (unsupported) Quit()                                      {}
func (unsupported) Select(string, []string) (int, bool, error) { return 0, false, ErrUnsupported }
func (unsupported) Open() (ClipboardSession, error)            { return nil, ErrUnsupported }
func (unsupported) Notify(string, string) error                { return ErrUnsupported }
