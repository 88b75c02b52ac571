//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	getMessage        = user32.NewProc("GetMessageW")
	translateMessage  = user32.NewProc("TranslateMessage")
	dispatchMessage   = user32.NewProc("DispatchMessageW")
	postThreadMessage = user32.NewProc("PostThreadMessageW")
)

const (
	wmQuit   = 0x0012
	wmHotkey = 0x0312
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// getMsg wraps GetMessageW: ok is false on WM_QUIT
func getMsg(m *msg, hwnd uintptr) (ok bool, err error) {
	r, _, e := getMessage.Call(uintptr(unsafe.Pointer(m)), hwnd, 0, 0)
	switch int32(r) {
	case -1:
		return false, fmt.Errorf("GetMessage failed: %w", e)
	case 0:
		return false, nil
	}
	return true, nil
}

// WindowsMessageQueue implements MessageQueue over the calling thread's queue
type WindowsMessageQueue struct {
	threadID uint32
}

// NewMessageQueue binds a queue to the current OS thread. The caller must
// have locked its goroutine to that thread.
func NewMessageQueue() MessageQueue {
	return &WindowsMessageQueue{threadID: windows.GetCurrentThreadId()}
}

// Next blocks in GetMessage
func (q *WindowsMessageQueue) Next() (Message, bool, error) {
	m := new(msg)
	ok, err := getMsg(m, 0)
	if !ok {
		return Message{}, false, err
	}

	out := Message{Kind: MessageOther, native: m}
	if m.message == wmHotkey && m.hwnd == 0 {
		out.Kind = MessageHotkey
		out.HotkeyID = int(m.wParam)
	}
	return out, true, nil
}

// Dispatch runs TranslateMessage and DispatchMessage
func (q *WindowsMessageQueue) Dispatch(m Message) {
	nm, ok := m.native.(*msg)
	if !ok {
		return
	}
	translateMessage.Call(uintptr(unsafe.Pointer(nm)))
	dispatchMessage.Call(uintptr(unsafe.Pointer(nm)))
}

// Quit posts WM_QUIT to the queue's thread
func (q *WindowsMessageQueue) Quit() {
	postThreadMessage.Call(uintptr(q.threadID), wmQuit, 0, 0)
}
