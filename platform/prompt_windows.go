//go:build windows

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	gdi32 = windows.NewLazySystemDLL("gdi32.dll")

	registerClassEx  = user32.NewProc("RegisterClassExW")
	createWindowEx   = user32.NewProc("CreateWindowExW")
	destroyWindow    = user32.NewProc("DestroyWindow")
	defWindowProc    = user32.NewProc("DefWindowProcW")
	showWindow       = user32.NewProc("ShowWindow")
	setForeground    = user32.NewProc("SetForegroundWindow")
	setFocus         = user32.NewProc("SetFocus")
	sendMessage      = user32.NewProc("SendMessageW")
	isDialogMessage  = user32.NewProc("IsDialogMessageW")
	postQuitMessage  = user32.NewProc("PostQuitMessage")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
	loadCursor       = user32.NewProc("LoadCursorW")
	getModuleHandle  = kernel32.NewProc("GetModuleHandleW")
	getStockObject   = gdi32.NewProc("GetStockObject")
)

const (
	wsCaption         = 0x00C00000
	wsSysMenu         = 0x00080000
	wsPopup           = 0x80000000
	wsChild           = 0x40000000
	wsVisible         = 0x10000000
	wsVScroll         = 0x00200000
	wsTabStop         = 0x00010000
	wsExTopmost       = 0x00000008
	wsExDlgModalFrame = 0x00000001
	wsExClientEdge    = 0x00000200

	lbsNotify           = 0x0001
	lbsNoIntegralHeight = 0x0100
	bsPushButton        = 0x0000
	bsDefPushButton     = 0x0001
	lbAddString         = 0x0180
	lbSetCurSel         = 0x0186
	lbGetCurSel         = 0x0188
	lbnDblClk           = 2
	wmClose             = 0x0010
	wmSetFont           = 0x0030
	wmCommand           = 0x0111
	idOK                = 1
	idCancel            = 2
	listID              = 100
	swShow              = 5
	smCXScreen          = 0
	smCYScreen          = 1
	idcArrow            = 32512
	colorBtnFace        = 15
	defaultGUIFont      = 17
	promptWidth         = 380
	promptHeight        = 340
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   uintptr
	icon       uintptr
	cursor     uintptr
	background uintptr
	menuName   *uint16
	className  *uint16
	iconSm     uintptr
}

var (
	promptClass     = windows.StringToUTF16Ptr("GlobalPasswordHelperSelect")
	promptClassOnce sync.Once
	promptClassErr  error

	// Only one prompt can be open at a time since Select runs on the loop's thread
	activeSelect *selectState
)

type selectState struct {
	hwnd  uintptr
	list  uintptr
	count int
	index int
	ok    bool
	done  bool
}

func (s *selectState) commit() {
	sel, _, _ := sendMessage.Call(s.list, lbGetCurSel, 0, 0)
	idx := int(int32(sel))
	if idx < 0 || idx >= s.count {
		return
	}
	s.index = idx
	s.ok = true
	s.done = true
}

func (s *selectState) cancel() {
	s.ok = false
	s.done = true
}

func selectWndProc(hwnd, umsg, wParam, lParam uintptr) uintptr {
	if s := activeSelect; s != nil && hwnd == s.hwnd {
		switch umsg {
		case wmCommand:
			id := wParam & 0xFFFF
			code := (wParam >> 16) & 0xFFFF
			switch {
			case id == idOK, id == listID && code == lbnDblClk:
				s.commit()
				return 0
			case id == idCancel:
				s.cancel()
				return 0
			}
		case wmClose:
			s.cancel()
			return 0
		}
	}
	r, _, _ := defWindowProc.Call(hwnd, umsg, wParam, lParam)
	return r
}

func registerPromptClass() error {
	promptClassOnce.Do(func() {
		instance, _, _ := getModuleHandle.Call(0)
		cursor, _, _ := loadCursor.Call(0, idcArrow)
		wc := wndClassEx{
			wndProc:    windows.NewCallback(selectWndProc),
			instance:   instance,
			cursor:     cursor,
			background: colorBtnFace + 1,
			className:  promptClass,
		}
		wc.size = uint32(unsafe.Sizeof(wc))
		if r, _, err := registerClassEx.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
			promptClassErr = fmt.Errorf("RegisterClassEx failed: %w", err)
		}
	})
	return promptClassErr
}

// WindowsPrompt implements the Prompt interface with a top-most list window
type WindowsPrompt struct{}

// NewPrompt creates a new Windows selection prompt
func NewPrompt() Prompt {
	return &WindowsPrompt{}
}

// Select shows labels and pumps the thread's queue until the user commits or cancels.
// Hotkey messages that arrive meanwhile are re-posted once the window is gone.
func (p *WindowsPrompt) Select(title string, labels []string) (int, bool, error) {
	if activeSelect != nil {
		return 0, false, fmt.Errorf("selection prompt already open")
	}
	if err := registerPromptClass(); err != nil {
		return 0, false, err
	}

	s := &selectState{count: len(labels)}
	if err := s.create(title, labels); err != nil {
		return 0, false, err
	}
	activeSelect = s

	var held []msg
	defer func() {
		activeSelect = nil
		destroyWindow.Call(s.hwnd)
		tid := windows.GetCurrentThreadId()
		for _, m := range held {
			postThreadMessage.Call(uintptr(tid), uintptr(m.message), m.wParam, m.lParam)
		}
	}()

	for !s.done {
		var m msg
		ok, err := getMsg(&m, 0)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			// Leave WM_QUIT for the outer loop
			postQuitMessage.Call(m.wParam)
			s.cancel()
			break
		}
		if m.message == wmHotkey && m.hwnd == 0 {
			held = append(held, m)
			continue
		}
		if r, _, _ := isDialogMessage.Call(s.hwnd, uintptr(unsafe.Pointer(&m))); r != 0 {
			continue
		}
		translateMessage.Call(uintptr(unsafe.Pointer(&m)))
		dispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}

	return s.index, s.ok, nil
}

func (s *selectState) create(title string, labels []string) error {
	instance, _, _ := getModuleHandle.Call(0)
	font, _, _ := getStockObject.Call(defaultGUIFont)
	sw, _, _ := getSystemMetrics.Call(smCXScreen)
	sh, _, _ := getSystemMetrics.Call(smCYScreen)

	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("invalid prompt title: %w", err)
	}

	hwnd, _, err := createWindowEx.Call(
		wsExTopmost|wsExDlgModalFrame,
		uintptr(unsafe.Pointer(promptClass)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsPopup|wsCaption|wsSysMenu,
		(sw-promptWidth)/2, (sh-promptHeight)/2, promptWidth, promptHeight,
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		return fmt.Errorf("CreateWindowEx failed: %w", err)
	}
	s.hwnd = hwnd

	child := func(exStyle uintptr, class, text string, style, x, y, w, h, id uintptr) (uintptr, error) {
		c, _, err := createWindowEx.Call(
			exStyle,
			uintptr(unsafe.Pointer(windows.StringToUTF16Ptr(class))),
			uintptr(unsafe.Pointer(windows.StringToUTF16Ptr(text))),
			wsChild|wsVisible|wsTabStop|style,
			x, y, w, h,
			hwnd, id, instance, 0,
		)
		if c == 0 {
			return 0, fmt.Errorf("CreateWindowEx(%s) failed: %w", class, err)
		}
		sendMessage.Call(c, wmSetFont, font, 1)
		return c, nil
	}

	list, err := child(wsExClientEdge, "LISTBOX", "", wsVScroll|lbsNotify|lbsNoIntegralHeight, 10, 10, 344, 240, listID)
	if err != nil {
		destroyWindow.Call(hwnd)
		return err
	}
	s.list = list
	if _, err := child(0, "BUTTON", "OK", bsDefPushButton, 184, 258, 80, 26, idOK); err != nil {
		destroyWindow.Call(hwnd)
		return err
	}
	if _, err := child(0, "BUTTON", "Cancel", bsPushButton, 274, 258, 80, 26, idCancel); err != nil {
		destroyWindow.Call(hwnd)
		return err
	}

	for _, label := range labels {
		p, err := windows.UTF16PtrFromString(label)
		if err != nil {
			destroyWindow.Call(hwnd)
			return fmt.Errorf("invalid label %q: %w", label, err)
		}
		sendMessage.Call(list, lbAddString, 0, uintptr(unsafe.Pointer(p)))
	}
	if len(labels) > 0 {
		sendMessage.Call(list, lbSetCurSel, 0, 0)
	}

	showWindow.Call(hwnd, swShow)
	setForeground.Call(hwnd)
	setFocus.Call(list)
	return nil
}
