package main

import (
	"errors"
	"fmt"
	"sync"

	"markestedt/gpwhelper/config"
	"markestedt/gpwhelper/platform"
	"markestedt/gpwhelper/storage"
)

// trace records the order in which fakes are called
type trace struct {
	events []string
}

func (t *trace) add(format string, args ...any) {
	if t != nil {
		t.events = append(t.events, fmt.Sprintf(format, args...))
	}
}

type fakeHotkey struct {
	registerErr  error
	registered   int
	unregistered int
}

func (h *fakeHotkey) Register(id int, combo platform.KeyCombo) error {
	if h.registerErr != nil {
		return h.registerErr
	}
	h.registered++
	return nil
}

func (h *fakeHotkey) Unregister(id int) error {
	h.unregistered++
	return nil
}

// fakeQueue hands out queued messages. When they run out it reports quit,
// or blocks until Quit when waitForQuit is set.
type fakeQueue struct {
	trace       *trace
	messages    []platform.Message
	waitForQuit bool
	nextErr     error

	nexts      int
	dispatched []platform.Message

	quitOnce sync.Once
	quit     chan struct{}
}

func newFakeQueue(tr *trace, messages ...platform.Message) *fakeQueue {
	return &fakeQueue{trace: tr, messages: messages, quit: make(chan struct{})}
}

func (q *fakeQueue) Next() (platform.Message, bool, error) {
	q.nexts++
	q.trace.add("next")
	if q.nextErr != nil {
		return platform.Message{}, false, q.nextErr
	}
	if len(q.messages) > 0 {
		m := q.messages[0]
		q.messages = q.messages[1:]
		return m, true, nil
	}
	if q.waitForQuit {
		<-q.quit
	}
	return platform.Message{}, false, nil
}

func (q *fakeQueue) Dispatch(m platform.Message) {
	q.dispatched = append(q.dispatched, m)
}

func (q *fakeQueue) Quit() {
	q.quitOnce.Do(func() { close(q.quit) })
}

func hotkeyMessage(id int) platform.Message {
	return platform.Message{Kind: platform.MessageHotkey, HotkeyID: id}
}

type promptResponse struct {
	index int
	ok    bool
	err   error
	panic bool
}

type fakePrompt struct {
	trace     *trace
	responses []promptResponse
	calls     [][]string
}

func (p *fakePrompt) Select(title string, labels []string) (int, bool, error) {
	p.calls = append(p.calls, labels)
	n := len(p.calls)
	p.trace.add("prompt %d start", n)
	defer p.trace.add("prompt %d end", n)

	if len(p.responses) == 0 {
		return 0, false, nil
	}
	r := p.responses[0]
	p.responses = p.responses[1:]
	if r.panic {
		panic("prompt crashed")
	}
	return r.index, r.ok, r.err
}

// fakeClipboard keeps the last value written in each format
type fakeClipboard struct {
	trace    *trace
	openErr  error
	setErr   error
	closeErr error

	text    string
	unicode string
	opens   int
	closes  int
	isOpen  bool
}

func (c *fakeClipboard) Open() (platform.ClipboardSession, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	if c.isOpen {
		return nil, errors.New("clipboard already open")
	}
	c.opens++
	c.isOpen = true
	c.trace.add("clipboard open")
	return &fakeSession{cb: c}, nil
}

type fakeSession struct {
	cb     *fakeClipboard
	closed bool
}

func (s *fakeSession) SetText(text string) error {
	if s.cb.setErr != nil {
		return s.cb.setErr
	}
	s.cb.text = text
	return nil
}

func (s *fakeSession) SetUnicodeText(text string) error {
	s.cb.unicode = text
	return nil
}

func (s *fakeSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.cb.closes++
	s.cb.isOpen = false
	s.cb.trace.add("clipboard close")
	return s.cb.closeErr
}

type fakeNotifier struct {
	title string
	text  string
	err   error
}

func (n *fakeNotifier) Notify(title, text string) error {
	n.title = title
	n.text = text
	return n.err
}

type fakeRecorder struct {
	outcomes []storage.Outcome
	messages []string
}

func (r *fakeRecorder) SaveActivation(a *storage.Activation) error {
	r.outcomes = append(r.outcomes, a.Outcome)
	r.messages = append(r.messages, a.ErrorMessage)
	return nil
}

type fakePlatform struct {
	hotkey    *fakeHotkey
	queue     *fakeQueue
	prompt    *fakePrompt
	clipboard *fakeClipboard
	notifier  *fakeNotifier
}

func newFakePlatform(tr *trace) *fakePlatform {
	return &fakePlatform{
		hotkey:    &fakeHotkey{},
		queue:     newFakeQueue(tr),
		prompt:    &fakePrompt{trace: tr},
		clipboard: &fakeClipboard{trace: tr},
		notifier:  &fakeNotifier{},
	}
}

func (f *fakePlatform) Platform() Platform {
	return Platform{
		Hotkey:    f.hotkey,
		Queue:     f.queue,
		Prompt:    f.prompt,
		Clipboard: f.clipboard,
		Notifier:  f.notifier,
	}
}

func (f *fakePlatform) factory(*config.Settings) Platform {
	return f.Platform()
}
