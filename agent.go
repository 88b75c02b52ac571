package main

import (
	"context"
	"fmt"
	"log/slog"

	"markestedt/gpwhelper/credential"
	"markestedt/gpwhelper/platform"
	"markestedt/gpwhelper/storage"
)

// hotkeyID identifies the single hotkey registration in WM_HOTKEY messages
const hotkeyID = 0

// ActivationRecorder stores the outcome of each hotkey press
type ActivationRecorder interface {
	SaveActivation(a *storage.Activation) error
}

// Platform bundles the OS primitives the agent drives
type Platform struct {
	Hotkey    platform.Hotkey
	Queue     platform.MessageQueue
	Prompt    platform.Prompt
	Clipboard platform.Clipboard
	Notifier  platform.Notifier
}

// Agent owns the hotkey registration and the message loop
type Agent struct {
	table     *credential.Table
	combo     platform.KeyCombo
	hotkey    platform.Hotkey
	queue     platform.MessageQueue
	prompt    platform.Prompt
	clipboard platform.Clipboard
	history   ActivationRecorder
}

// NewAgent creates a new agent instance. history may be nil.
func NewAgent(table *credential.Table, combo platform.KeyCombo, p Platform, history ActivationRecorder) *Agent {
	return &Agent{
		table:     table,
		combo:     combo,
		hotkey:    p.Hotkey,
		queue:     p.Queue,
		prompt:    p.Prompt,
		clipboard: p.Clipboard,
		history:   history,
	}
}

// Run registers the hotkey and processes messages until the queue reports quit.
// The hotkey is unregistered on every way out, including panics.
// Cancelling ctx asks the queue to quit.
func (a *Agent) Run(ctx context.Context) error {
	handle, err := platform.RegisterHotkey(a.hotkey, hotkeyID, a.combo)
	if err != nil {
		return err
	}
	defer func() {
		if err := handle.Release(); err != nil {
			slog.Warn("Failed to unregister hotkey", "error", err)
			return
		}
		slog.Debug("Hotkey unregistered", "hotkey", a.combo.String())
	}()

	stop := context.AfterFunc(ctx, a.queue.Quit)
	defer stop()

	slog.Info("Listening for hotkey", "hotkey", a.combo.String(), "credentials", a.table.Len())

	for {
		m, ok, err := a.queue.Next()
		if err != nil {
			return fmt.Errorf("failed to read message queue: %w", err)
		}
		if !ok {
			slog.Info("Quit requested, stopping")
			return nil
		}

		if m.Kind == platform.MessageHotkey && m.HotkeyID == handle.ID() {
			a.handleActivation()
			continue
		}
		a.queue.Dispatch(m)
	}
}

// handleActivation runs one prompt and, on a selection, one clipboard handoff
func (a *Agent) handleActivation() {
	index, ok, err := a.prompt.Select(appName, a.table.Labels())
	if err != nil {
		slog.Error("Failed to show selection prompt", "error", err)
		a.record(storage.OutcomeFailed, err)
		return
	}
	if !ok {
		slog.Info("Selection cancelled, nothing copied")
		a.record(storage.OutcomeCancelled, nil)
		return
	}

	cred, ok := a.table.At(index)
	if !ok {
		err := fmt.Errorf("selection index %d out of range [0, %d)", index, a.table.Len())
		slog.Error("Prompt returned an invalid selection", "error", err)
		a.record(storage.OutcomeFailed, err)
		return
	}

	if err := copySecret(a.clipboard, cred.Password); err != nil {
		slog.Error("Failed to copy password to clipboard", "username", cred.Username, "error", err)
		a.record(storage.OutcomeFailed, err)
		return
	}

	slog.Info("Password copied to clipboard", "username", cred.Username)
	a.record(storage.OutcomeCopied, nil)
}

func (a *Agent) record(outcome storage.Outcome, cause error) {
	if a.history == nil {
		return
	}
	act := &storage.Activation{Outcome: outcome}
	if cause != nil {
		act.ErrorMessage = cause.Error()
	}
	if err := a.history.SaveActivation(act); err != nil {
		slog.Warn("Failed to record activation", "error", err)
	}
}
