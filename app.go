package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"markestedt/gpwhelper/config"
	"markestedt/gpwhelper/credential"
	"markestedt/gpwhelper/platform"
	"markestedt/gpwhelper/storage"
	"markestedt/gpwhelper/tray"
)

// The hot key is fixed; it is not a setting.
const hotkeySpec = "ctrl+alt+shift+p"

// recentActivationCount is how many past activations are logged at startup
const recentActivationCount = 5

//go:embed assets/icon.ico
var trayIcon []byte

// hotkeyCombo converts hotkeySpec into a registrable combination
func hotkeyCombo() (platform.KeyCombo, error) {
	kc, err := config.ParseHotkey(hotkeySpec)
	if err != nil {
		return platform.KeyCombo{}, fmt.Errorf("failed to parse hotkey: %w", err)
	}

	vk, err := platform.VKCode(kc.Key)
	if err != nil {
		return platform.KeyCombo{}, fmt.Errorf("failed to get VK code: %w", err)
	}

	return platform.KeyCombo{
		Ctrl:  kc.Ctrl,
		Shift: kc.Shift,
		Alt:   kc.Alt,
		Win:   kc.Win,
		Key:   vk,
	}, nil
}

func hotkeyLabel() string {
	combo, err := hotkeyCombo()
	if err != nil {
		return hotkeySpec
	}
	return combo.String()
}

// nativePlatform builds the OS implementations. Must run on the locked main thread.
func nativePlatform(settings *config.Settings) Platform {
	return Platform{
		Hotkey:    platform.NewHotkey(),
		Queue:     platform.NewMessageQueue(),
		Prompt:    platform.NewPrompt(),
		Clipboard: platform.NewClipboard(settings.Clipboard.OpenRetries, settings.RetryDelay()),
		Notifier:  platform.NewNotifier(),
	}
}

func setupLogging(settings *config.Settings) error {
	level, err := settings.LogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// recentOutcomes renders activations newest first, e.g. "2026-10-19 08:15:02 copied".
// Failures carry their error message.
func recentOutcomes(acts []storage.Activation) []string {
	out := make([]string, 0, len(acts))
	for _, a := range acts {
		line := a.Timestamp.Local().Format(time.DateTime) + " " + string(a.Outcome)
		if a.ErrorMessage != "" {
			line += ": " + a.ErrorMessage
		}
		out = append(out, line)
	}
	return out
}

// runApp loads everything the loop needs, then runs it until quit.
// Any error returned before the loop starts means no hotkey was registered.
func runApp(ctx context.Context, configPath, settingsPath string, newPlatform func(*config.Settings) Platform) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := setupLogging(settings); err != nil {
		return err
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	records, err := config.LoadCredentials(absPath)
	if err != nil {
		return err
	}
	table := credential.NewTable(records)
	if table.Len() == 0 {
		slog.Warn("Credential file has no entries", "path", absPath)
	}
	slog.Info("Credentials loaded", "count", table.Len(), "path", absPath)

	combo, err := hotkeyCombo()
	if err != nil {
		return err
	}

	p := newPlatform(settings)

	// Acknowledged before the hot key is live; the prompt cannot take focus otherwise
	msg := fmt.Sprintf("Loaded %d credentials from %s\n\nGlobal hot key: %s", table.Len(), absPath, combo)
	if err := p.Notifier.Notify(appName, msg); err != nil {
		slog.Warn("Failed to show startup notification", "error", err)
	}

	var history ActivationRecorder
	if settings.History.Enabled {
		db, err := storage.Open(settings.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer db.Close()
		history = db

		if total, err := db.GetSummary(time.Time{}); err == nil {
			slog.Info("Activation history", "path", settings.History.Path,
				"total", total.Total, "copied", total.Copied, "cancelled", total.Cancelled, "failed", total.Failed)
		}
		if recent, err := db.GetActivations(recentActivationCount, 0); err == nil && len(recent) > 0 {
			slog.Info("Recent activations", "outcomes", recentOutcomes(recent))
		}

		sessionStart := time.Now()
		defer func() {
			s, err := db.GetSummary(sessionStart)
			if err != nil {
				slog.Warn("Failed to summarize session", "error", err)
				return
			}
			slog.Info("Session summary", "total", s.Total, "copied", s.Copied, "cancelled", s.Cancelled, "failed", s.Failed)
		}()
	}

	if settings.Tray.Enabled {
		tm := tray.NewManager(
			"GPW",
			fmt.Sprintf("%s (%s)", appName, combo),
			fmt.Sprintf("%d credentials loaded", table.Len()),
			trayIcon,
			p.Queue.Quit,
		)
		tm.Start()
		defer tm.Stop()
	}

	agent := NewAgent(table, combo, p, history)
	return agent.Run(ctx)
}
