package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	appName = "Global Password Helper"

	exitOK      = 0
	exitFailure = 1
	exitUsage   = 1

	defaultSettingsHint = `%APPDATA%\gpwhelper\settings.toml`
)

// usageError is an argument problem that gets the usage text instead of a log line
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func init() {
	// WM_HOTKEY is posted to the thread that called RegisterHotKey, so the
	// message loop has to stay on the main thread.
	runtime.LockOSThread()

	// Started from shortcuts and the Startup folder, not only from a console
	cobra.MousetrapHelpText = ""
}

func main() {
	// Setup logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout)
	cancel()
	os.Exit(code)
}

// execute parses args and runs the helper. It returns the process exit code.
func execute(ctx context.Context, args []string, out io.Writer) int {
	for _, arg := range args {
		if arg == "/?" {
			printUsage(out, "")
			return exitUsage
		}
	}

	var settingsPath string
	helpShown := false

	cmd := &cobra.Command{
		Use:   "gpwhelper JSON_CONFIG_FILE",
		Short: appName,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return &usageError{msg: "Missing required argument: JSON_CONFIG_FILE"}
			case len(args) > 1:
				return &usageError{msg: fmt.Sprintf("Expected one argument, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), args[0], settingsPath, nativePlatform)
		},
	}
	cmd.Flags().StringVar(&settingsPath, "settings", "", "settings file (default "+defaultSettingsHint+")")
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		helpShown = true
		printUsage(out, "")
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
	// A nil slice makes cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(out)
	cmd.SetErr(out)

	err := cmd.ExecuteContext(ctx)

	var uerr *usageError
	switch {
	case errors.As(err, &uerr):
		printUsage(out, uerr.msg)
		return exitUsage
	case err != nil:
		slog.Error("Global Password Helper failed", "error", err)
		return exitFailure
	case helpShown:
		return exitUsage
	}
	return exitOK
}

func printUsage(out io.Writer, errMsg string) {
	if errMsg != "" {
		fmt.Fprintf(out, "ERROR: %s\n", errMsg)
	}
	fmt.Fprintln(out, "Usage: gpwhelper [--settings SETTINGS_FILE] JSON_CONFIG_FILE")
	fmt.Fprintln(out, appName)
	fmt.Fprintf(out, "Registers Win32 global hot key (%s)\n", hotkeyLabel())
	fmt.Fprintln(out, "Press Win32 global hot key to display dialog with list of usernames (or descriptions)")
	fmt.Fprintln(out, "Select username to copy password to clipboard")
	fmt.Fprintln(out, "Ctrl+V to paste password from clipboard to system password dialog")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Required Arguments:")
	fmt.Fprintln(out, "    JSON_CONFIG_FILE: File path to JSON config")
	fmt.Fprintln(out, `        Ex: C:\src\pw.json`)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Optional Arguments:")
	fmt.Fprintln(out, "    --settings SETTINGS_FILE: File path to TOML settings")
	fmt.Fprintf(out, "        Default: %s\n", defaultSettingsHint)
}
