package main

import (
	"errors"
	"fmt"

	"markestedt/gpwhelper/platform"
)

// copySecret writes secret to the clipboard as CF_TEXT and CF_UNICODETEXT in one
// open/close pair. The clipboard is closed whether or not the writes succeed.
// Previous clipboard content is not saved or restored.
func copySecret(cb platform.Clipboard, secret string) (err error) {
	session, err := cb.Open()
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close clipboard: %w", cerr))
		}
	}()

	if err := session.SetText(secret); err != nil {
		return fmt.Errorf("failed to set text: %w", err)
	}
	if err := session.SetUnicodeText(secret); err != nil {
		return fmt.Errorf("failed to set unicode text: %w", err)
	}
	return nil
}
