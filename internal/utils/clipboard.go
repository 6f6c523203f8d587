// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	cgoAvailable  bool
)

// InitClipboard tries to initialize the native clipboard.
// clipboard.Init panics without cgo, in which case the OS command fallback is used.
func InitClipboard() {
	clipboardOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				cgoAvailable = false
			}
		}()
		cgoAvailable = clipboard.Init() == nil
	})
}

// WriteToClipboard writes text to the system clipboard
// It uses CGO clipboard if available, otherwise falls back to OS commands
func WriteToClipboard(text string) error {
	InitClipboard()

	if cgoAvailable {
		done := clipboard.Write(clipboard.FmtText, []byte(text))
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return fmt.Errorf("clipboard write timeout")
		}
	}

	cmd, err := fallbackCommand(runtime.GOOS, os.Getenv, text)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// fallbackCommand picks the OS clipboard command for goos
func fallbackCommand(goos string, getenv func(string) string, text string) (*exec.Cmd, error) {
	var cmd *exec.Cmd

	switch goos {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		if getenv("WAYLAND_DISPLAY") != "" {
			cmd = exec.Command("wl-copy")
		} else {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		}
	case "windows":
		// PowerShell takes the value as an argument
		return exec.Command("powershell", "-command", "Set-Clipboard", "-Value", text), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd, nil
}
