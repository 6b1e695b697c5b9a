//go:build windows

package console

import (
	"os"
	"os/exec"
)

// Pause waits for a keypress using the shell's own prompt.
func Pause() error {
	cmd := exec.Command("cmd.exe", "/c", "pause")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
