// Package console holds terminal niceties for the command's entrypoint.
package console

import "runtime"

// PauseByDefault reports whether the platform's console window closes as
// soon as the process exits, so output should be held until a keypress.
func PauseByDefault() bool {
	return runtime.GOOS == "windows"
}

// PauseHook returns a func that pauses when enabled and does nothing
// otherwise. It fits config.ExitAfterf and the normal exit path alike.
func PauseHook(enabled bool) func() {
	return func() {
		if enabled {
			_ = Pause()
		}
	}
}
