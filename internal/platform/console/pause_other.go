//go:build !windows

package console

// Pause is a no-op outside Windows; terminals keep output after exit.
func Pause() error {
	return nil
}
