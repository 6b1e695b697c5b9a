package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitAfterf(nil, format, args...)
}

// ExitAfterf is Exitf with a hook that runs after the message is written,
// such as waiting for a keypress so a console window stays open.
func ExitAfterf(before func(), format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	if before != nil {
		before()
	}
	os.Exit(1)
}
