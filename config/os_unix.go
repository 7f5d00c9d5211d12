//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName removes not allowed characters form file name.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if strings.ContainsRune(string(os.PathSeparator)+string(os.PathListSeparator), sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports whether log levels written to stream could be
// colored: stream is a terminal which understands escape sequences and user
// did not opt out with NO_COLOR.
func EnableColorOutput(stream *os.File) bool {
	if noColor() || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(stream.Fd()))
}

func noColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
