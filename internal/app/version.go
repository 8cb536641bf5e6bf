package app

import (
	"fmt"
	"io"
)

// Version is the build version, overridable at link time:
//
//	go build -ldflags "-X github.com/agbru/enrichd/internal/app.Version=1.2.3"
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "enrichd %s\n", Version)
}
