// Package main provides the readbuf buffer inspection tool.
//
// Usage:
//
//	readbuf [flags] <command> [args]
//
// Commands:
//
//	cat  - stream a file through a reused read buffer to stdout
//	dump - hexdump a file chunk by chunk through a reused read buffer
//
// The tool exists to exercise the readbuf library against real files and
// pipes; every byte it emits has passed through a Buf cursor.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/readbuf/cmd/readbuf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
