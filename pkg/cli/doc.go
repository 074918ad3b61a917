// Package cli provides terminal formatting helpers shared by the readbuf
// command line tools: human readable byte counts and throughput, and the
// lipgloss styles used for hexdump output.
package cli
