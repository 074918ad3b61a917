package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	chunkSize int
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readbuf",
	Short: "Stream and inspect files through a readbuf cursor",
	Long: `readbuf - exercise the readbuf library against real inputs.

Every byte this tool emits has been pulled through a fixed-capacity
readbuf cursor that is cleared and reused between chunks, so the tool
doubles as a smoke test for the fill/clear/reuse cycle.

Examples:
  # Copy a file to stdout through a 4KB cursor
  readbuf cat big.bin > copy.bin

  # Hexdump stdin in 256-byte chunks
  readbuf dump --chunk 256 < big.bin
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLog)

	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk", 1<<12, "cursor capacity in bytes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(dumpCmd)
}

func initLog() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// openInput returns the input reader for a command: the named file, or
// stdin when no argument was given.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}

func validateChunk() error {
	if chunkSize <= 0 {
		return fmt.Errorf("invalid --chunk %d: must be positive", chunkSize)
	}
	return nil
}
