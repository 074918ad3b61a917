package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/readbuf/pkg/cli"
	"github.com/haivivi/readbuf/pkg/readbuf"
)

const dumpWidth = 16

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Hexdump a file chunk by chunk through a reused cursor",
	Long: `Hexdump a file (or stdin).

The input is read through a fixed-capacity cursor with FillExact, and each
filled chunk is rendered as offset, hex columns and an ASCII gutter before
the cursor is cleared for the next chunk. A summary line with byte count,
elapsed time and throughput is printed to stderr at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	if err := validateChunk(); err != nil {
		return err
	}
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	styles := cli.NewStyles(cli.DefaultTheme)
	out := bufio.NewWriter(os.Stdout)
	buf := readbuf.New(readbuf.NewHeap(chunkSize))
	slog.Debug("dumping", "input", name, "chunk", chunkSize)

	start := time.Now()
	var total int64
	for {
		fillErr := readbuf.FillExact(in, buf.Borrow())
		if fillErr != nil && !errors.Is(fillErr, io.ErrUnexpectedEOF) {
			return fillErr
		}

		for chunk := buf.Filled(); len(chunk) > 0; {
			row := chunk[:min(dumpWidth, len(chunk))]
			if _, err := fmt.Fprintln(out, dumpRow(styles, total, row)); err != nil {
				return err
			}
			total += int64(len(row))
			chunk = chunk[len(row):]
		}

		if fillErr != nil {
			break
		}
		buf.Clear()
	}
	if err := out.Flush(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	summary := fmt.Sprintf("%s in %s (%s)",
		cli.FormatBytes(total), cli.FormatDuration(elapsed), cli.FormatRate(total, elapsed))
	fmt.Fprintln(os.Stderr, styles.Summary.Render(summary))
	return nil
}

// dumpRow renders one hexdump line: offset, up to 16 hex byte columns and
// the ASCII gutter.
func dumpRow(styles cli.Styles, offset int64, row []byte) string {
	var hexCols, ascii strings.Builder

	for i := 0; i < dumpWidth; i++ {
		if i == dumpWidth/2 {
			hexCols.WriteByte(' ')
		}
		if i >= len(row) {
			hexCols.WriteString("   ")
			continue
		}
		fmt.Fprintf(&hexCols, " %02x", row[i])
		if row[i] >= 0x20 && row[i] < 0x7f {
			ascii.WriteByte(row[i])
		} else {
			ascii.WriteByte('.')
		}
	}

	return fmt.Sprintf("%s %s  %s",
		styles.Offset.Render(fmt.Sprintf("%08x", offset)),
		styles.Hex.Render(hexCols.String()),
		styles.ASCII.Render(ascii.String()))
}
