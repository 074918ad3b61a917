package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/readbuf/pkg/readbuf"
)

var catSome bool

var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Stream a file to stdout through a reused cursor",
	Long: `Stream a file (or stdin) to stdout.

The input is pumped through a single fixed-capacity cursor with FillExact,
clearing the cursor between chunks. With --some, each iteration performs one
Fill instead, emitting whatever the source produced per read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func init() {
	catCmd.Flags().BoolVar(&catSome, "some", false, "one Fill per chunk instead of FillExact")
}

func runCat(cmd *cobra.Command, args []string) error {
	if err := validateChunk(); err != nil {
		return err
	}
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	buf := readbuf.New(readbuf.NewHeap(chunkSize))
	slog.Debug("streaming", "input", name, "chunk", chunkSize, "some", catSome)

	var total int64
	for {
		var fillErr error
		if catSome {
			fillErr = readbuf.Fill(in, buf.Borrow())
		} else {
			fillErr = readbuf.FillExact(in, buf.Borrow())
		}

		done := errors.Is(fillErr, io.EOF) || errors.Is(fillErr, io.ErrUnexpectedEOF)
		if fillErr != nil && !done {
			return fillErr
		}

		if _, err := os.Stdout.Write(buf.Filled()); err != nil {
			return err
		}
		total += int64(buf.FilledLen())

		if done {
			break
		}
		buf.Clear()
	}

	slog.Debug("stream complete", "bytes", total)
	return nil
}
