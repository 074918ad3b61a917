package readbuf

import (
	"errors"
	"io"
	"syscall"
)

// Fill pulls some bytes from r into the unfilled portion of the buffer and
// advances the filled mark by however many were read. It is the adapter
// from the flat io.Reader contract to the cursor contract: the unfilled
// region is materialized as a defined slice first, so r never observes
// unspecified bytes.
//
// Any error from r, including io.EOF, is returned unchanged. Bytes read
// before the error are kept.
func Fill[S Storage](r io.Reader, buf Ref[S]) error {
	n, err := r.Read(buf.InitializeUnfilled())
	if n > 0 {
		buf.AddFilled(n)
	}
	return err
}

// FillExact reads from r until the buffer has no remaining capacity,
// reborrowing buf into Fill on each iteration.
//
// Reads failing with an interrupted error (syscall.EINTR, possibly wrapped)
// are retried transparently. If r reports end of input, or reports success
// without producing a single byte, while capacity remains, FillExact
// returns io.ErrUnexpectedEOF. Any other error is returned as is. Bytes
// filled before a failure stay filled.
func FillExact[S Storage](r io.Reader, buf Ref[S]) error {
	for buf.Remaining() > 0 {
		prev := buf.FilledLen()

		switch err := Fill(r, buf.Reborrow()); {
		case err == nil:
		case errors.Is(err, syscall.EINTR):
			continue
		case errors.Is(err, io.EOF):
			if buf.Remaining() == 0 {
				return nil
			}
			return io.ErrUnexpectedEOF
		default:
			return err
		}

		if buf.FilledLen() == prev {
			return io.ErrUnexpectedEOF
		}
	}
	return nil
}
