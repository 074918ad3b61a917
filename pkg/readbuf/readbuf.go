package readbuf

import "fmt"

// Buf is a byte buffer that is incrementally filled and initialized.
//
// It is a sort of "double cursor" over its Storage: the filled mark bounds
// the logical content and the storage's watermark bounds the defined bytes.
// The filled region is always a subset of the initialized region, and the
// watermark never moves backwards.
//
// Operations that would break those invariants (growing the filled region
// past the watermark, materializing more unfilled bytes than remain) panic:
// they are programming errors, not recoverable conditions. A panicking
// operation leaves the cursor unmodified.
//
// Buf is not safe for concurrent use. A cursor is meant to be owned by one
// call chain; pass it downward as a Ref minted with Borrow.
type Buf[S Storage] struct {
	filled int
	buf    S
}

// New creates a cursor over the given storage. The filled mark starts at
// zero even when the storage arrives fully defined: having defined bytes
// and having logical content are different things.
func New[S Storage](storage S) *Buf[S] {
	return &Buf[S]{buf: storage}
}

// Borrow mints a Ref over this cursor for passing into read operations.
func (b *Buf[S]) Borrow() Ref[S] {
	return Ref[S]{buf: b}
}

// Unwrap hands the underlying storage back. It panics unless the filled and
// initialized regions coincide, i.e. the cursor's logical content is exactly
// the storage's defined content.
func (b *Buf[S]) Unwrap() S {
	if b.filled != b.buf.Init() {
		panic(fmt.Sprintf("readbuf: Unwrap with %d filled of %d initialized bytes", b.filled, b.buf.Init()))
	}
	return b.buf
}

// Capacity returns the total size of the buffer.
func (b *Buf[S]) Capacity() int {
	return b.buf.Capacity()
}

// FilledLen returns the number of bytes that have been filled.
func (b *Buf[S]) FilledLen() int {
	return b.filled
}

// InitLen returns the number of bytes that have been initialized.
func (b *Buf[S]) InitLen() int {
	return b.buf.Init()
}

// Remaining returns the number of bytes that have not yet been filled.
func (b *Buf[S]) Remaining() int {
	return b.Capacity() - b.filled
}

// Filled returns the filled portion of the buffer.
func (b *Buf[S]) Filled() []byte {
	return b.buf.Bytes()[:b.filled]
}

// Initialized returns the initialized portion of the buffer, which includes
// the filled portion.
func (b *Buf[S]) Initialized() []byte {
	return b.buf.Bytes()
}

// Uninitialized returns the uninitialized tail of the buffer. Its contents
// are unspecified; writing there defines bytes only once claimed through
// AssumeInit.
func (b *Buf[S]) Uninitialized() []byte {
	return b.buf.Spare()
}

// Unfilled returns the whole unfilled portion of the buffer as one
// contiguous slice, spanning both the initialized-but-unfilled and the
// uninitialized zones.
//
// Contract: callers may only narrow the undefined region, never widen it —
// bytes already covered by the watermark must keep holding defined values.
// Bytes written past the watermark must be claimed with AssumeInit before
// anything reads them.
func (b *Buf[S]) Unfilled() []byte {
	return b.buf.Raw()[b.filled:]
}

// Clear resets the filled region to empty. The watermark and the byte
// contents are untouched, so a cleared cursor refills without re-zeroing.
func (b *Buf[S]) Clear() {
	b.SetFilled(0)
}

// AddFilled grows the filled region by n bytes. The watermark is not
// changed.
//
// Panics if the filled region would extend past the initialized region.
func (b *Buf[S]) AddFilled(n int) {
	b.SetFilled(b.filled + n)
}

// SetFilled sets the size of the filled region. The watermark is not
// changed. n may be smaller than the current filled length, for producers
// that compact already-filled data in place.
//
// Panics if the filled region would extend past the initialized region.
func (b *Buf[S]) SetFilled(n int) {
	if n < 0 || n > b.buf.Init() {
		panic(fmt.Sprintf("readbuf: SetFilled(%d) outside initialized region [0, %d]", n, b.buf.Init()))
	}
	b.filled = n
}

// AssumeInit asserts that the first n unfilled bytes hold defined values,
// advancing the watermark to cover them. The watermark never moves
// backwards, so this is a no-op when those bytes are already covered.
//
// Contract: the caller must actually have written defined values there.
func (b *Buf[S]) AssumeInit(n int) {
	if w := b.filled + n; w > b.buf.Init() {
		b.buf.SetInit(w)
	}
}

// InitializeUnfilled returns the whole unfilled portion of the buffer with
// every byte guaranteed to hold a defined value. Since the watermark is
// tracked, this is effectively free after the first use.
func (b *Buf[S]) InitializeUnfilled() []byte {
	return b.InitializeUnfilledTo(b.Remaining())
}

// InitializeUnfilledTo returns the first n unfilled bytes with every byte
// guaranteed to hold a defined value, zero-filling whatever portion the
// watermark does not already cover. Each byte is zeroed at most once over
// the cursor's lifetime.
//
// Panics if n exceeds Remaining().
func (b *Buf[S]) InitializeUnfilledTo(n int) []byte {
	if n > b.Remaining() {
		panic(fmt.Sprintf("readbuf: InitializeUnfilledTo(%d) with only %d bytes remaining", n, b.Remaining()))
	}

	if extra := b.buf.Init() - b.filled; n > extra {
		clear(b.buf.Spare()[:n-extra])
		b.AssumeInit(n)
	}

	return b.buf.Bytes()[b.filled : b.filled+n]
}

// Append copies p into the unfilled region, advancing both the filled mark
// and, as needed, the watermark. This is the push primitive for producers
// that already hold defined bytes, as opposed to readers filling in place.
//
// Panics if p is larger than Remaining().
func (b *Buf[S]) Append(p []byte) {
	if len(p) > b.Remaining() {
		panic(fmt.Sprintf("readbuf: Append of %d bytes with only %d remaining", len(p), b.Remaining()))
	}
	copy(b.buf.Raw()[b.filled:], p)
	b.AssumeInit(len(p))
	b.AddFilled(len(p))
}

// String renders the cursor marks for debugging. Byte contents are not
// included.
func (b *Buf[S]) String() string {
	return fmt.Sprintf("readbuf.Buf{filled:%d init:%d cap:%d}", b.filled, b.buf.Init(), b.buf.Capacity())
}
