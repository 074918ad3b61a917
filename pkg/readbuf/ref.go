package readbuf

// Ref is a handle over a Buf used as the parameter type of read operations.
// It forwards the cursor's operations while keeping the referent private,
// so a callee can fill the buffer but cannot swap it for a different one.
//
// A Ref is minted with Buf.Borrow and copied cheaply. Reborrow produces a
// fresh handle over the same cursor for passing into nested calls; the
// original and the reborrow alias the same cursor, so they must not be used
// from different goroutines or interleaved within one call. Go does not
// check this discipline — it is the single-writer contract of the package.
type Ref[S Storage] struct {
	buf *Buf[S]
}

// Reborrow returns a new Ref over the same cursor, for handing into a
// nested call while keeping the current handle usable afterwards.
func (r Ref[S]) Reborrow() Ref[S] {
	return Ref[S]{buf: r.buf}
}

// Capacity returns the total size of the buffer.
func (r Ref[S]) Capacity() int { return r.buf.Capacity() }

// FilledLen returns the number of bytes that have been filled.
func (r Ref[S]) FilledLen() int { return r.buf.FilledLen() }

// InitLen returns the number of bytes that have been initialized.
func (r Ref[S]) InitLen() int { return r.buf.InitLen() }

// Remaining returns the number of bytes that have not yet been filled.
func (r Ref[S]) Remaining() int { return r.buf.Remaining() }

// Filled returns the filled portion of the buffer.
func (r Ref[S]) Filled() []byte { return r.buf.Filled() }

// Initialized returns the initialized portion of the buffer.
func (r Ref[S]) Initialized() []byte { return r.buf.Initialized() }

// Uninitialized returns the uninitialized tail of the buffer. See
// Buf.Uninitialized.
func (r Ref[S]) Uninitialized() []byte { return r.buf.Uninitialized() }

// Unfilled returns the whole unfilled portion of the buffer. See
// Buf.Unfilled for the contract.
func (r Ref[S]) Unfilled() []byte { return r.buf.Unfilled() }

// InitializeUnfilled returns the whole unfilled portion with every byte
// defined. See Buf.InitializeUnfilled.
func (r Ref[S]) InitializeUnfilled() []byte { return r.buf.InitializeUnfilled() }

// InitializeUnfilledTo returns the first n unfilled bytes with every byte
// defined. See Buf.InitializeUnfilledTo.
func (r Ref[S]) InitializeUnfilledTo(n int) []byte { return r.buf.InitializeUnfilledTo(n) }

// Clear resets the filled region to empty.
func (r Ref[S]) Clear() { r.buf.Clear() }

// AddFilled grows the filled region by n bytes. See Buf.AddFilled.
func (r Ref[S]) AddFilled(n int) { r.buf.AddFilled(n) }

// SetFilled sets the size of the filled region. See Buf.SetFilled.
func (r Ref[S]) SetFilled(n int) { r.buf.SetFilled(n) }

// AssumeInit asserts that the first n unfilled bytes hold defined values.
// See Buf.AssumeInit for the contract.
func (r Ref[S]) AssumeInit(n int) { r.buf.AssumeInit(n) }

// Append copies p into the unfilled region. See Buf.Append.
func (r Ref[S]) Append(p []byte) { r.buf.Append(p) }

// String renders the cursor marks for debugging.
func (r Ref[S]) String() string { return r.buf.String() }
