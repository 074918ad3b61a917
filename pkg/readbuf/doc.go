// Package readbuf provides an incrementally filled and initialized byte
// buffer cursor for read-style I/O.
//
// The central type is Buf, a "double cursor" over a fixed-capacity byte
// region. It tracks three zones in address order: a filled prefix holding
// logical content, an initialized-but-unfilled middle holding defined bytes
// that are not yet content, and an uninitialized tail whose contents are
// unspecified:
//
//	[               capacity               ]
//	[ filled |          unfilled           ]
//	[    initialized     |  uninitialized  ]
//
// The filled zone is always a prefix of the initialized zone. The
// initialization watermark only ever grows, so a region is zero-filled at
// most once over the cursor's lifetime; after that, handing out the unfilled
// zone as a plain []byte is free.
//
// In Go a freshly allocated slice is already zeroed, so the watermark
// discipline matters most for storage that recycles memory (pools, arenas,
// borrowed scratch regions): it guarantees stale bytes are never exposed as
// content without an explicit, auditable assertion.
//
// Buf is generic over a Storage backing. Three backings are provided:
// Fixed (an inline byte array), Slice (a borrowed region, defined or not),
// and Heap (an owned region allocated by this package). All cursors start
// with zero filled bytes regardless of how much of the backing is defined.
//
// Filling is done through Ref, a non-replaceable handle minted with
// Buf.Borrow, and the Fill and FillExact loops that pump an io.Reader into
// the cursor. Buf is not safe for concurrent use; a cursor belongs to one
// call chain at a time.
//
// Example usage:
//
//	buf := readbuf.New4KB()
//	if err := readbuf.FillExact(r, buf.Borrow()); err != nil {
//		return err
//	}
//	process(buf.Filled())
//	buf.Clear() // reuse; no re-zeroing happens
package readbuf
