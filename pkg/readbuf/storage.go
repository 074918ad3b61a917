package readbuf

// Storage is the byte backing of a Buf. It is a fixed-capacity,
// byte-addressable region with an initialization watermark: bytes below the
// watermark hold some defined value, bytes at or above it are unspecified.
//
// The cursor never grows or reallocates a Storage; capacity is fixed for the
// life of the cursor. Implementations are plain data holders and are not
// safe for concurrent use.
type Storage interface {
	// Capacity returns the total size of the region in bytes.
	Capacity() int

	// Init returns the initialization watermark: the number of leading
	// bytes that hold a defined value.
	Init() int

	// SetInit sets the watermark to n. The caller asserts that bytes
	// [Init(), n) already hold defined values; this is a contract, not
	// something the storage verifies.
	SetInit(n int)

	// Bytes returns the defined region [0, Init()).
	Bytes() []byte

	// Spare returns the region [Init(), Capacity()). Its contents are
	// unspecified; callers may write anything but must report what they
	// defined via SetInit (usually through Buf.AssumeInit).
	Spare() []byte

	// Raw returns the full region [0, Capacity()) without regard to the
	// watermark. Only for call sites that stay within the defined region
	// or immediately account for what they write.
	Raw() []byte
}

// Slice is a Storage borrowing a caller-owned byte region. The region's
// length is the capacity; ownership stays with the caller, so Buf.Unwrap on
// a slice-backed cursor simply hands the same region back.
type Slice struct {
	buf  []byte
	init int
}

// Of wraps an already-defined byte region. Every byte of b counts as
// initialized; the cursor built on top still starts with zero filled bytes.
func Of(b []byte) *Slice {
	return &Slice{buf: b, init: len(b)}
}

// Uninit wraps a byte region whose contents are unspecified, for example a
// scratch buffer recycled from a pool. The watermark starts at zero and b is
// never read until the cursor has defined it.
func Uninit(b []byte) *Slice {
	return &Slice{buf: b}
}

func (s *Slice) Capacity() int { return len(s.buf) }
func (s *Slice) Init() int     { return s.init }
func (s *Slice) SetInit(n int) { s.init = n }
func (s *Slice) Bytes() []byte { return s.buf[:s.init] }
func (s *Slice) Spare() []byte { return s.buf[s.init:] }
func (s *Slice) Raw() []byte   { return s.buf }

// Heap is a Storage owning a heap-allocated byte region. The slice length
// doubles as the initialization watermark and the slice capacity is the
// region capacity, mirroring how a []byte grown with append behaves.
type Heap struct {
	buf []byte
}

// NewHeap allocates an owned region of the given capacity with a zero
// watermark.
func NewHeap(capacity int) *Heap {
	return &Heap{buf: make([]byte, 0, capacity)}
}

// OfBytes adopts an existing slice as owned storage. The slice's length is
// the defined prefix and its capacity is the region capacity, so a slice
// built with make([]byte, 0, n) arrives fully uninitialized while one built
// with make([]byte, n) arrives fully defined.
func OfBytes(b []byte) *Heap {
	return &Heap{buf: b}
}

func (h *Heap) Capacity() int { return cap(h.buf) }
func (h *Heap) Init() int     { return len(h.buf) }
func (h *Heap) SetInit(n int) { h.buf = h.buf[:n] }
func (h *Heap) Bytes() []byte { return h.buf }
func (h *Heap) Spare() []byte { return h.buf[len(h.buf):cap(h.buf)] }
func (h *Heap) Raw() []byte   { return h.buf[:cap(h.buf)] }
