package readbuf

// New16KB creates a heap-backed cursor with 16KB capacity.
func New16KB() *Buf[*Heap] {
	return New(NewHeap(1 << 14))
}

// New4KB creates a heap-backed cursor with 4KB capacity.
func New4KB() *Buf[*Heap] {
	return New(NewHeap(1 << 12))
}

// New1KB creates a heap-backed cursor with 1KB capacity.
func New1KB() *Buf[*Heap] {
	return New(NewHeap(1 << 10))
}

// New256B creates a heap-backed cursor with 256 bytes capacity.
func New256B() *Buf[*Heap] {
	return New(NewHeap(1 << 8))
}
