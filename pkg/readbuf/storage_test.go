package readbuf

import (
	"bytes"
	"testing"
)

func TestSlice_Of(t *testing.T) {
	region := []byte("abcdefgh")
	s := Of(region)

	if s.Capacity() != 8 || s.Init() != 8 {
		t.Fatalf("Capacity() = %d, Init() = %d, want 8, 8", s.Capacity(), s.Init())
	}
	if !bytes.Equal(s.Bytes(), region) {
		t.Fatalf("Bytes() = %q, want %q", s.Bytes(), region)
	}
	if len(s.Spare()) != 0 {
		t.Fatalf("len(Spare()) = %d, want 0", len(s.Spare()))
	}
}

func TestSlice_Uninit(t *testing.T) {
	s := Uninit(make([]byte, 8))

	if s.Capacity() != 8 || s.Init() != 0 {
		t.Fatalf("Capacity() = %d, Init() = %d, want 8, 0", s.Capacity(), s.Init())
	}
	if len(s.Bytes()) != 0 {
		t.Fatalf("len(Bytes()) = %d, want 0", len(s.Bytes()))
	}
	if len(s.Spare()) != 8 || len(s.Raw()) != 8 {
		t.Fatalf("len(Spare()) = %d, len(Raw()) = %d, want 8, 8", len(s.Spare()), len(s.Raw()))
	}

	s.SetInit(5)
	if s.Init() != 5 || len(s.Bytes()) != 5 || len(s.Spare()) != 3 {
		t.Fatalf("after SetInit(5): Init() = %d, len(Bytes()) = %d, len(Spare()) = %d", s.Init(), len(s.Bytes()), len(s.Spare()))
	}
}

func TestSlice_Borrowed(t *testing.T) {
	region := make([]byte, 4)
	buf := New(Uninit(region))

	buf.Append([]byte("hiya"))

	// The caller's region observes the writes; no copy was taken.
	if !bytes.Equal(region, []byte("hiya")) {
		t.Fatalf("backing region = %q, want %q", region, "hiya")
	}
}

func TestHeap_New(t *testing.T) {
	h := NewHeap(16)

	if h.Capacity() != 16 || h.Init() != 0 {
		t.Fatalf("Capacity() = %d, Init() = %d, want 16, 0", h.Capacity(), h.Init())
	}
	if len(h.Spare()) != 16 || len(h.Raw()) != 16 {
		t.Fatalf("len(Spare()) = %d, len(Raw()) = %d, want 16, 16", len(h.Spare()), len(h.Raw()))
	}
}

func TestHeap_OfBytes(t *testing.T) {
	b := make([]byte, 4, 16)
	copy(b, "abcd")
	h := OfBytes(b)

	if h.Capacity() != 16 || h.Init() != 4 {
		t.Fatalf("Capacity() = %d, Init() = %d, want 16, 4", h.Capacity(), h.Init())
	}
	if !bytes.Equal(h.Bytes(), []byte("abcd")) {
		t.Fatalf("Bytes() = %q, want %q", h.Bytes(), "abcd")
	}
	if len(h.Spare()) != 12 {
		t.Fatalf("len(Spare()) = %d, want 12", len(h.Spare()))
	}
}

func TestHeap_UnwrapRoundTrip(t *testing.T) {
	buf := New(NewHeap(4))
	buf.Append([]byte("data"))

	h := buf.Unwrap()
	if !bytes.Equal(h.Bytes(), []byte("data")) {
		t.Fatalf("Bytes() = %q, want %q", h.Bytes(), "data")
	}

	// The unwrapped storage can seed a fresh cursor; defined bytes carry
	// over but the filled mark starts at zero again.
	reread := New(h)
	if reread.FilledLen() != 0 || reread.InitLen() != 4 {
		t.Fatalf("marks = (%d, %d), want (0, 4)", reread.FilledLen(), reread.InitLen())
	}
}
