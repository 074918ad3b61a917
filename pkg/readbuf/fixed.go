package readbuf

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Fixed is a Storage holding an inline byte array. The array lives inside
// the struct itself, so a Fixed-backed cursor needs no separate backing
// allocation and Buf.Unwrap hands the array back by value.
//
// A must be a byte array type such as [64]byte. Go type parameters cannot
// range over array lengths, so this is checked once at construction and the
// byte view of the array is taken with unsafe.Slice.
type Fixed[A any] struct {
	arr  A
	init int
}

// NewFixed creates inline storage with a zero watermark. The array contents
// are unspecified as far as the cursor is concerned.
func NewFixed[A any]() *Fixed[A] {
	mustByteArray[A]()
	return &Fixed[A]{}
}

// FixedOf creates inline storage from a fully-defined array. The whole
// region counts as initialized; a cursor built on top still starts with
// zero filled bytes.
func FixedOf[A any](arr A) *Fixed[A] {
	mustByteArray[A]()
	f := &Fixed[A]{arr: arr}
	f.init = f.Capacity()
	return f
}

func mustByteArray[A any]() {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("readbuf: Fixed requires a byte array type, got %s", t))
	}
}

func (f *Fixed[A]) Capacity() int { return int(unsafe.Sizeof(f.arr)) }
func (f *Fixed[A]) Init() int     { return f.init }
func (f *Fixed[A]) SetInit(n int) { f.init = n }
func (f *Fixed[A]) Bytes() []byte { return f.Raw()[:f.init] }
func (f *Fixed[A]) Spare() []byte { return f.Raw()[f.init:] }

func (f *Fixed[A]) Raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&f.arr)), f.Capacity())
}
