package bitvec

import "fmt"

// ErrIndexOutOfBounds indicates a checked access with an index outside
// [0, Len()). It carries the offending index and the valid bound.
type ErrIndexOutOfBounds struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Length)
}

// ErrInvalidLength indicates a negative logical length passed to a
// constructor.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}

// ErrBufferSize indicates a buffer passed to NewFromBytes whose size does
// not match the logical length. The buffer must be exactly ceil(length/8)
// bytes.
type ErrBufferSize struct {
	Got    int
	Want   int
	Length int
}

func (e *ErrBufferSize) Error() string {
	return fmt.Sprintf("buffer size mismatch: got %d bytes, want %d for length %d", e.Got, e.Want, e.Length)
}
