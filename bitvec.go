package bitvec

import (
	"bytes"
	"math/bits"
	"strings"
)

// BitVector is a fixed-capacity, densely packed vector of booleans.
//
// The logical bit length is fixed at construction and the backing buffer is
// always exactly ceil(length/8) bytes. Bit i lives in byte i/8 at mask
// 1<<(i%8) (least-significant-bit first). Bits in the final byte beyond the
// logical length are padding: they are kept at zero and are never observable
// through the API.
//
// A BitVector owns its backing buffer exclusively; no constructor or accessor
// aliases caller-provided memory. The type performs no internal
// synchronization — callers sharing one instance across goroutines must
// provide their own.
type BitVector struct {
	length int
	bits   []byte
}

// New creates a BitVector holding length bits, all initialized to false
// unless WithFill overrides the initial value. The byte buffer size is
// computed internally, so callers never construct a mismatched length/buffer
// pair. Returns ErrInvalidLength if length is negative.
func New(length int, opts ...Option) (*BitVector, error) {
	if length < 0 {
		return nil, &ErrInvalidLength{Length: length}
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v := &BitVector{
		length: length,
		bits:   make([]byte, byteLen(length)),
	}

	if o.fill {
		v.Fill(true)
	}

	return v, nil
}

// NewFromBytes creates a BitVector of the given logical length from a packed
// buffer, copying b so the new vector owns its storage. The buffer must be
// exactly ceil(length/8) bytes; otherwise ErrBufferSize is returned. Padding
// bits present in the final byte of b are cleared in the copy.
func NewFromBytes(b []byte, length int) (*BitVector, error) {
	if length < 0 {
		return nil, &ErrInvalidLength{Length: length}
	}
	if len(b) != byteLen(length) {
		return nil, &ErrBufferSize{Got: len(b), Want: byteLen(length), Length: length}
	}

	v := &BitVector{
		length: length,
		bits:   bytes.Clone(b),
	}
	v.maskPadding()

	return v, nil
}

// byteLen returns the minimum number of bytes needed to hold length bits.
func byteLen(length int) int {
	return (length + 7) / 8
}

// paddingMask returns the mask of in-range bits for the final byte, or 0xFF
// if the length is a whole number of bytes (no padding).
func (v *BitVector) paddingMask() byte {
	if r := v.length % 8; r != 0 {
		return byte(1<<r) - 1
	}
	return 0xFF
}

// maskPadding clears the padding bits in the final byte.
func (v *BitVector) maskPadding() {
	if len(v.bits) > 0 {
		v.bits[len(v.bits)-1] &= v.paddingMask()
	}
}

// Len returns the logical bit length of the vector.
func (v *BitVector) Len() int {
	return v.length
}

// ByteLen returns the size of the backing buffer in bytes.
func (v *BitVector) ByteLen() int {
	return len(v.bits)
}

// Get returns the bit at index i. The second return value reports whether i
// is within bounds; it is false for i < 0 or i >= Len(), and the bit value
// is then false. Get never touches memory outside the buffer.
func (v *BitVector) Get(i int) (bool, bool) {
	if i < 0 || i >= v.length {
		return false, false
	}
	return v.GetUnchecked(i), true
}

// Set writes the bit at index i, returning ErrIndexOutOfBounds (carrying the
// index and the vector length) for i < 0 or i >= Len(). On failure the
// vector is unchanged.
func (v *BitVector) Set(i int, value bool) error {
	if i < 0 || i >= v.length {
		return &ErrIndexOutOfBounds{Index: i, Length: v.length}
	}

	v.SetUnchecked(i, value)

	return nil
}

// GetUnchecked returns the bit at index i without validating i against the
// logical length. The caller must have already established 0 <= i < Len():
// an index inside the buffer but past the length reads a padding bit, and an
// index past the buffer panics. Use Get unless the bound is proven at the
// call site.
func (v *BitVector) GetUnchecked(i int) bool {
	return v.bits[i>>3]&(1<<(i&7)) != 0
}

// SetUnchecked writes the bit at index i without validating i against the
// logical length. The caller contract is the same as for GetUnchecked;
// writing a padding bit breaks the invariants the bulk operations rely on.
func (v *BitVector) SetUnchecked(i int, value bool) {
	if value {
		v.bits[i>>3] |= 1 << (i & 7)
	} else {
		v.bits[i>>3] &^= 1 << (i & 7)
	}
}

// Fill sets every bit in the vector to value. Padding bits remain zero.
func (v *BitVector) Fill(value bool) {
	b := byte(0x00)
	if value {
		b = 0xFF
	}

	for i := range v.bits {
		v.bits[i] = b
	}

	v.maskPadding()
}

// CountOnes returns the number of true bits.
func (v *BitVector) CountOnes() int {
	// Padding bits are zero, so whole-byte popcount never overcounts.
	count := 0
	for _, b := range v.bits {
		count += bits.OnesCount8(b)
	}

	return count
}

// CountZeros returns the number of false bits.
func (v *BitVector) CountZeros() int {
	return v.length - v.CountOnes()
}

// IsAllOne reports whether every bit is true. It returns false at the first
// counterexample byte instead of counting the full vector.
func (v *BitVector) IsAllOne() bool {
	for i, b := range v.bits {
		want := byte(0xFF)
		if i == len(v.bits)-1 {
			want = v.paddingMask()
		}
		if b != want {
			return false
		}
	}

	return true
}

// IsAllZero reports whether every bit is false. It returns false at the
// first counterexample byte instead of counting the full vector.
func (v *BitVector) IsAllZero() bool {
	for _, b := range v.bits {
		if b != 0 {
			return false
		}
	}

	return true
}

// Bytes returns a copy of the backing buffer. Padding bits in the final byte
// are zero. Mutating the returned slice does not affect the vector.
func (v *BitVector) Bytes() []byte {
	return bytes.Clone(v.bits)
}

// Clone returns a deep copy of the vector.
func (v *BitVector) Clone() *BitVector {
	return &BitVector{
		length: v.length,
		bits:   bytes.Clone(v.bits),
	}
}

// Equal reports whether v and other have the same length and the same bit
// values. The padding-bits-are-zero invariant makes a plain buffer compare
// sufficient.
func (v *BitVector) Equal(other *BitVector) bool {
	if other == nil {
		return false
	}
	return v.length == other.length && bytes.Equal(v.bits, other.bits)
}

// String renders the vector as a string of '0' and '1' characters, index 0
// first.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)

	for i := 0; i < v.length; i++ {
		if v.GetUnchecked(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
