// Package bitvec provides a fixed-capacity, densely packed bit vector for Go.
//
// A BitVector stores a compile-time-known number of booleans in a byte
// buffer of exactly ceil(length/8) bytes, using up to 8x less memory than a
// []bool of the same length. The logical length is fixed at construction;
// there is no resizing and no internal locking.
//
// # Quick Start
//
//	v, _ := bitvec.New(12)                      // 12 bits, all false
//	v, _ = bitvec.New(12, bitvec.WithFill(true)) // 12 bits, all true
//
//	_ = v.Set(3, true)
//	if bit, ok := v.Get(3); ok {
//	    fmt.Println(bit) // true
//	}
//
// # Checked vs Unchecked Access
//
// Get and Set validate the index against the logical length and report
// out-of-bounds access as an absent value (Get) or a typed error (Set).
// GetUnchecked and SetUnchecked skip that validation as a fast path for
// call sites that have already proven the bound; calling them with an
// invalid index is a caller bug, not a recoverable condition.
//
// # Bit Layout
//
// Bits are packed least-significant-bit first: bit i lives in byte i/8 at
// mask 1<<(i%8). Bits in the final byte past the logical length are padding
// and are never observable. The layout matters only if buffers are exchanged
// via Bytes or NewFromBytes.
//
// # Iteration
//
// Values, All and Ones return range-over-func sequences; Iterator returns an
// explicit cursor for manual stepping:
//
//	for i, bit := range v.All() {
//	    fmt.Println(i, bit)
//	}
//
// # Roaring Interop
//
// Roaring and FromRoaring convert between a BitVector and a
// RoaringBitmap, for handing dense fixed-width flag sets to code that
// composes compressed bitmaps.
package bitvec
