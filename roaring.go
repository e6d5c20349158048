package bitvec

import "github.com/RoaringBitmap/roaring/v2"

// Roaring returns a roaring bitmap containing the indices of all true bits.
// Use it to hand a dense fixed-width flag set to code that combines
// compressed bitmaps (AND/OR across filters, sparse long-lived sets).
func (v *BitVector) Roaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range v.Ones() {
		rb.Add(uint32(i))
	}

	return rb
}

// FromRoaring creates a BitVector of the given logical length whose true
// bits are the members of rb. Returns ErrIndexOutOfBounds if rb contains an
// index at or beyond length.
func FromRoaring(rb *roaring.Bitmap, length int) (*BitVector, error) {
	v, err := New(length)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if uint64(i) >= uint64(length) {
			return nil, &ErrIndexOutOfBounds{Index: int(i), Length: length}
		}
		v.SetUnchecked(int(i), true)
	}

	return v, nil
}
