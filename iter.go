package bitvec

import "iter"

// Iterator is an explicit cursor over the bits of a BitVector, yielding one
// value per logical index in ascending order. It holds a reference to the
// vector, so values produced after a mutation reflect the mutated state;
// it never reads past the logical length.
type Iterator struct {
	v     *BitVector
	index int
}

// Iterator returns a fresh cursor positioned before index 0. Each call
// starts an independent sequence.
func (v *BitVector) Iterator() *Iterator {
	return &Iterator{v: v}
}

// Next produces the next bit value. The second return value is false once
// all Len() bits have been produced.
func (it *Iterator) Next() (bool, bool) {
	if it.index >= it.v.length {
		return false, false
	}

	value := it.v.GetUnchecked(it.index)
	it.index++

	return value, true
}

// Values returns a sequence of the bit values in index order, usable with
// range. The sequence is finite (exactly Len() values) and restartable:
// ranging again starts over from index 0.
func (v *BitVector) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.GetUnchecked(i)) {
				return
			}
		}
	}
}

// All returns a sequence of index/value pairs in index order, usable with
// range.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.GetUnchecked(i)) {
				return
			}
		}
	}
}

// Ones returns a sequence of the indices of all true bits in ascending
// order.
func (v *BitVector) Ones() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < v.length; i++ {
			if v.GetUnchecked(i) && !yield(i) {
				return
			}
		}
	}
}
