package bitvec

type options struct {
	fill bool
}

// Option configures constructor behavior.
//
// Options exist to avoid exploding the API surface with per-initial-value
// constructor variants.
type Option func(*options)

// WithFill sets the initial value of every bit. The default is false
// (all-zero).
func WithFill(value bool) Option {
	return func(o *options) {
		o.fill = value
	}
}
