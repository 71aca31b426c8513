package connectivity

import "github.com/cockroachdb/errors"

// DefaultTop is the number of largest components multiplied by ComponentProduct.
const DefaultTop = 3

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("connectivity: invalid option")

// Option configures a query.
type Option func(*Options)

// Options holds tunable query parameters.
type Options struct {
	// Top is the number of largest components to multiply. Must be >= 1.
	Top int

	// Value maps the bottleneck endpoints to the reported value.
	Value EndpointFunc

	err error
}

// DefaultOptions returns Top=DefaultTop and Value=ProductOfX.
func DefaultOptions() Options {
	return Options{
		Top:   DefaultTop,
		Value: ProductOfX,
	}
}

// WithTop sets how many of the largest components are multiplied.
// Values below 1 cause the query to fail with ErrOptionViolation.
func WithTop(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "top=%d", n)
			return
		}
		o.Top = n
	}
}

// WithValue sets the function applied to the bottleneck endpoints in Solve.
// A nil fn causes the query to fail with ErrOptionViolation.
func WithValue(fn EndpointFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = errors.Wrap(ErrOptionViolation, "nil endpoint func")
			return
		}
		o.Value = fn
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
