package parse

// DefaultNestingLimit bounds array/object recursion depth.
const DefaultNestingLimit = 1000

type parseOpts struct {
	nestingLimit int
}

type ParseOption func(*parseOpts)

// WithNestingLimit overrides DefaultNestingLimit for one call.
func WithNestingLimit(n int) ParseOption {
	return func(o *parseOpts) { o.nestingLimit = n }
}
