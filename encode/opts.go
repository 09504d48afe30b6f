package encode

// DefaultInitialCapacity is the starting size of the output buffer.
const DefaultInitialCapacity = 256

type encOpts struct {
	initialCapacity int
}

type EncodeOption func(*encOpts)

// WithInitialCapacity sizes the output buffer up front, avoiding
// growth rounds when the caller knows roughly how large the text is.
func WithInitialCapacity(n int) EncodeOption {
	return func(o *encOpts) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
