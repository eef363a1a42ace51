package list

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	capacity int
}

func newDefaultListOptions() listOptions {
	return listOptions{
		capacity: 0,
	}
}

// WithCapacity option preallocates space for capacity elements.
//
// The zero value allocates on demand.
func WithCapacity(capacity int) Option {
	return funcOption(func(opts *listOptions) {
		if capacity < 0 {
			panic("list: negative capacity")
		}
		opts.capacity = capacity
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
