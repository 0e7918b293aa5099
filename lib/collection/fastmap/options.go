package fastmap

// Options configures a FastMap at construction time.
type Options struct {
	// InitialCapacity is the starting table size; it is rounded up to a
	// power of two and acts as the shrink floor.
	InitialCapacity int
	// MaxLoadPercent is the high-water mark: the table doubles when
	// size*100 > capacity*MaxLoadPercent.
	MaxLoadPercent int
	// MinLoadPercent is the low-water mark: the table halves when
	// size*100 < capacity*MinLoadPercent (down to InitialCapacity).
	MinLoadPercent int
}

// DefaultOptions returns the default FastMap options.
func DefaultOptions() *Options {
	return &Options{
		InitialCapacity: 16,
		MaxLoadPercent:  75,
		MinLoadPercent:  20,
	}
}

// normalize fills zero fields with defaults and rounds the capacity up to a
// power of two.
func (o *Options) normalize() Options {
	opts := *DefaultOptions()
	if o != nil {
		if o.InitialCapacity > 0 {
			opts.InitialCapacity = o.InitialCapacity
		}
		if o.MaxLoadPercent > 0 {
			opts.MaxLoadPercent = o.MaxLoadPercent
		}
		if o.MinLoadPercent > 0 {
			opts.MinLoadPercent = o.MinLoadPercent
		}
	}
	opts.InitialCapacity = ceilPow2(opts.InitialCapacity)
	return opts
}

func ceilPow2(n int) int {
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}
