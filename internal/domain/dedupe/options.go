// Package dedupe tracks respondent keys that were already classified.
package dedupe

// Option applies a configuration option to the Deduper.
type Option func(*inMemoryDeduper)

// WithNormalizer maps every key before it is compared, e.g. strings.ToLower
// so that e-mail addresses differing only in case collide.
func WithNormalizer(fn func(string) string) Option {
	return func(d *inMemoryDeduper) {
		if fn != nil {
			d.normalize = fn
		}
	}
}

// WithCapacity presizes the seen set.
func WithCapacity(n int) Option {
	return func(d *inMemoryDeduper) {
		if n > 0 {
			d.capacity = n
		}
	}
}
