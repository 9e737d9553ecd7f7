package memo

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithRetainedFailures makes the cache remember failures for which keep
// returns true. Use it for definitive answers such as "not found"; transient
// failures should stay out of the cache so the caller can try again.
func WithRetainedFailures(keep func(error) bool) Option {
	return func(c *Cache) {
		if keep != nil {
			c.retain = keep
		}
	}
}
