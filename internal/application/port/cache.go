package port

// Cache is a bounded, concurrency-safe key-value store. Implementations
// may drop entries at any time, so callers must treat a miss as normal.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
	Len() int
}
