// Package cache provides Memo, a generic, thread-safe, append-only cache for
// values that are expensive to build and never change once built, such as
// compiled date formatters.
//
// Entries are created lazily by GetOrCreate and are never evicted; the cache
// is meant for small, finite key spaces.
//
// # Construction
//
// The build function runs without holding the lock. When two goroutines miss
// on the same key at once, both build a value, the first one stored wins and
// the other is discarded. Callers always see a fully built value.
//
//	formatters := cache.NewMemo[string, *Formatter]()
//
//	f, err := formatters.GetOrCreate("yyyy-MM-dd", func() (*Formatter, error) {
//		return compile("yyyy-MM-dd")
//	})
//
// Build errors are returned to the caller and nothing is stored.
package cache
