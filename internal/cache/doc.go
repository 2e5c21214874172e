// Package cache provides a small bounded memo for values that are costly
// to derive but keyed by cheap comparable keys.
//
//	m := cache.New[color.NRGBA, string](256)
//	sym := m.GetOrCreate(c, func() string { return lookup(c) })
//
// A Memo is safe for concurrent use and must not be copied after creation.
package cache
