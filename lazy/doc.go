// Package lazy provides one-shot memoized computations.
//
// A Lazy runs its producer on the first GetValue call and returns the stored result
// on every later call. An AsyncLazy does the same for producers that take time: all
// callers that arrive before the value is ready share one in-flight computation and
// receive its outcome through a future.
//
// Failed realizations are never cached. The error reaches every caller that was
// waiting for that attempt, the memo stays uninitialized, and the next call runs the
// producer again from scratch. There is no invalidation: once realized, a memo keeps
// its value for its whole lifetime.
//
// The forwarding handles built on top of these memos live in the subpackages
// lazy/proxy (synchronous) and lazy/asyncproxy (asynchronous).
//
// Example:
//
//	conn := lazy.NewLazy(func() (*sql.DB, error) {
//	    return sql.Open("postgres", dsn)
//	})
//
//	db, err := conn.GetValue() // opens on first use only
package lazy
