// Package asyncproxy builds asynchronous lazy handles. The value behind a handle is
// produced by a blocking producer that runs at most once successfully; every
// operation a handle forwards therefore answers with a future.
//
// Only operations that can answer with a future are forwarded: Invoke, New and member
// access. Reading a member synchronously returns a *Member, a callable stand-in
// that must be invoked to obtain the member's value (or the result of calling it).
// Structural queries such as OwnKeys or HasProperty would need the value immediately
// and fail with a lazymodel.UnsupportedOperationError instead.
//
// Example:
//
//	cfg, _ := asyncproxy.Create(asyncproxy.ForObject(loadConfig))
//
//	port, err := cfg.Member("port").Invoke(ctx).Await(ctx)
package asyncproxy
