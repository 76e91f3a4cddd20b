// Package workers provides a small fixed-size pool for running independent
// tasks concurrently.
//
// It is used by maintenance operations that fan out over many items, such as
// moving stored model files between storage backends, where unbounded
// goroutine spawning would overwhelm the target service.
package workers
