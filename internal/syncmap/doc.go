// Package syncmap offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex. It backs the per-execution number format cache and the
// named table transformer registry.
package syncmap
