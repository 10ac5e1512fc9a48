// Package kv provides the flat key-value stores backing session
// persistence. Two tiers exist: a durable store that survives process
// restarts and an ephemeral store scoped to the process lifetime. The
// session manager decides which tier is authoritative at login time.
package kv

// Store is a flat string key-value store
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	// Set stores the value under key, replacing any existing value
	Set(key, value string) error
	// Remove deletes key; removing an absent key is not an error
	Remove(key string) error
	// Clear deletes every key in the store
	Clear() error
}
