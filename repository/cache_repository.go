package repository

// CacheRepository is the key-value store backing saved deal
// configurations. Values are JSON-serialized by the caller.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
