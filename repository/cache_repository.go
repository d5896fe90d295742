package repository

// CacheRepository stores serialized calculation results by key. A failed Get
// reports a miss.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
