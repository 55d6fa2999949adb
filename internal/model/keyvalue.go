package model

// KeyValueStore persists session state across process restarts. The
// session store is its only writer; implementations must make Delete
// of several keys atomic so a logout never leaves a partial session.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(keys ...string) error
}
