package formspec

import "os"

// Source provides raw field values by key. ok is false for missing keys,
// which verify as absent values.
type Source interface {
	Lookup(key string) (value string, ok bool)
}

// MapSource serves values from a map.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvSource serves values from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
