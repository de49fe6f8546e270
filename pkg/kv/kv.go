// Package kv provides the string-keyed persistence medium the store writes
// its serialized collections through, with interchangeable drivers:
//
//   - "memory" — process-local map (tests, throwaway runs)
//   - "file"   — one file per key under a root directory (default)
//   - "redis"  — Redis string values
//   - "sql"    — a single key/value table via GORM (sqlite, postgres, mysql, sqlserver)
//   - "mongo"  — one document per key in a MongoDB collection
//   - "s3"     — one object per key in S3-compatible object storage
//
// Quick start:
//
//	medium, err := kv.Open()            // driver from KV_DRIVER
//	medium, err := kv.OpenDriver("redis")
//
// Every value is a complete JSON document; drivers never inspect it.
package kv

import (
	"fmt"
	"sync"

	"github.com/familycar/datastore/config"
)

// Medium is the persistence contract: a synchronous string-keyed store.
// Get reports (value, present, error); a missing key is not an error.
// Set overwrites unconditionally. Remove is a no-op for absent keys.
type Medium interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Factory builds a connected Medium.
type Factory func() (Medium, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func init() {
	registry["memory"] = func() (Medium, error) { return NewMemory(), nil }
	registry["file"] = func() (Medium, error) { return NewFile("") }
	registry["redis"] = func() (Medium, error) { return NewRedis() }
	registry["sql"] = func() (Medium, error) { return NewSQL() }
	registry["mongo"] = func() (Medium, error) { return NewMongo() }
	registry["s3"] = func() (Medium, error) { return NewS3() }
}

// Register plugs in a custom driver factory under name, overriding any
// built-in driver of the same name.
func Register(name string, fn Factory) {
	registryMu.Lock()
	registry[name] = fn
	registryMu.Unlock()
}

// Open opens the driver selected by config (KV_DRIVER env var, default "file").
func Open() (Medium, error) {
	return OpenDriver(config.KVDriver())
}

// OpenDriver opens the named driver.
func OpenDriver(name string) (Medium, error) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("kv: driver %q is not registered", name)
	}
	return fn()
}
