// Package storage provides a failure-tolerant JSON key-value adapter over
// the durable store. Every persistence path in the application goes through
// this adapter so that a broken or unavailable database degrades the app to
// a session-only mode instead of crashing it.
package storage

import (
	"encoding/json"
	"log"
)

// KeyValue is the raw durable store the adapter wraps
type KeyValue interface {
	Get(userID int64, key string) ([]byte, bool, error)
	Put(userID int64, key string, value []byte) error
}

// Adapter serializes values to JSON and absorbs all storage failures.
// Read and Write never return errors; failures are logged and the caller
// continues with in-memory state.
type Adapter struct {
	kv KeyValue
}

// NewAdapter creates an adapter over a raw key-value store
func NewAdapter(kv KeyValue) *Adapter {
	return &Adapter{kv: kv}
}

// Read loads and decodes the value for a user-scoped key. On any failure
// (missing key, malformed JSON, storage unavailable) it logs and returns
// the fallback.
func Read[T any](a *Adapter, userID int64, key string, fallback T) T {
	raw, ok, err := a.kv.Get(userID, key)
	if err != nil {
		log.Printf("Error reading storage key %q: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("Error decoding storage key %q: %v", key, err)
		return fallback
	}
	return value
}

// Write encodes and persists a value under a user-scoped key. On failure it
// logs and leaves the prior persisted state untouched.
func (a *Adapter) Write(userID int64, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Error encoding storage key %q: %v", key, err)
		return
	}
	if err := a.kv.Put(userID, key, raw); err != nil {
		log.Printf("Error writing storage key %q: %v", key, err)
	}
}
