package storage

import (
	"errors"
	"testing"
)

type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(userID int64, key string) ([]byte, bool, error) {
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memoryKV) Put(userID int64, key string, value []byte) error {
	m.data[key] = value
	return nil
}

type brokenKV struct{}

func (brokenKV) Get(userID int64, key string) ([]byte, bool, error) {
	return nil, false, errors.New("storage unavailable")
}

func (brokenKV) Put(userID int64, key string, value []byte) error {
	return errors.New("storage unavailable")
}

func TestReadWriteRoundTrip(t *testing.T) {
	adapter := NewAdapter(newMemoryKV())

	type profile struct {
		Name   string `json:"name"`
		Points int    `json:"points"`
	}

	adapter.Write(1, "profile", profile{Name: "Sara", Points: 500})

	got := Read(adapter, 1, "profile", profile{})
	if got.Name != "Sara" || got.Points != 500 {
		t.Errorf("Read() = %+v, want Name=Sara Points=500", got)
	}
}

func TestReadMissingKeyReturnsFallback(t *testing.T) {
	adapter := NewAdapter(newMemoryKV())

	got := Read(adapter, 1, "missing", 42)
	if got != 42 {
		t.Errorf("Read() = %d, want fallback 42", got)
	}
}

func TestReadMalformedValueReturnsFallback(t *testing.T) {
	kv := newMemoryKV()
	kv.data["bad"] = []byte("{not json")
	adapter := NewAdapter(kv)

	got := Read(adapter, 1, "bad", "fallback")
	if got != "fallback" {
		t.Errorf("Read() = %q, want fallback", got)
	}
}

func TestBrokenStorageNeverPanicsOrErrors(t *testing.T) {
	adapter := NewAdapter(brokenKV{})

	// Write silently absorbs the failure
	adapter.Write(1, "key", map[string]int{"a": 1})

	// Read falls back
	got := Read(adapter, 1, "key", "default")
	if got != "default" {
		t.Errorf("Read() = %q, want default", got)
	}
}

func TestWriteUnencodableValueLeavesStoreUntouched(t *testing.T) {
	kv := newMemoryKV()
	adapter := NewAdapter(kv)

	adapter.Write(1, "key", "before")
	adapter.Write(1, "key", func() {}) // not JSON-encodable

	got := Read(adapter, 1, "key", "")
	if got != "before" {
		t.Errorf("Read() = %q, want prior value preserved", got)
	}
}
