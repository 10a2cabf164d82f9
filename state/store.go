// Package state provides the leased record store backing a splitter contract.
//
// Records fall into two classes with different lease windows: config-class
// records (contract configuration, commission policy) and data-class records
// (per-holder, per-asset and per-listing state). Every successful Get or Put
// renews the record's lease; a record whose lease has lapsed reads as absent.
package state

import (
	"bytes"
	"encoding/gob"
	"sync"
	"time"

	"github.com/bitfsorg/libsplitter-go/config"
)

// KV is a typed key-value store with lease renewal.
type KV interface {
	// Get decodes the record at key into out and reports whether it exists.
	// A successful read renews the record's lease.
	Get(key string, out any) (bool, error)

	// Put stores value at key and renews the record's lease.
	Put(key string, value any) error

	// Delete removes the record at key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// Store groups the two lease classes backing a splitter contract.
type Store interface {
	// Config holds contract-wide records.
	Config() KV

	// Data holds per-holder, per-asset and per-listing records.
	Data() KV
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// MemStore is an in-memory implementation of Store for testing and embedding.
type MemStore struct {
	config *memKV
	data   *memKV
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates a MemStore with the default lease windows.
func NewMemStore() *MemStore {
	return NewMemStoreWithClock(time.Now, config.DefaultConfigLease, config.DefaultDataLease)
}

// NewMemStoreWithClock creates a MemStore with an explicit clock and lease
// windows. Tests use this to drive lease expiry deterministically.
func NewMemStoreWithClock(now func() time.Time, configLease, dataLease time.Duration) *MemStore {
	return &MemStore{
		config: newMemKV(now, configLease),
		data:   newMemKV(now, dataLease),
	}
}

// Config returns the config-class KV.
func (s *MemStore) Config() KV { return s.config }

// Data returns the data-class KV.
func (s *MemStore) Data() KV { return s.data }

type memRecord struct {
	value   []byte
	expires time.Time
}

type memKV struct {
	mu      sync.Mutex
	now     func() time.Time
	window  time.Duration
	records map[string]memRecord
}

// Compile-time interface check.
var _ KV = (*memKV)(nil)

func newMemKV(now func() time.Time, window time.Duration) *memKV {
	return &memKV{
		now:     now,
		window:  window,
		records: make(map[string]memRecord),
	}
}

func (kv *memKV) Get(key string, out any) (bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	rec, ok := kv.records[key]
	if !ok {
		return false, nil
	}
	if !rec.expires.After(kv.now()) {
		delete(kv.records, key)
		return false, nil
	}
	if err := decodeGob(rec.value, out); err != nil {
		return false, err
	}

	// Renew the lease on read.
	rec.expires = kv.now().Add(kv.window)
	kv.records[key] = rec
	return true, nil
}

func (kv *memKV) Put(key string, value any) error {
	data, err := encodeGob(value)
	if err != nil {
		return err
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.records[key] = memRecord{value: data, expires: kv.now().Add(kv.window)}
	return nil
}

func (kv *memKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.records, key)
	return nil
}
