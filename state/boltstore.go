package state

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/bitfsorg/libsplitter-go/config"
)

var (
	bucketConfig       = []byte("config")
	bucketConfigLeases = []byte("config_leases")
	bucketData         = []byte("data")
	bucketDataLeases   = []byte("data_leases")
)

// BoltStore is a bbolt-backed implementation of Store. Records and their
// lease deadlines live in paired buckets per class.
type BoltStore struct {
	db     *bbolt.DB
	config *boltKV
	data   *boltKV
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database described by cfg.
// The data directory is created if it does not exist.
func OpenBoltStore(cfg config.Config) (*BoltStore, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cfg.DataDir, "splitter.db")
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("state: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("state: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketConfig, bucketConfigLeases, bucketData, bucketDataLeases} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("state: create buckets: %w", err)
	}

	return &BoltStore{
		db:     db,
		config: &boltKV{db: db, bucket: bucketConfig, leases: bucketConfigLeases, now: time.Now, window: cfg.ConfigLease},
		data:   &boltKV{db: db, bucket: bucketData, leases: bucketDataLeases, now: time.Now, window: cfg.DataLease},
	}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Config returns the config-class KV.
func (s *BoltStore) Config() KV { return s.config }

// Data returns the data-class KV.
func (s *BoltStore) Data() KV { return s.data }

// boltKV serves one record class of a BoltStore.
type boltKV struct {
	db     *bbolt.DB
	bucket []byte
	leases []byte
	now    func() time.Time
	window time.Duration
}

// Compile-time interface check.
var _ KV = (*boltKV)(nil)

// leaseValue encodes a lease deadline as 8 big-endian bytes of unix nanoseconds.
func leaseValue(deadline time.Time) []byte {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, uint64(deadline.UnixNano()))
	return v
}

func leaseDeadline(v []byte) time.Time {
	if len(v) != 8 {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(v)))
}

// Get runs inside an Update transaction because a successful read renews the
// record's lease.
func (kv *boltKV) Get(key string, out any) (bool, error) {
	var found bool
	err := kv.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(kv.bucket)
		lb := tx.Bucket(kv.leases)
		k := []byte(key)

		data := b.Get(k)
		if data == nil {
			return nil
		}
		if !leaseDeadline(lb.Get(k)).After(kv.now()) {
			// Lease lapsed: evict the record.
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("boltstore: evict record: %w", err)
			}
			if err := lb.Delete(k); err != nil {
				return fmt.Errorf("boltstore: evict lease: %w", err)
			}
			return nil
		}
		if err := decodeGob(data, out); err != nil {
			return fmt.Errorf("boltstore: decode record: %w", err)
		}
		if err := lb.Put(k, leaseValue(kv.now().Add(kv.window))); err != nil {
			return fmt.Errorf("boltstore: renew lease: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (kv *boltKV) Put(key string, value any) error {
	data, err := encodeGob(value)
	if err != nil {
		return fmt.Errorf("boltstore: encode record: %w", err)
	}

	return kv.db.Update(func(tx *bbolt.Tx) error {
		k := []byte(key)
		if err := tx.Bucket(kv.bucket).Put(k, data); err != nil {
			return fmt.Errorf("boltstore: put record: %w", err)
		}
		if err := tx.Bucket(kv.leases).Put(k, leaseValue(kv.now().Add(kv.window))); err != nil {
			return fmt.Errorf("boltstore: put lease: %w", err)
		}
		return nil
	})
}

func (kv *boltKV) Delete(key string) error {
	return kv.db.Update(func(tx *bbolt.Tx) error {
		k := []byte(key)
		if err := tx.Bucket(kv.bucket).Delete(k); err != nil {
			return fmt.Errorf("boltstore: delete record: %w", err)
		}
		if err := tx.Bucket(kv.leases).Delete(k); err != nil {
			return fmt.Errorf("boltstore: delete lease: %w", err)
		}
		return nil
	})
}
