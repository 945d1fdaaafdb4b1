package store

import (
	"time"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TopicStoreError is published on every swallowed storage failure so an
// observer can count or alert on silent data loss.
const TopicStoreError = "store.error"

var storeBucket = []byte("kv")

// Storage wraps a bbolt file as a flat string key-value namespace with
// JSON values. All reads and writes are best effort: failures are
// swallowed from the caller's view, logged and published to the bus.
// Callers must not assume a Set is durable.
type Storage struct {
	db  *bolt.DB
	bus EventBus.Bus
}

func Open(path string, bus EventBus.Bus) (*Storage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(storeBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init store bucket")
	}
	return &Storage{db: db, bus: bus}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// Reset drops every record. Used by -initdb and import tests.
func (s *Storage) Reset() {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(storeBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(storeBucket)
		return err
	})
	if err != nil {
		s.fail("reset", "", err)
	}
}

func (s *Storage) fail(op, key string, err error) {
	zap.L().Warn("storage operation failed",
		zap.String("op", op), zap.String("key", key), zap.Error(err))
	if s.bus != nil {
		s.bus.Publish(TopicStoreError, op, key, err)
	}
}

func (s *Storage) getRaw(key string) []byte {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(storeBucket).Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		s.fail("get", key, err)
		return nil
	}
	return value
}

func (s *Storage) putRaw(key string, value []byte) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Put([]byte(key), value)
	})
	if err != nil {
		s.fail("set", key, err)
	}
}

// Get decodes the JSON value under key into out. It returns false when
// the key is absent or the value cannot be read or decoded; out is left
// untouched in that case.
func (s *Storage) Get(key string, out interface{}) bool {
	raw := s.getRaw(key)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.fail("decode", key, err)
		return false
	}
	return true
}

// Set JSON-encodes val and writes it under key, best effort.
func (s *Storage) Set(key string, val interface{}) {
	data, err := json.Marshal(val)
	if err != nil {
		s.fail("encode", key, err)
		return
	}
	s.putRaw(key, data)
}

// SetSanitized behaves like Set but deep-copies the value through a
// JSON round trip and strips top-level fields named "password" and
// "token" before writing. Guards generic config blobs against
// accidentally persisted secrets.
func (s *Storage) SetSanitized(key string, val interface{}) {
	data, err := json.Marshal(val)
	if err != nil {
		s.fail("encode", key, err)
		return
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		s.fail("sanitize", key, err)
		return
	}
	if obj, isObject := generic.(map[string]interface{}); isObject {
		delete(obj, "password")
		delete(obj, "token")
		if data, err = json.Marshal(obj); err != nil {
			s.fail("sanitize", key, err)
			return
		}
	}
	s.putRaw(key, data)
}

// GetString reads a plain (non-JSON) string value, "" when absent.
func (s *Storage) GetString(key string) string {
	return string(s.getRaw(key))
}

// SetString writes a plain string value, best effort.
func (s *Storage) SetString(key, val string) {
	s.putRaw(key, []byte(val))
}

// Delete removes a key, best effort. A no-op for absent keys.
func (s *Storage) Delete(key string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(storeBucket).Delete([]byte(key))
	})
	if err != nil {
		s.fail("delete", key, err)
	}
}
