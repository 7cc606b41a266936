package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"verifact/internal/fingerprint"
)

// ErrBlobNotFound is returned by Get for an unknown blob id.
var ErrBlobNotFound = errors.New("storage: blob not found")

// BadgerBlobs is a content-addressed blob store over an embedded Badger
// database. Blob ids are hashes of the canonical JSON bytes, so storing
// the same object twice is a no-op.
type BadgerBlobs struct {
	db *badger.DB
}

// OpenBlobs opens (or creates) a blob store at path. An empty path opens
// an in-memory store, used in tests.
func OpenBlobs(path string) (*BadgerBlobs, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open blob store: %w", err)
	}
	return &BadgerBlobs{db: db}, nil
}

// Close releases the underlying database.
func (b *BadgerBlobs) Close() error {
	return b.db.Close()
}

// Put stores v as JSON and returns its content id.
func (b *BadgerBlobs) Put(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("storage: marshal blob: %w", err)
	}
	id := fingerprint.OfBytes(data)
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("blob:"+id), data)
	})
	if err != nil {
		return "", fmt.Errorf("storage: put blob: %w", err)
	}
	return id, nil
}

// Get unmarshals the blob with the given id into v.
func (b *BadgerBlobs) Get(id string, v any) error {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("blob:" + id))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrBlobNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: get blob: %w", err)
	}
	return json.Unmarshal(data, v)
}
