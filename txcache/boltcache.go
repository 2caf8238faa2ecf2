package txcache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketTxHex = []byte("tx_hex")

// entry is the stored form of a cached transaction.
type entry struct {
	TxHex    string
	CachedAt int64
}

// BoltCache keeps raw transaction hex of confirmed transactions in a bbolt
// database. Confirmed transactions never change, so entries do not expire.
type BoltCache struct {
	db  *bbolt.DB
	now func() time.Time
}

// Open opens or creates the cache database at dbPath.
// The parent directory is created if it does not exist.
func Open(dbPath string) (*BoltCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("txcache: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("txcache: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTxHex)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("txcache: create bucket: %w", err)
	}

	return &BoltCache{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (c *BoltCache) Close() error { return c.db.Close() }

// GetTxHex returns the cached hex for txid. The boolean is false on a miss.
func (c *BoltCache) GetTxHex(txid string) (string, bool, error) {
	if txid == "" {
		return "", false, ErrEmptyTxID
	}

	var e entry
	var found bool
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTxHex).Get([]byte(txid))
		if data == nil {
			return nil
		}
		found = true
		return gob.NewDecoder(bytes.NewReader(data)).Decode(&e)
	})
	if err != nil {
		return "", false, fmt.Errorf("txcache: decode %s: %w", txid, err)
	}
	return e.TxHex, found, nil
}

// PutTxHex stores txHex under txid, replacing any previous entry.
func (c *BoltCache) PutTxHex(txid, txHex string) error {
	if txid == "" {
		return ErrEmptyTxID
	}
	if txHex == "" {
		return ErrEmptyTxHex
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entry{TxHex: txHex, CachedAt: c.now().Unix()}); err != nil {
		return fmt.Errorf("txcache: encode %s: %w", txid, err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketTxHex).Put([]byte(txid), buf.Bytes()); err != nil {
			return fmt.Errorf("txcache: put %s: %w", txid, err)
		}
		return nil
	})
}

// Delete removes txid from the cache. Deleting a missing entry is not an error.
func (c *BoltCache) Delete(txid string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTxHex).Delete([]byte(txid))
	})
}

// Len returns the number of cached transactions.
func (c *BoltCache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketTxHex).Stats().KeyN
		return nil
	})
	return n, err
}
