// Package history keeps an append-only archive of report summaries in a
// bbolt database. It is never read back in place of a fresh scan.
package history

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"media-server/report"
)

var reportsBucket = []byte("reports")

type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens or creates the archive at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(reportsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history bucket: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Append records a summary of r. Keys are time-ordered uuids, so cursor order
// is insertion order.
func (s *Store) Append(r *report.Report) (*Entry, error) {
	e, err := newEntry(r, s.now())
	if err != nil {
		return nil, fmt.Errorf("new history id: %w", err)
	}

	data, err := e.Serialize()
	if err != nil {
		return nil, fmt.Errorf("encode history entry: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(reportsBucket).Put(e.ID[:], data)
	})
	if err != nil {
		return nil, fmt.Errorf("write history entry: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]Entry, error) {
	entries := []Entry{}
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(reportsBucket).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var e Entry
			if err := e.Deserialize(v); err != nil {
				return fmt.Errorf("decode history entry %x: %w", k, err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
