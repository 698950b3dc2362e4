package history

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"

	"media-server/report"
)

// Entry is the archived summary of one generated report
type Entry struct {
	ID          uuid.UUID     `json:"id"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Totals      report.Totals `json:"totals"`
	Rows        int           `json:"rows"`
	Files       int           `json:"files"`
	Newest      string        `json:"newest,omitempty"` // most recent date in the report
	Oldest      string        `json:"oldest,omitempty"`
}

func newEntry(r *report.Report, now time.Time) (*Entry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	e := &Entry{
		ID:          id,
		GeneratedAt: now,
		Totals:      r.Totals,
		Rows:        len(r.Rows),
		Files:       r.Files,
	}
	if len(r.Rows) > 0 {
		e.Newest = r.Rows[0].Date
		e.Oldest = r.Rows[len(r.Rows)-1].Date
	}
	return e, nil
}

// Serialize encodes the entry using gob
func (e *Entry) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize decodes an entry from gob
func (e *Entry) Deserialize(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))
	return dec.Decode(e)
}
