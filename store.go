package fra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store is the collection of records, kept in insertion order.
//
// Every mutation reads the whole collection, applies the change and saves the
// whole collection back. The storage is assumed to have a single writer.
type Store struct {
	storage Storage
	log     logrus.FieldLogger
	newID   func() string
}

// NewStore returns a store persisted in storage. log may be nil.
func NewStore(storage Storage, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{
		storage: storage,
		log:     log,
		newID:   func() string { return uuid.NewString() },
	}
}

// List returns all the records in insertion order.
//
// Missing, unreadable or corrupted content reads as an empty collection.
// Within a readable collection, records that cannot be decoded are skipped.
func (s *Store) List() []Record {
	content, err := s.storage.Load()
	if err != nil {
		s.log.WithError(err).Warn("cannot load records, using an empty collection")
		return []Record{}
	}
	if len(content) == 0 {
		return []Record{}
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(content, &elements); err != nil {
		s.log.WithError(err).Warn("stored records are corrupted, using an empty collection")
		return []Record{}
	}
	records := make([]Record, 0, len(elements))
	for i, e := range elements {
		if bytes.Equal(bytes.TrimSpace(e), []byte("null")) {
			s.log.WithField("index", i).Warn("skipping a null record")
			continue
		}
		var r Record
		if err := json.Unmarshal(e, &r); err != nil {
			s.log.WithError(err).WithField("index", i).Warn("skipping a corrupted record")
			continue
		}
		records = append(records, r)
	}
	return records
}

// Get returns the record with this id.
func (s *Store) Get(id string) (Record, bool) {
	for _, r := range s.List() {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Upsert saves r and returns its id.
//
// A record whose id is already stored replaces it in place. A record with an
// unknown id is appended, and a record without id is given a fresh one and
// appended. Ratios are recomputed from the figures before saving.
func (s *Store) Upsert(r Record) (string, error) {
	records := s.List()
	if r.ID == "" {
		r.ID = s.newID()
	}
	r = NewRecord(r.ID, r.Name, r.Figures())

	replaced := false
	for i := range records {
		if records[i].ID == r.ID {
			records[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, r)
	}
	if err := s.save(records); err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"id": r.ID, "name": r.Name, "replaced": replaced}).Debug("record saved")
	return r.ID, nil
}

// RemoveByID deletes the record with this id. Removing an unknown id is not
// an error.
func (s *Store) RemoveByID(id string) error {
	records := s.List()
	next := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"id": id, "removed": len(records) - len(next)}).Debug("record removed")
	return nil
}

// Query evaluates a JSONPath expression against the collection, as persisted.
func (s *Store) Query(path string) (any, error) {
	content, err := json.Marshal(s.List())
	if err != nil {
		return nil, fmt.Errorf("cannot encode records: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("cannot decode records: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return jval, nil
}

func (s *Store) save(records []Record) error {
	content, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	if err := s.storage.Save(content); err != nil {
		return fmt.Errorf("cannot save records: %w", err)
	}
	return nil
}
