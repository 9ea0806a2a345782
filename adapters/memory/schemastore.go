package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/artpar/varmsg/ports"
)

// SchemaStore implements ports.SchemaStore in memory.
type SchemaStore struct {
	mu      sync.RWMutex
	records map[string]msgtype.Record
}

// NewSchemaStore creates an empty in-memory schema store.
func NewSchemaStore() *SchemaStore {
	return &SchemaStore{records: make(map[string]msgtype.Record)}
}

// Save stores a record, replacing any record with the same data type.
func (s *SchemaStore) Save(_ context.Context, rec msgtype.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Type.DataType] = rec
	return nil
}

// Get retrieves the record for a data type.
func (s *SchemaStore) Get(_ context.Context, dataType string) (msgtype.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[dataType]
	if !ok {
		return msgtype.Record{}, ports.ErrNotFound
	}
	return rec, nil
}

// List returns all records ordered by data type.
func (s *SchemaStore) List(_ context.Context) ([]msgtype.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := make([]msgtype.Record, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Type.DataType < recs[j].Type.DataType
	})
	return recs, nil
}

// Delete removes the record for a data type.
func (s *SchemaStore) Delete(_ context.Context, dataType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[dataType]; !ok {
		return ports.ErrNotFound
	}
	delete(s.records, dataType)
	return nil
}
