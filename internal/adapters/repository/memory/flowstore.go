// Package memory provides an in-memory flow document store, suitable for
// tests and single-process editors.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zeptofine/nodeflow/internal/core/document"
	"github.com/zeptofine/nodeflow/pkg/serialization"
)

// FlowStore implements document.Store with thread-safe in-memory storage.
// Documents are kept in serialized form so stored state is decoupled from
// the caller's document instance.
type FlowStore struct {
	mu         sync.RWMutex
	flows      map[string][]byte
	serializer *serialization.Serializer
}

// NewFlowStore creates an in-memory store. A nil serializer uses the
// default msgpack+zstd pipeline.
func NewFlowStore(serializer *serialization.Serializer) *FlowStore {
	if serializer == nil {
		serializer = serialization.Default()
	}
	return &FlowStore{
		flows:      make(map[string][]byte),
		serializer: serializer,
	}
}

// Save persists a flow document under an identifier.
func (s *FlowStore) Save(_ context.Context, id string, doc *document.Document) error {
	if id == "" {
		return document.ErrInvalidDocumentID
	}
	if doc == nil {
		return document.ErrNilDocument
	}

	blob, err := s.serializer.Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[id] = blob
	return nil
}

// Load retrieves a flow document by identifier.
func (s *FlowStore) Load(_ context.Context, id string) (*document.Document, error) {
	if id == "" {
		return nil, document.ErrInvalidDocumentID
	}

	s.mu.RLock()
	blob, ok := s.flows[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", document.ErrDocumentNotFound, id)
	}

	var doc document.Document
	if err := s.serializer.Deserialize(blob, &doc); err != nil {
		return nil, fmt.Errorf("failed to deserialize document: %w", err)
	}
	return &doc, nil
}

// List returns the sorted identifiers of stored documents.
func (s *FlowStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.flows))
	for id := range s.flows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a stored document.
func (s *FlowStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[id]; !ok {
		return fmt.Errorf("%w: %s", document.ErrDocumentNotFound, id)
	}
	delete(s.flows, id)
	return nil
}
