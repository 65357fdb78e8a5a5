package repo

import (
	"context"
	"sync"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// MemoryStore is a process-local CartStore, used in tests and when no
// Redis address is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*cartDocument
}

// NewMemoryStore creates an empty in-memory CartStore.
func NewMemoryStore() contracts.CartStore {
	return &MemoryStore{carts: make(map[string]*cartDocument)}
}

func (s *MemoryStore) Lines(_ context.Context, cartID string) ([]*domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}
	lines := make([]*domain.CartLine, len(doc.Lines))
	for i, l := range doc.Lines {
		lines[i] = copyLine(l)
	}
	return lines, nil
}

func (s *MemoryStore) Get(_ context.Context, cartID, productID string) (*domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartLineNotFound
	}
	i := doc.index(productID)
	if i < 0 {
		return nil, domain.ErrCartLineNotFound
	}
	return copyLine(doc.Lines[i]), nil
}

func (s *MemoryStore) Put(_ context.Context, cartID string, line *domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.carts[cartID]
	if !ok {
		doc = &cartDocument{}
		s.carts[cartID] = doc
	}
	doc.put(copyLine(line))
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, cartID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.carts[cartID]
	if !ok || !doc.remove(productID) {
		return domain.ErrCartLineNotFound
	}
	if len(doc.Lines) == 0 {
		delete(s.carts, cartID)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	return nil
}

func copyLine(l *domain.CartLine) *domain.CartLine {
	cp := *l
	cp.Product = l.Product.Copy()
	return &cp
}
