package products

import "sync"

// MemStore keeps records in a slice so that list order and the stats
// category order follow insertion order.
type MemStore struct {
	mu    sync.RWMutex
	items []Product
}

func NewMemStore() *MemStore {
	return &MemStore{items: []Product{
		{
			ID:          "p1",
			Name:        "Keyboard",
			Description: "Mechanical keyboard with hot-swappable switches",
			Price:       49.9,
			Category:    "Peripherals",
			InStock:     true,
		},
		{
			ID:          "p2",
			Name:        "Mouse",
			Description: "Wireless ergonomic mouse",
			Price:       19.9,
			Category:    "Accessories",
			InStock:     true,
		},
	}}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemStore) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *MemStore) Append(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
}

// Replace overwrites the record stored under id, keeping its position. The
// stored id always wins over whatever the replacement carries.
func (s *MemStore) Replace(id string, p Product) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p.ID = id
			s.items[i] = p
			return p, true
		}
	}
	return Product{}, false
}

func (s *MemStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
