package catalog

// MemStore keeps products keyed by ID plus the order in which IDs were first
// added. Re-adding an existing ID replaces the record in place.
type MemStore struct {
	m     map[string]Product
	order []string
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]Product{}}
}

func (s *MemStore) Add(id, name string, price float64) Product {
	p := Product{ID: id, Name: name, Price: price}
	if _, ok := s.m[id]; !ok {
		s.order = append(s.order, id)
	}
	s.m[id] = p
	return p
}

func (s *MemStore) Find(id string) (Product, bool) {
	p, ok := s.m[id]
	return p, ok
}

func (s *MemStore) Delete(id string) (Product, bool) {
	p, ok := s.m[id]
	if !ok {
		return Product{}, false
	}
	delete(s.m, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return p, true
}

func (s *MemStore) Count() int { return len(s.m) }

func (s *MemStore) List() []Product {
	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.m[id])
	}
	return out
}
