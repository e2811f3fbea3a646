package customer

import (
	"sort"

	"StoreManager/internal/catalog"
)

type MemStore struct {
	m map[string]*Customer
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[string]*Customer{}}
}

func (s *MemStore) Add(id, name string) Customer {
	c := &Customer{ID: id, Name: name, Orders: []catalog.Product{}}
	s.m[id] = c
	return clone(c)
}

func (s *MemStore) Find(id string) (Customer, bool) {
	c, ok := s.m[id]
	if !ok {
		return Customer{}, false
	}
	return clone(c), true
}

func (s *MemStore) Delete(id string) (Customer, bool) {
	c, ok := s.m[id]
	if !ok {
		return Customer{}, false
	}
	delete(s.m, id)
	return *c, true
}

func (s *MemStore) Count() int { return len(s.m) }

// List returns customers sorted by ID.
func (s *MemStore) List() []Customer {
	out := make([]Customer, 0, len(s.m))
	for _, c := range s.m {
		out = append(out, clone(c))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) AppendOrder(id string, p catalog.Product) (Customer, bool) {
	c, ok := s.m[id]
	if !ok {
		return Customer{}, false
	}
	c.Orders = append(c.Orders, p)
	return clone(c), true
}

// RemoveOrder drops the first order entry for productID. A customer that
// never ordered the product is left untouched and still reported as found.
func (s *MemStore) RemoveOrder(id, productID string) (Customer, bool) {
	c, ok := s.m[id]
	if !ok {
		return Customer{}, false
	}
	for i, p := range c.Orders {
		if p.ID == productID {
			c.Orders = append(c.Orders[:i], c.Orders[i+1:]...)
			break
		}
	}
	return clone(c), true
}

func clone(c *Customer) Customer {
	out := *c
	out.Orders = append([]catalog.Product(nil), c.Orders...)
	if out.Orders == nil {
		out.Orders = []catalog.Product{}
	}
	return out
}
