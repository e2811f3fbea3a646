package customer

import "StoreManager/internal/catalog"

// Customer owns its order list. Entries are snapshots of the product taken
// when the order was placed, so they survive deletion from the catalog.
type Customer struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Orders []catalog.Product `json:"orders"`
}

type Store interface {
	Add(id, name string) Customer
	Find(id string) (Customer, bool)
	Delete(id string) (Customer, bool)
	Count() int
	List() []Customer
	AppendOrder(id string, p catalog.Product) (Customer, bool)
	RemoveOrder(id, productID string) (Customer, bool)
}

func NewStore() Store {
	return NewMemStore()
}
