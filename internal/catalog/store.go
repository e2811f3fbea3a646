package catalog

type Product struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

type Store interface {
	Add(id, name string, price float64) Product
	Find(id string) (Product, bool)
	Delete(id string) (Product, bool)
	Count() int
	List() []Product
}

func NewStore() Store {
	return NewMemStore()
}
