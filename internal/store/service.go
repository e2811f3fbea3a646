package store

import (
	"sync"

	"go.uber.org/zap"

	"StoreManager/internal/catalog"
	"StoreManager/internal/customer"
)

type Deps struct {
	Products  catalog.Store
	Customers customer.Store
	Log       *zap.Logger
	Metrics   *Metrics
}

// Summary is the per-customer report line.
type Summary struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}

// Service is the single owner of the catalog and the customer registry for a
// session. Every method is atomic with respect to the others.
type Service struct {
	mu        sync.RWMutex
	products  catalog.Store
	customers customer.Store
	log       *zap.Logger
	metrics   *Metrics
}

func NewService(deps Deps) *Service {
	s := &Service{
		products:  deps.Products,
		customers: deps.Customers,
		log:       deps.Log,
		metrics:   deps.Metrics,
	}
	if s.products == nil {
		s.products = catalog.NewStore()
	}
	if s.customers == nil {
		s.customers = customer.NewStore()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.metrics.setSizes(s.products.Count(), s.customers.Count())
	return s
}

func (s *Service) AddProduct(id, name string, price float64) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.products.Add(id, name, price)
	s.log.Debug("product added", zap.String("product_id", id), zap.Float64("price", price))
	s.record("add_product")
	return p
}

func (s *Service) ListProducts() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.List()
}

func (s *Service) FindProduct(id string) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products.Find(id)
	if !ok {
		return catalog.Product{}, s.fail("find_product", productNotFound(id))
	}
	s.metrics.observe("find_product", nil)
	return p, nil
}

// DeleteProduct leaves existing orders for the product in place.
func (s *Service) DeleteProduct(id string) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.Delete(id)
	if !ok {
		return catalog.Product{}, s.fail("delete_product", productNotFound(id))
	}
	s.log.Debug("product deleted", zap.String("product_id", id))
	s.record("delete_product")
	return p, nil
}

func (s *Service) CountProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.Count()
}

func (s *Service) AddCustomer(id, name string) customer.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.customers.Add(id, name)
	s.log.Debug("customer added", zap.String("customer_id", id))
	s.record("add_customer")
	return c
}

func (s *Service) FindCustomer(id string) (customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers.Find(id)
	if !ok {
		return customer.Customer{}, s.fail("find_customer", customerNotFound(id))
	}
	return c, nil
}

func (s *Service) ListCustomers() []customer.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.List()
}

func (s *Service) DeleteCustomer(id string) (customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers.Delete(id)
	if !ok {
		return customer.Customer{}, s.fail("delete_customer", customerNotFound(id))
	}
	s.log.Debug("customer deleted", zap.String("customer_id", id), zap.Int("orders", len(c.Orders)))
	s.record("delete_customer")
	return c, nil
}

// AddOrder appends a snapshot of the product to the customer's orders. Both
// records are looked up before anything is mutated.
func (s *Service) AddOrder(customerID, productID string) (customer.Customer, catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.lookupPair(customerID, productID)
	if err != nil {
		return customer.Customer{}, catalog.Product{}, s.fail("add_order", err)
	}

	c, _ := s.customers.AppendOrder(customerID, p)
	s.log.Debug("order added", zap.String("customer_id", customerID), zap.String("product_id", productID))
	s.record("add_order")
	return c, p, nil
}

// RemoveOrder drops the first order entry for the product. If the customer
// never ordered it the call still succeeds.
func (s *Service) RemoveOrder(customerID, productID string) (customer.Customer, catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.lookupPair(customerID, productID)
	if err != nil {
		return customer.Customer{}, catalog.Product{}, s.fail("remove_order", err)
	}

	c, _ := s.customers.RemoveOrder(customerID, productID)
	s.log.Debug("order removed", zap.String("customer_id", customerID), zap.String("product_id", productID))
	s.record("remove_order")
	return c, p, nil
}

// UpdateOrder is the flag-driven entry point used by the console menu.
func (s *Service) UpdateOrder(customerID, productID string, add bool) (customer.Customer, catalog.Product, error) {
	if add {
		return s.AddOrder(customerID, productID)
	}
	return s.RemoveOrder(customerID, productID)
}

func (s *Service) ViewOrders(customerID string) ([]catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers.Find(customerID)
	if !ok {
		return nil, s.fail("view_orders", customerNotFound(customerID))
	}
	s.metrics.observe("view_orders", nil)
	return c.Orders, nil
}

func (s *Service) Summaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.customers.List()
	out := make([]Summary, 0, len(list))
	for _, c := range list {
		out = append(out, Summary{CustomerID: c.ID, Name: c.Name, OrderCount: len(c.Orders)})
	}
	return out
}

// lookupPair reports the customer first when both are missing.
func (s *Service) lookupPair(customerID, productID string) (catalog.Product, error) {
	if _, ok := s.customers.Find(customerID); !ok {
		return catalog.Product{}, customerNotFound(customerID)
	}
	p, ok := s.products.Find(productID)
	if !ok {
		return catalog.Product{}, productNotFound(productID)
	}
	return p, nil
}

func (s *Service) fail(op string, err error) error {
	s.log.Info("lookup failed", zap.String("op", op), zap.Error(err))
	s.metrics.observe(op, err)
	return err
}

// record must be called with the write lock held.
func (s *Service) record(op string) {
	s.metrics.observe(op, nil)
	s.metrics.setSizes(s.products.Count(), s.customers.Count())
}
