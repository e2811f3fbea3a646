package cli

import (
	"go.uber.org/zap"

	"StoreManager/internal/config"
	"StoreManager/internal/store"
)

// seedStore loads configured records. Orders naming unknown products are
// skipped with a warning, the same as a failed add-order from the menu.
func seedStore(svc *store.Service, seed config.Seed, log *zap.Logger) {
	for _, p := range seed.Products {
		svc.AddProduct(p.ID, p.Name, p.Price)
	}
	for _, c := range seed.Customers {
		svc.AddCustomer(c.ID, c.Name)
		for _, pid := range c.Orders {
			if _, _, err := svc.AddOrder(c.ID, pid); err != nil {
				log.Warn("seed order skipped", zap.String("customer_id", c.ID), zap.Error(err))
			}
		}
	}
	if n := len(seed.Products) + len(seed.Customers); n > 0 {
		log.Info("store seeded",
			zap.Int("products", svc.CountProducts()),
			zap.Int("customers", len(seed.Customers)),
		)
	}
}
