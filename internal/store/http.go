package store

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"StoreManager/internal/catalog"
	"StoreManager/internal/customer"
	"StoreManager/pkg/kit"
)

type Server struct {
	Service *Service
	Log     *zap.Logger
}

type addProductReq struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type addCustomerReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type orderReq struct {
	ProductID string `json:"product_id"`
}

type updateOrderReq struct {
	ProductID string `json:"product_id"`
	Add       bool   `json:"add"`
}

type orderResp struct {
	Customer customer.Customer `json:"customer"`
	Product  catalog.Product   `json:"product"`
}

// Routes registers reads openly and wraps every mutation in guard.
func (s *Server) Routes(guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.listProducts)
	r.Get("/products/count", s.countProducts)
	r.Get("/products/{id}", s.getProduct)

	r.Get("/customers", s.listSummaries)
	r.Get("/customers/{id}", s.getCustomer)
	r.Get("/customers/{id}/orders", s.viewOrders)

	r.Group(func(pr chi.Router) {
		pr.Use(guard)

		pr.Post("/products", s.addProduct)
		pr.Delete("/products/{id}", s.deleteProduct)

		pr.Post("/customers", s.addCustomer)
		pr.Delete("/customers/{id}", s.deleteCustomer)

		pr.Post("/customers/{id}/orders", s.addOrder)
		pr.Patch("/customers/{id}/orders", s.updateOrder)
		pr.Delete("/customers/{id}/orders/{productID}", s.removeOrder)
	})

	return r
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Service.ListProducts())
}

func (s *Server) countProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]int{"count": s.Service.CountProducts()})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.Service.FindProduct(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	kit.WriteJSON(w, http.StatusCreated, s.Service.AddProduct(req.ID, req.Name, req.Price))
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.Service.DeleteProduct(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listSummaries(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Service.Summaries())
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := s.Service.FindCustomer(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req addCustomerReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	kit.WriteJSON(w, http.StatusCreated, s.Service.AddCustomer(req.ID, req.Name))
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := s.Service.DeleteCustomer(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) viewOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.Service.ViewOrders(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) addOrder(w http.ResponseWriter, r *http.Request) {
	var req orderReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	c, p, err := s.Service.AddOrder(chi.URLParam(r, "id"), req.ProductID)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orderResp{Customer: c, Product: p})
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	var req updateOrderReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	c, p, err := s.Service.UpdateOrder(chi.URLParam(r, "id"), req.ProductID, req.Add)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orderResp{Customer: c, Product: p})
}

func (s *Server) removeOrder(w http.ResponseWriter, r *http.Request) {
	c, p, err := s.Service.RemoveOrder(chi.URLParam(r, "id"), chi.URLParam(r, "productID"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, orderResp{Customer: c, Product: p})
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "customer not found", map[string]any{"cause": err.Error()})
	case errors.Is(err, ErrProductNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"cause": err.Error()})
	default:
		if s.Log != nil {
			s.Log.Error("store operation failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
