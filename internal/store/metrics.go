package store

import "github.com/prometheus/client_golang/prometheus"

const (
	labelOp     = "op"
	labelResult = "result"

	resultOK       = "ok"
	resultNotFound = "not_found"
)

type Metrics struct {
	Operations *prometheus.CounterVec
	Products   prometheus.Gauge
	Customers  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_operations_total",
				Help: "Store operations by outcome",
			},
			[]string{labelOp, labelResult},
		),
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "store_products",
			Help: "Products currently in the catalog",
		}),
		Customers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "store_customers",
			Help: "Customers currently registered",
		}),
	}

	reg.MustRegister(m.Operations, m.Products, m.Customers)
	return m
}

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultNotFound
	}
	m.Operations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) setSizes(products, customers int) {
	if m == nil {
		return
	}
	m.Products.Set(float64(products))
	m.Customers.Set(float64(customers))
}
