package tariff

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var calculationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "customs",
		Subsystem: "tariff",
		Name:      "calculations_total",
	},
	[]string{"rule"},
)

var recyclingDefaultsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "customs",
		Subsystem: "tariff",
		Name:      "recycling_default_fee_total",
	},
)
