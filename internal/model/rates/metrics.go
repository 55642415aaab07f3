package rates

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pullsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "customs",
		Subsystem: "rates",
		Name:      "pulls_total",
	},
	[]string{"success"},
)

func observePull(success bool) {
	pullsTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}
