package limits

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	rungExact       = "exact"
	rungPartial     = "partial"
	rungDefault     = "default"
	rungSystemProxy = "system_proxy"
	rungHard        = "hard_fallback"
)

var (
	boundResolutions *prometheus.CounterVec
	sanitizedBounds  prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, prometheus.Counter) {
	res := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bound_resolutions_total",
			Help: "Number of bound resolutions by fallback rung",
		},
		[]string{"rung"},
	)
	san := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "infinite_bounds_sanitized_total",
			Help: "Number of infinite values replaced by a finite ceiling",
		},
	)
	return res, san
}

func init() {
	boundResolutions, sanitizedBounds = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers limits metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(boundResolutions, sanitizedBounds)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	boundResolutions, sanitizedBounds = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}

func observeFallback(rung string) {
	boundResolutions.WithLabelValues(rung).Inc()
}
