package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on /metrics: runtime and
// process collectors, a gym_api_info gauge carrying the running version,
// plus the given collectors (db pool stats). Nil collectors are skipped.
func SetupPrometheus(versionInfo string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versionGauge(versionInfo),
	)
	for _, c := range extra {
		if c != nil {
			promRegistry.MustRegister(c)
		}
	}

	return promRegistry
}

func versionGauge(versionInfo string) prometheus.Gauge {
	if versionInfo == "" {
		versionInfo = "unknown"
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "gym",
		Subsystem:   "api",
		Name:        "info",
		Help:        "Always 1, labeled with the running version",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	g.Set(1)
	return g
}
