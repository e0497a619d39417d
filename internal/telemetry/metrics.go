// Package telemetry exports sampling results as Prometheus metrics.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DrBitshift/statmon/model"
)

// Metrics holds the exported gauges. Gauges keep their last value when a
// metric is disabled or unreadable on a given tick.
type Metrics struct {
	handler http.Handler

	cpuUsage    prometheus.Gauge
	memUsage    prometheus.Gauge
	swapUsage   prometheus.Gauge
	downloadBps prometheus.Gauge
	uploadBps   prometheus.Gauge
	ticksTotal  prometheus.Counter
}

// NewMetrics creates and registers the gauges on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statmon",
			Name:      "cpu_usage_ratio",
			Help:      "CPU busy fraction over the last sampling interval.",
		}),
		memUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statmon",
			Name:      "memory_usage_ratio",
			Help:      "Occupied fraction of total memory.",
		}),
		swapUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statmon",
			Name:      "swap_usage_ratio",
			Help:      "Occupied fraction of swap.",
		}),
		downloadBps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statmon",
			Name:      "download_bytes_per_second",
			Help:      "Received byte rate over the last sampling interval.",
		}),
		uploadBps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "statmon",
			Name:      "upload_bytes_per_second",
			Help:      "Transmitted byte rate over the last sampling interval.",
		}),
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "statmon",
			Name:      "ticks_total",
			Help:      "Completed sampling ticks.",
		}),
	}

	reg.MustRegister(m.cpuUsage, m.memUsage, m.swapUsage, m.downloadBps, m.uploadBps, m.ticksTotal)
	// The server's middleware already negotiates gzip; double compression
	// would corrupt the body.
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true})

	return m
}

// Observe records one completed sampling tick.
func (m *Metrics) Observe(r model.Reading) {
	m.ticksTotal.Inc()

	if r.HasCPU {
		m.cpuUsage.Set(r.CPUUsage)
	}
	if r.HasMem {
		m.memUsage.Set(r.MemUsage)
	}
	if r.HasSwap {
		m.swapUsage.Set(r.SwapUsage)
	}
	if r.HasNet {
		m.downloadBps.Set(r.DownloadBps)
		m.uploadBps.Set(r.UploadBps)
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}
