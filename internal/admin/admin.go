// Package admin serves the loopback /metrics, /ping, /ready surface named
// in SPEC_FULL.md §4.9, adapted from the teacher's pkg/admin: the same
// single-handler http.Server shape, generalized from proxy pprof/metrics
// to store/query metrics.
package admin

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/triagehq/logtriage/internal/store"
)

type handler struct {
	promHandler http.Handler
	store       *store.Store
}

// NewServer returns an initialized http.Server bound to addr, reporting
// store-level gauges (length, min/max seq, producer count) and the
// query-level counters/histograms registered by Metrics. Only collectors
// registered on Metrics' registry are served.
func NewServer(addr string, s *store.Store, metrics *Metrics) *http.Server {
	metrics.registerStoreCollector(s)
	h := &handler{promHandler: promhttp.HandlerFor(metrics.reg, promhttp.HandlerOpts{}), store: s}
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 15 * time.Second,
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	switch req.URL.Path {
	case "/metrics":
		h.promHandler.ServeHTTP(w, req)
	case "/ping":
		w.Write([]byte("pong\n"))
	case "/ready":
		w.Write([]byte("ok\n"))
	default:
		http.NotFound(w, req)
	}
}

// Metrics holds the query-level counters and histograms SPEC_FULL.md §4.9
// asks for: queries served, expansion set size, rank latency. Store-level
// gauges are collected on demand via a prometheus.Collector rather than
// updated eagerly, since the Store already holds the authoritative counts.
type Metrics struct {
	QueriesServed prometheus.Counter
	ExpansionSize prometheus.Histogram
	RankLatency   prometheus.Histogram

	reg            *prometheus.Registry
	storeCollected bool
}

// NewMetrics constructs and registers the query-level collectors against
// reg. promhttp.HandlerFor(reg, ...) is what NewServer serves on /metrics,
// so reg is both the registration target and the metrics source of truth;
// pass a fresh prometheus.NewRegistry() per process (or per test).
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		reg: reg,
		QueriesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logtriage_queries_served_total",
			Help: "Number of queries executed against the store.",
		}),
		ExpansionSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logtriage_expansion_terms",
			Help:    "Number of terms a query's token set expanded to.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		RankLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logtriage_rank_seconds",
			Help:    "Wall time spent scanning and ranking a query.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.QueriesServed, m.ExpansionSize, m.RankLatency)
	return m
}

// registerStoreCollector wires the Store's live counters into the same
// registry used by NewMetrics, lazily so a *Metrics built without a server
// (e.g. in query-path unit tests) never touches a Store.
func (m *Metrics) registerStoreCollector(s *store.Store) {
	if m.storeCollected {
		return
	}
	m.storeCollected = true
	m.reg.MustRegister(&storeCollector{store: s})
}

type storeCollector struct {
	store *store.Store
}

var (
	storeLenDesc = prometheus.NewDesc("logtriage_store_entries", "Current number of entries held in the store.", nil, nil)
	storeMinDesc = prometheus.NewDesc("logtriage_store_min_seq", "Lowest sequence number still present in the store.", nil, nil)
	storeMaxDesc = prometheus.NewDesc("logtriage_store_max_seq", "Highest sequence number pushed into the store.", nil, nil)
	storeProdDesc = prometheus.NewDesc("logtriage_store_producers", "Number of distinct producers currently represented in the store.", nil, nil)
)

func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storeLenDesc
	ch <- storeMinDesc
	ch <- storeMaxDesc
	ch <- storeProdDesc
}

func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	minSeq, nextSeq := c.store.Bounds()
	ch <- prometheus.MustNewConstMetric(storeLenDesc, prometheus.GaugeValue, float64(c.store.Len()))
	ch <- prometheus.MustNewConstMetric(storeMinDesc, prometheus.GaugeValue, float64(minSeq))
	ch <- prometheus.MustNewConstMetric(storeMaxDesc, prometheus.GaugeValue, float64(nextSeq-1))
	ch <- prometheus.MustNewConstMetric(storeProdDesc, prometheus.GaugeValue, float64(len(c.store.Producers())))
}
