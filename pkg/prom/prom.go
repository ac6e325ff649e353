package prom

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fasthttp/router"
	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	xhttp "github.com/nimasrn/biztime/pkg/http"
)

const (
	SystemHTTP = "http"
)

const (
	MetricHTTPRequestsTotal   = "requests_total"
	MetricHTTPRequestDuration = "request_duration_seconds"
)

var lockCreateMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
var MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

// Create registers the API's metric set. host and env become constant labels
// on every series.
func Create(host string, env string, nameSpace string) error {
	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	defaultLabels["instance"] = host
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounterVec(SystemHTTP, MetricHTTPRequestsTotal, []string{"method", "path", "status"}))
	hasError(createHistogramVec(SystemHTTP, MetricHTTPRequestDuration, []string{"method", "path"}))

	return err
}

// HTTPMetricsMiddleware records a counter and a latency observation per
// request, labeled by the matched route so path params don't explode the
// cardinality.
func HTTPMetricsMiddleware(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		if !MetricSystemEnabled {
			next(ctx)
			return
		}

		start := time.Now()
		next(ctx)

		path := string(ctx.Path())
		if matched, ok := ctx.UserValue(router.MatchedRoutePathParam).(string); ok {
			path = matched
		}
		method := string(ctx.Method())
		status := strconv.Itoa(ctx.Response.StatusCode())

		IncCounterVec(SystemHTTP, MetricHTTPRequestsTotal, method, path, status)
		ObserveHistogramVec(SystemHTTP, MetricHTTPRequestDuration, time.Since(start).Seconds(), method, path)
	}
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	if c, ok := MetricCollectionCounterVec[subsystem+name]; ok {
		c.WithLabelValues(labelValues...).Inc()
	}
}

func ObserveHistogramVec(subsystem, name string, value float64, labelValues ...string) {
	if h, ok := MetricCollectionHistogramVec[subsystem+name]; ok {
		h.WithLabelValues(labelValues...).Observe(value)
	}
}

// ListenAndServe exposes the prometheus scrape endpoint on its own listener.
func ListenAndServe(addr string, url string) {
	hh := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s := xhttp.CreateServer()
	s.GET(url, hh)
	logger.Info("[metrics-server] listening...", "url", url)
	if err := s.ListenAndServe(addr); err != nil {
		logger.Panic("[metrics-server] http listen error", "error", err)
	}
}

func createCounterVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounterVec[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        fmt.Sprintf("%s %s", subsystem, name),
		ConstLabels: defaultLabels,
	}, labels)
	return prometheus.Register(MetricCollectionCounterVec[subsystem+name])
}

func createHistogramVec(subsystem, name string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionHistogramVec[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        fmt.Sprintf("%s %s", subsystem, name),
		ConstLabels: defaultLabels,
		Buckets:     prometheus.DefBuckets,
	}, labels)
	return prometheus.Register(MetricCollectionHistogramVec[subsystem+name])
}
