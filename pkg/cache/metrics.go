package cache

import "github.com/zeromicro/go-zero/core/metric"

var (
	cacheHits = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_respond",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Store cache hits",
		Labels:    []string{"cache"},
	})

	cacheMisses = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_respond",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Store cache misses",
		Labels:    []string{"cache"},
	})

	cacheInvalidations = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_respond",
		Subsystem: "cache",
		Name:      "invalidations_total",
		Help:      "Whole-cache invalidations caused by writes",
		Labels:    []string{"cache"},
	})
)
