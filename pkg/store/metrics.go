package store

import (
	"time"

	"github.com/zeromicro/go-zero/core/metric"
)

var (
	storeDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_respond",
		Subsystem: "store",
		Name:      "duration_seconds",
		Help:      "Template store backend call duration in seconds",
		Labels:    []string{"op"},
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	storeErrors = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_respond",
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Template store backend call failures",
		Labels:    []string{"op"},
	})
)

func observe(op string, start time.Time, err error) {
	storeDuration.ObserveFloat(time.Since(start).Seconds(), op)
	if err != nil {
		storeErrors.Inc(op)
	}
}
