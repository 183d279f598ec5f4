// Package metrics exports asset lifecycle events to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/ports"

	promclient "github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "recruitment_assets"

// PrometheusObserver is a ports.AssetObserver backed by Prometheus collectors.
type PrometheusObserver struct {
	uploads        *promclient.CounterVec
	uploadedBytes  *promclient.CounterVec
	deletes        *promclient.CounterVec
	deleteDuration *promclient.HistogramVec
	kindFallbacks  *promclient.CounterVec
}

var _ ports.AssetObserver = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the asset collectors on reg. Collectors
// already registered under the same names are reused.
func NewPrometheusObserver(namespace string, reg promclient.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = promclient.DefaultRegisterer
	}

	uploads, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Uploads to object storage by field, kind and result.",
	}, []string{"field", "kind", "result"}))
	if err != nil {
		return nil, err
	}
	uploadedBytes, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "uploaded_bytes_total",
		Help:      "Payload bytes successfully uploaded to object storage.",
	}, []string{"field"}))
	if err != nil {
		return nil, err
	}
	deletes, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "cleanup_deletes_total",
		Help:      "Cleanup attempts by field, kind and outcome.",
	}, []string{"field", "kind", "outcome"}))
	if err != nil {
		return nil, err
	}
	deleteDuration, err := register(reg, promclient.NewHistogramVec(promclient.HistogramOpts{
		Namespace: namespace,
		Name:      "cleanup_delete_duration_seconds",
		Help:      "Latency of cleanup delete attempts.",
		Buckets:   promclient.DefBuckets,
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}
	kindFallbacks, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "kind_fallbacks_total",
		Help:      "Legacy assets whose resource kind had to be inferred.",
	}, []string{"field", "reason"}))
	if err != nil {
		return nil, err
	}

	return &PrometheusObserver{
		uploads:        uploads,
		uploadedBytes:  uploadedBytes,
		deletes:        deletes,
		deleteDuration: deleteDuration,
		kindFallbacks:  kindFallbacks,
	}, nil
}

func register[C promclient.Collector](reg promclient.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		var are promclient.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return collector, fmt.Errorf("register asset collector: %w", err)
	}
	return collector, nil
}

func (o *PrometheusObserver) RecordUpload(field asset.Field, kind asset.ResourceKind, size int64, err error) {
	if o == nil {
		return
	}
	if err != nil {
		o.uploads.WithLabelValues(string(field), kind.String(), "error").Inc()
		return
	}
	o.uploads.WithLabelValues(string(field), kind.String(), "ok").Inc()
	o.uploadedBytes.WithLabelValues(string(field)).Add(float64(size))
}

func (o *PrometheusObserver) RecordDelete(field asset.Field, kind asset.ResourceKind, outcome ports.DeleteOutcome, elapsed time.Duration) {
	if o == nil {
		return
	}
	o.deletes.WithLabelValues(string(field), kind.String(), string(outcome)).Inc()
	o.deleteDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

func (o *PrometheusObserver) RecordKindFallback(field asset.Field, reason string) {
	if o == nil {
		return
	}
	o.kindFallbacks.WithLabelValues(string(field), reason).Inc()
}
