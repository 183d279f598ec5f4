package metrics_test

import (
	"errors"
	"testing"
	"time"

	"recruitment/internal/adapters/out/metrics"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/ports"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserver_Records(t *testing.T) {
	// Arrange
	reg := promclient.NewRegistry()
	observer, err := metrics.NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	// Act
	observer.RecordUpload(asset.FieldMedia, asset.Video, 2048, nil)
	observer.RecordUpload(asset.FieldMedia, asset.Video, 0, errors.New("boom"))
	observer.RecordDelete(asset.FieldDocuments, asset.Raw, ports.DeleteOutcomeAlreadyAbsent, 10*time.Millisecond)
	observer.RecordKindFallback(asset.FieldMedia, "video_suffix")

	// Assert
	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"test_uploads_total",
		"test_uploaded_bytes_total",
		"test_cleanup_deletes_total",
		"test_cleanup_delete_duration_seconds",
		"test_kind_fallbacks_total",
	}, names)

	count, err := testutil.GatherAndCount(reg, "test_uploads_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewPrometheusObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := promclient.NewRegistry()
	first, err := metrics.NewPrometheusObserver("dup", reg)
	require.NoError(t, err)

	second, err := metrics.NewPrometheusObserver("dup", reg)
	require.NoError(t, err)

	first.RecordKindFallback(asset.FieldMedia, "default")
	second.RecordKindFallback(asset.FieldMedia, "default")

	count, err := testutil.GatherAndCount(reg, "dup_kind_fallbacks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusObserver_NilIsSafe(t *testing.T) {
	var observer *metrics.PrometheusObserver

	assert.NotPanics(t, func() {
		observer.RecordUpload(asset.FieldCV, asset.Raw, 1, nil)
		observer.RecordDelete(asset.FieldCV, asset.Raw, ports.DeleteOutcomeDeleted, time.Second)
		observer.RecordKindFallback(asset.FieldCV, "field")
	})
}
