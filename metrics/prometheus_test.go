// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	m := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		m[mf.GetName()] = mf
	}
	return m
}

func TestNoopMetrics(t *testing.T) {
	metrics = defaultNoopMetrics()

	assert.Nil(t, HTTPHandler())
	for _, m := range []any{
		CounterVec("noop_count", []string{"kind"}),
		GaugeVec("noop_gauge", []string{"kind"}),
		Histogram("noop_hist", BucketCommit),
	} {
		require.IsType(t, noopMeter{}, m)
	}
	// must not panic
	CounterVec("noop_count", nil).AddWithLabel(1, map[string]string{"any": "thing"})
	Histogram("noop_hist", nil).Observe(1)
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics()

	lazyCounterVec := LazyLoadCounterVec("lazy_count", []string{"kind"})
	lazyGaugeVec := LazyLoadGaugeVec("lazy_gauge", []string{"kind"})
	lazyHistogram := LazyLoadHistogram("lazy_hist", BucketCommit)

	// created after initialization, so they are backed by prometheus
	InitializePrometheusMetrics()

	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promGaugeVecMeter{}, lazyGaugeVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())
	assert.Same(t, lazyCounterVec(), lazyCounterVec())
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	commits := CounterVec("test_commit_count", []string{"target"})
	commits.AddWithLabel(1, map[string]string{"target": "parent"})
	commits.AddWithLabel(2, map[string]string{"target": "parent"})
	commits.AddWithLabel(1, map[string]string{"target": "store"})

	hitMiss := GaugeVec("test_cache_hit_miss", []string{"event"})
	hitMiss.AddWithLabel(5, map[string]string{"event": "hit"})
	hitMiss.SetWithLabel(2, map[string]string{"event": "hit"})

	duration := Histogram("test_commit_duration_ms", BucketCommit)
	for _, ms := range []int64{1, 3, 7} {
		duration.Observe(ms)
	}

	m := gather(t)

	var total float64
	for _, c := range m["tvmstate_metrics_test_commit_count"].Metric {
		total += c.GetCounter().GetValue()
	}
	assert.Equal(t, float64(4), total)
	assert.Len(t, m["tvmstate_metrics_test_commit_count"].Metric, 2)

	assert.Equal(t, float64(2), m["tvmstate_metrics_test_cache_hit_miss"].Metric[0].GetGauge().GetValue())

	hist := m["tvmstate_metrics_test_commit_duration_ms"].Metric[0].GetHistogram()
	assert.Equal(t, uint64(3), hist.GetSampleCount())
	assert.Equal(t, float64(11), hist.GetSampleSum())

	// same name, same meter
	assert.Same(t, commits, CounterVec("test_commit_count", []string{"target"}))
}

func TestPromHandler(t *testing.T) {
	InitializePrometheusMetrics()
	CounterVec("test_handler_count", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "account"})

	rec := httptest.NewRecorder()
	HTTPHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `tvmstate_metrics_test_handler_count{kind="account"} 1`)
}
