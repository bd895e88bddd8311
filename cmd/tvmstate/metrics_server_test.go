// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/metrics"
)

func TestMetricsServer(t *testing.T) {
	metrics.InitializePrometheusMetrics()
	metrics.CounterVec("cli_test_count", []string{"kind"}).AddWithLabel(1, map[string]string{"kind": "test"})

	url, closeFunc, err := startMetricsServer("localhost:0")
	require.NoError(t, err)
	defer closeFunc()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "tvmstate_metrics_cli_test_count")
}

func TestMetricsServerBadAddr(t *testing.T) {
	_, _, err := startMetricsServer("not-an-addr")
	assert.Error(t, err)
}
