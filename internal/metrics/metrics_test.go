package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterCollectors(reg) })

	FetchFailures.WithLabelValues("documents").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(FetchFailures.WithLabelValues("documents")))

	n, err := testutil.GatherAndCount(reg, "dashboard_fetch_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
