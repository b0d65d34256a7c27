package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RunStarted()
	m.ObserveSolve("giant_squid", time.Millisecond, nil)
	m.ObserveSolve("giant_squid", time.Millisecond, errors.New("boom"))
	m.ObserveSolve("dive", time.Microsecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("giant_squid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.failures.WithLabelValues("dive")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}
