// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveEvaluation(t *testing.T) {
	r := NewRecorder()

	r.ObserveEvaluation(0.25, 2*time.Millisecond)
	r.ObserveEvaluation(0.5, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.EvaluationsTotal))
	assert.Equal(t, 0.5, testutil.ToFloat64(r.LastValue))
	assert.Equal(t, 1, testutil.CollectAndCount(r.EvaluationDuration))
}

func TestRecorder_GraphSizeAndReassignments(t *testing.T) {
	r := NewRecorder()

	r.SetGraphSize(120, 95)
	r.IncReassignment("cycle")
	r.IncReassignment("cycle")
	r.IncReassignment("set")

	assert.Equal(t, 120.0, testutil.ToFloat64(r.GraphNodes))
	assert.Equal(t, 95.0, testutil.ToFloat64(r.GraphEdges))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ReassignmentsTotal.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ReassignmentsTotal.WithLabelValues("set")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveEvaluation(1, time.Second)
		r.SetGraphSize(1, 1)
		r.IncReassignment("cycle")
	})
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.ObserveEvaluation(0.1, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.EvaluationsTotal))
	assert.Zero(t, testutil.ToFloat64(b.EvaluationsTotal))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveEvaluation(0.75, time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "modularity_evaluations_total 1")
	assert.Contains(t, body, "modularity_last_value 0.75")
	assert.Contains(t, body, "modularity_evaluation_duration_seconds_bucket")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	r := NewRecorder()
	r.SetGraphSize(3, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, r) }()

	resp, err := http.Get("http://" + ln.Addr().String() + MetricsPath)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "modularity_graph_nodes 3"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_BadAddress(t *testing.T) {
	err := Serve(context.Background(), "256.0.0.1:bad", NewRecorder())
	assert.Error(t, err)
}
