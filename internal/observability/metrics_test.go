package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/stock/:id", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/stock/:id", "GET", 200, 30*time.Millisecond)
	m.RecordError("/createUser", "POST", "VALIDATION_FAILED")

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap.Requests["/stock/:id|GET|200"])
	assert.EqualValues(t, 20, snap.AvgLatencyMS["/stock/:id|GET|200"])
	assert.EqualValues(t, 1, snap.Errors["/createUser|POST|VALIDATION_FAILED"])
}

func TestMetrics_SnapshotIsACopy(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/getUser", "GET", 200, time.Millisecond)

	snap := m.Snapshot()
	snap.Requests["/getUser|GET|200"] = 99

	assert.EqualValues(t, 1, m.Snapshot().Requests["/getUser|GET|200"])
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/stock", "GET", 200, time.Millisecond)
		m.RecordError("/stock", "GET", "X")
		_ = m.Snapshot()
	})
}
