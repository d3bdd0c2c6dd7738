package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	diagnosisCompletedTotal  atomic.Uint64
	riskAssessedTotal        atomic.Uint64
	pmDeadlinesComputedTotal atomic.Uint64
	unknownStateTotal        atomic.Uint64

	calculationDuration = newHistogram([]float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25})
)

// IncDiagnosisCompleted increments the tenant-diagnosis counter.
func IncDiagnosisCompleted() {
	diagnosisCompletedTotal.Add(1)
}

// IncRiskAssessed increments the landlord risk-assessment counter.
func IncRiskAssessed() {
	riskAssessedTotal.Add(1)
}

// IncPMDeadlinesComputed increments the property-manager deadline counter.
func IncPMDeadlinesComputed() {
	pmDeadlinesComputedTotal.Add(1)
}

// IncUnknownState increments the rejected unknown-state counter.
func IncUnknownState() {
	unknownStateTotal.Add(1)
}

// ObserveCalculationDurationMs records a calculation duration in milliseconds.
func ObserveCalculationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	calculationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "diagnosis_completed_total", "Total tenant diagnoses completed", diagnosisCompletedTotal.Load())
	writeCounter(&buf, "risk_assessed_total", "Total landlord risk assessments completed", riskAssessedTotal.Load())
	writeCounter(&buf, "pm_deadlines_computed_total", "Total property-manager deadline analyses completed", pmDeadlinesComputedTotal.Load())
	writeCounter(&buf, "unknown_state_total", "Total requests rejected for an unknown state code", unknownStateTotal.Load())
	writeHistogram(&buf, "calculation_duration_ms", "Calculation duration in milliseconds", calculationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
