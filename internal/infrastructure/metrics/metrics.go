// Package metrics provides Prometheus metrics for the MeetingMind backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// meetingsCreatedTotal counts meetings created through the REST API.
	meetingsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meetingmind_meetings_created_total",
		Help: "Total number of meetings created",
	})

	// websocketConnections tracks currently open realtime connections.
	websocketConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "meetingmind_websocket_connections",
		Help: "Current number of open WebSocket connections",
	})

	// broadcastsTotal counts room broadcasts by outcome of the room lookup.
	// Labels:
	//   - outcome: "delivered" or "empty_room"
	broadcastsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetingmind_broadcasts_total",
		Help: "Total number of room broadcasts",
	}, []string{"outcome"})

	// deadConnectionsTotal counts connections removed after a failed send.
	deadConnectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meetingmind_dead_connections_total",
		Help: "Total number of connections cleaned up after delivery failure",
	})

	// analysisCallsTotal counts upstream analysis calls.
	// Labels:
	//   - status: "success", "error" or "cached"
	analysisCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetingmind_analysis_calls_total",
		Help: "Total number of analysis calls by status",
	}, []string{"status"})

	// summariesGeneratedTotal counts full-meeting summaries generated.
	summariesGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meetingmind_summaries_generated_total",
		Help: "Total number of meeting summaries generated",
	})

	// summaryExportsTotal counts summary exports by format.
	summaryExportsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meetingmind_summary_exports_total",
		Help: "Total number of summary exports by format",
	}, []string{"format"})
)

func init() {
	prometheus.MustRegister(meetingsCreatedTotal)
	prometheus.MustRegister(websocketConnections)
	prometheus.MustRegister(broadcastsTotal)
	prometheus.MustRegister(deadConnectionsTotal)
	prometheus.MustRegister(analysisCallsTotal)
	prometheus.MustRegister(summariesGeneratedTotal)
	prometheus.MustRegister(summaryExportsTotal)
}

// RecordMeetingCreated records one created meeting.
func RecordMeetingCreated() {
	meetingsCreatedTotal.Inc()
}

// ConnectionOpened increments the open-connection gauge.
func ConnectionOpened() {
	websocketConnections.Inc()
}

// ConnectionClosed decrements the open-connection gauge.
func ConnectionClosed() {
	websocketConnections.Dec()
}

// RecordBroadcast records one broadcast attempt.
func RecordBroadcast(outcome string) {
	broadcastsTotal.WithLabelValues(outcome).Inc()
}

// RecordDeadConnection records one failed-send cleanup.
func RecordDeadConnection() {
	deadConnectionsTotal.Inc()
}

// RecordAnalysisCall records one analysis call with its status.
func RecordAnalysisCall(status string) {
	analysisCallsTotal.WithLabelValues(status).Inc()
}

// RecordSummaryGenerated records one generated summary.
func RecordSummaryGenerated() {
	summariesGeneratedTotal.Inc()
}

// RecordSummaryExport records one summary export.
func RecordSummaryExport(format string) {
	summaryExportsTotal.WithLabelValues(format).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
