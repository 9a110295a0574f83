// Package metrics holds the application's Prometheus collectors
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts handled HTTP requests by method, route, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "synthex",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes request latency by method and route.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "synthex",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	// WebhookEvents counts processed webhook deliveries by provider and outcome.
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "synthex",
			Subsystem: "webhooks",
			Name:      "events_total",
			Help:      "Total number of webhook events by outcome.",
		},
		[]string{"provider", "outcome"},
	)

	// CampaignSends counts per-recipient campaign send attempts by outcome.
	CampaignSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "synthex",
			Subsystem: "campaigns",
			Name:      "sends_total",
			Help:      "Total number of campaign email send attempts.",
		},
		[]string{"outcome"},
	)

	// AIGenerations counts AI content generation requests by provider and outcome.
	AIGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "synthex",
			Subsystem: "ai",
			Name:      "generations_total",
			Help:      "Total number of AI content generations.",
		},
		[]string{"provider", "outcome"},
	)
)

func init() {
	Registry.MustRegister(HTTPRequests, HTTPDuration, WebhookEvents, CampaignSends, AIGenerations)
}

// Handler exposes the registry in Prometheus text format
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
