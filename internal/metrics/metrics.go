package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "station_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "station_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "station_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Game Metrics
var (
	PlayersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "station_players_created_total",
			Help: "Total number of player records created",
		},
	)

	DailyRewardsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "station_daily_rewards_claimed_total",
			Help: "Total daily reward claims by streak day",
		},
		[]string{"day"},
	)

	AuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "station_auth_failures_total",
			Help: "Init-data verification failures by reason",
		},
		[]string{"reason"},
	)

	VersionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "station_player_version_conflicts_total",
			Help: "Optimistic-concurrency conflicts on player rows",
		},
	)
)
