package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fan-out outcomes per topic. A skipped notification is the only place the
// degraded state of a committed write is visible.
var (
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_notifications_published_total",
		Help: "Notifications handed to a transport after a committed write.",
	}, []string{"topic"})

	NotificationsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_notifications_skipped_total",
		Help: "Notifications dropped after a committed write (lookup or publish failure).",
	}, []string{"topic", "reason"})
)
