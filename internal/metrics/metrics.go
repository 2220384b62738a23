// Package metrics exposes the Prometheus counters for the operation surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfeed_signups_total",
		Help: "Total number of successful signups.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkfeed_logins_total",
		Help: "Total number of login attempts by result.",
	}, []string{"result"})

	LinksPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfeed_links_posted_total",
		Help: "Total number of links posted.",
	})

	VotesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkfeed_votes_total",
		Help: "Total number of votes recorded.",
	})
)
