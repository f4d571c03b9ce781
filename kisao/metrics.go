package kisao

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// familyCacheRequests counts classifier lookups by cache result (hit, miss).
	familyCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kisao_family_cache_requests_total",
		Help: "Family classifier lookups by cache result",
	}, []string{"result"})

	// substitutionsTotal counts preferred-substitute decisions by policy and
	// outcome (identity, substituted, none, unsupported).
	substitutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kisao_substitutions_total",
		Help: "Preferred substitute decisions by policy and outcome",
	}, []string{"policy", "outcome"})
)
