package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa as métricas do fluxo de jogo.
type Metrics struct {
	EventsTotal   *prometheus.CounterVec
	EventDuration *prometheus.HistogramVec
	LockWait      *prometheus.HistogramVec
	GamesArchived prometheus.Counter
}

// New registra as métricas no registerer informado (prometheus.DefaultRegisterer em produção).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EventsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "quizarena",
				Subsystem: "flow",
				Name:      "events_total",
				Help:      "Eventos de jogo processados, por tipo e resultado",
			},
			[]string{"event", "outcome"},
		),
		EventDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "quizarena",
				Subsystem: "flow",
				Name:      "event_duration_seconds",
				Help:      "Duração do processamento de um evento",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"event"},
		),
		LockWait: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "quizarena",
				Subsystem: "flow",
				Name:      "lock_wait_seconds",
				Help:      "Tempo de espera pelo lock da sessão",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"event"},
		),
		GamesArchived: f.NewCounter(prometheus.CounterOpts{
			Namespace: "quizarena",
			Subsystem: "flow",
			Name:      "games_archived_total",
			Help:      "Sessões concluídas e arquivadas",
		}),
	}
}

// ObserveEvent registra o resultado de um evento. Seguro com receptor nil.
func (m *Metrics) ObserveEvent(event, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.EventsTotal.WithLabelValues(event, outcome).Inc()
	m.EventDuration.WithLabelValues(event).Observe(time.Since(started).Seconds())
}

// ObserveLockWait registra quanto tempo o evento esperou pelo lock.
func (m *Metrics) ObserveLockWait(event string, d time.Duration) {
	if m == nil {
		return
	}
	m.LockWait.WithLabelValues(event).Observe(d.Seconds())
}

// IncArchived conta uma sessão arquivada.
func (m *Metrics) IncArchived() {
	if m == nil {
		return
	}
	m.GamesArchived.Inc()
}
