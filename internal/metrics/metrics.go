// Package metrics публикует счётчики регистрации, входа, обновления токенов и открытия счетов.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

type Collector struct {
	registrations  *prometheus.CounterVec
	logins         *prometheus.CounterVec
	refreshes      *prometheus.CounterVec
	accountsOpened prometheus.Counter
	referenceMiss  *prometheus.CounterVec
}

// NewCollector регистрирует метрики в reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_registrations_total",
			Help: "Количество попыток регистрации по результату",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_logins_total",
			Help: "Количество попыток входа по результату",
		}, []string{"outcome"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_token_refreshes_total",
			Help: "Количество обновлений access токена по результату",
		}, []string{"outcome"}),
		accountsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_accounts_opened_total",
			Help: "Количество открытых счетов",
		}),
		referenceMiss: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_reference_miss_total",
			Help: "Промахи справочников при генерации номера счёта",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.refreshes,
		c.accountsOpened,
		c.referenceMiss,
	)

	return c
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRefresh(outcome string) {
	c.refreshes.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordAccountOpened() {
	c.accountsOpened.Inc()
}

func (c *Collector) RecordReferenceMiss(kind string) {
	c.referenceMiss.WithLabelValues(kind).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
