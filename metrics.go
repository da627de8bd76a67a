package landingsim

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects run statistics.
type Metrics struct {
	ticks          prometheus.Counter
	runs           *prometheus.CounterVec
	touchdownSpeed *prometheus.HistogramVec
	fuelRemaining  *prometheus.GaugeVec
}

// NewMetrics returns a new Metrics registered with the provided registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lander_ticks_total",
				Help: "Total number of simulated ticks",
			},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lander_runs_total",
				Help: "Total number of runs by outcome",
			},
			[]string{"body", "outcome"},
		),
		touchdownSpeed: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lander_touchdown_speed_meters_per_second",
				Help:    "Speed of the craft when it reached the surface",
				Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 1000},
			},
			[]string{"body"},
		),
		fuelRemaining: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lander_fuel_remaining_ratio",
				Help: "Fraction of the fuel left at the end of the last run",
			},
			[]string{"body"},
		),
	}

	reg.MustRegister(m.ticks)
	reg.MustRegister(m.runs)
	reg.MustRegister(m.touchdownSpeed)
	reg.MustRegister(m.fuelRemaining)

	return m
}

// RecordTick counts one simulated tick.
func (m *Metrics) RecordTick() {
	m.ticks.Inc()
}

// RecordRun records the outcome of a finished run.
func (m *Metrics) RecordRun(body string, r Result) {
	m.runs.WithLabelValues(body, r.Outcome.String()).Inc()
	if r.Outcome == Won || r.Outcome == Lost {
		m.touchdownSpeed.WithLabelValues(body).Observe(r.Speed)
	}
	m.fuelRemaining.WithLabelValues(body).Set(r.FuelRatio)
}
