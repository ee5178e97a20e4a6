// Package metrics exposes build counters through a private Prometheus registry, written out
// in the node-exporter textfile format at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "almanac"

// Row outcomes used as the "outcome" label of almanac_stat_rows_total.
const (
	RowKept      = "kept"
	RowUnmapped  = "unmapped"
	RowEmptyID   = "empty_id"
	RowNoRoster  = "no_roster"
	ArtWritten   = "written"
	ArtUnchanged = "unchanged"
	ArtPruned    = "pruned"
)

// Recorder is safe to use as a nil pointer; every method is then a no-op.
type Recorder struct {
	registry      *prometheus.Registry
	seasons       *prometheus.CounterVec
	careers       *prometheus.GaugeVec
	rows          *prometheus.CounterVec
	rosterSkipped *prometheus.CounterVec
	mergeCycles   prometheus.Counter
	artifacts     *prometheus.CounterVec
	minted        prometheus.Counter
	duration      prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		seasons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "seasons_loaded_total", Help: "Season files loaded.",
		}, []string{"program"}),
		careers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "careers", Help: "Careers built in the last run.",
		}, []string{"program"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "stat_rows_total", Help: "Per-game stat rows by outcome.",
		}, []string{"program", "outcome"}),
		rosterSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "roster_entries_skipped_total", Help: "Roster entries whose player could not be resolved.",
		}, []string{"program"}),
		mergeCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "merge_cycles_total", Help: "Merge-chain cycles broken during resolution.",
		}),
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "artifacts_total", Help: "Derived artifacts by result.",
		}, []string{"result"}),
		minted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "ids_minted_total", Help: "Canonical ids minted.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "last_run_duration_seconds", Help: "Wall time of the last command.",
		}),
	}
	reg.MustRegister(r.seasons, r.careers, r.rows, r.rosterSkipped, r.mergeCycles, r.artifacts, r.minted, r.duration)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) SeasonsLoaded(program string, n int) {
	if r == nil {
		return
	}
	r.seasons.WithLabelValues(program).Add(float64(n))
}

func (r *Recorder) Careers(program string, n int) {
	if r == nil {
		return
	}
	r.careers.WithLabelValues(program).Set(float64(n))
}

func (r *Recorder) Rows(program, outcome string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.rows.WithLabelValues(program, outcome).Add(float64(n))
}

func (r *Recorder) RosterSkipped(program string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.rosterSkipped.WithLabelValues(program).Add(float64(n))
}

func (r *Recorder) MergeCycles(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mergeCycles.Add(float64(n))
}

func (r *Recorder) Artifacts(result string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.artifacts.WithLabelValues(result).Add(float64(n))
}

func (r *Recorder) Minted(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.minted.Add(float64(n))
}

func (r *Recorder) Duration(d time.Duration) {
	if r == nil {
		return
	}
	r.duration.Set(d.Seconds())
}

// WriteTextfile writes the registry to path. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
