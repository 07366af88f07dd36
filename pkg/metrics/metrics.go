// Package metrics exposes the agent's own observations of the daemon in
// Prometheus text exposition format.
package metrics

import (
	"net/http"
	"sync/atomic"

	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/monitor"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// StatusSource is the slice of the monitor the handler scrapes.
type StatusSource interface {
	Latest() (monitor.Snapshot, bool)
	Polls() uint64
	DownPolls() uint64
}

// Handler serves GET /metrics. Families are rebuilt on every scrape from the
// monitor's counters and latest snapshot.
type Handler struct {
	log    logging.Logger
	source StatusSource

	// -1 until the first update check completes.
	updateAvailable atomic.Int32
}

func NewHandler(log logging.Logger, source StatusSource) *Handler {
	h := &Handler{log: log, source: source}
	h.updateAvailable.Store(-1)
	return h
}

// SetUpdateAvailable records the outcome of the most recent update check.
func (h *Handler) SetUpdateAvailable(available bool) {
	if available {
		h.updateAvailable.Store(1)
	} else {
		h.updateAvailable.Store(0)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range h.families() {
		if err := encoder.Encode(family); err != nil {
			h.log.Errorf("Failed to encode metric family %s: %v", family.GetName(), err)
		}
	}
}

func (h *Handler) families() []*dto.MetricFamily {
	families := []*dto.MetricFamily{
		counter("cdesk_polls_total", "Completed status poll cycles.", float64(h.source.Polls())),
		counter("cdesk_poll_down_total", "Poll cycles that observed the daemon not running.", float64(h.source.DownPolls())),
	}

	if snapshot, ok := h.source.Latest(); ok {
		families = append(families,
			gauge("cdesk_daemon_up", "Whether container-apiserver was running at the last poll.", boolValue(snapshot.Status.Running)),
			gauge("cdesk_daemon_installed", "Whether the container CLI binary is installed.", boolValue(snapshot.Status.Installed)),
			gauge("cdesk_last_poll_timestamp_seconds", "Unix time of the last completed poll.", float64(snapshot.At.Unix())),
		)
	}

	if v := h.updateAvailable.Load(); v >= 0 {
		families = append(families,
			gauge("cdesk_update_available", "Whether a newer release of the container project is available.", float64(v)),
		)
	}

	return families
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func gauge(name, help string, value float64) *dto.MetricFamily {
	metricType := dto.MetricType_GAUGE
	return &dto.MetricFamily{
		Name:   &name,
		Help:   &help,
		Type:   &metricType,
		Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: &value}}},
	}
}

func counter(name, help string, value float64) *dto.MetricFamily {
	metricType := dto.MetricType_COUNTER
	return &dto.MetricFamily{
		Name:   &name,
		Help:   &help,
		Type:   &metricType,
		Metric: []*dto.Metric{{Counter: &dto.Counter{Value: &value}}},
	}
}
