package agent

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/container-desk/cdesk/pkg/logbuffer"
	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/metrics"
	"github.com/container-desk/cdesk/pkg/monitor"
	"github.com/container-desk/cdesk/pkg/system"
	"github.com/container-desk/cdesk/pkg/update"
)

// UpdateChecker is the slice of pkg/update the server needs.
type UpdateChecker interface {
	Check(ctx context.Context, current string) (update.Info, error)
}

// hostSummary is swappable for tests.
var hostSummary = system.HostSummary

// Server owns the agent's HTTP handlers. All state lives in the monitor, the
// log buffer, and the metrics handler; the server only renders it.
type Server struct {
	log     logging.Logger
	monitor *monitor.Monitor
	checker UpdateChecker
	logs    *logbuffer.Buffer
	metrics *metrics.Handler
}

func NewServer(log logging.Logger, m *monitor.Monitor, checker UpdateChecker, logs *logbuffer.Buffer, metricsHandler *metrics.Handler) *Server {
	return &Server{
		log:     log,
		monitor: m,
		checker: checker,
		logs:    logs,
		metrics: metricsHandler,
	}
}

// Register mounts every route on mux.
func (s *Server) Register(mux interface {
	Handle(pattern string, handler http.Handler)
}) {
	mux.Handle(StatusRoute, http.HandlerFunc(s.handleStatus))
	mux.Handle(UpdateRoute, http.HandlerFunc(s.handleUpdate))
	mux.Handle(LogsRoute, http.HandlerFunc(s.handleLogs))
	mux.Handle(MetricsRoute, s.metrics)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	snapshot, ok := s.monitor.Latest()
	if !ok {
		snapshot = s.monitor.PollOnce(r.Context())
	}

	host, err := hostSummary()
	if err != nil {
		s.log.Warnf("Could not read host info: %v", err)
	}

	s.writeJSON(w, StatusResponse{
		Snapshot: snapshot,
		Host:     host,
		Polls:    s.monitor.Polls(),
	})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var current string
	if snapshot, ok := s.monitor.Latest(); ok {
		current = snapshot.Status.Version
	}

	info, err := s.checker.Check(r.Context(), current)
	if err != nil {
		s.log.Errorf("Update check failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.metrics.SetUpdateAvailable(info.UpdateAvailable)

	s.writeJSON(w, info)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := s.logs.WriteTo(w); err != nil {
		s.log.Errorf("Failed to write log tail: %v", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Errorf("Failed to encode response: %v", err)
	}
}
