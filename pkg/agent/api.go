// Package agent defines the HTTP surface of the cdesk agent: the routes it
// serves, the payloads on them, and a client for reaching it over its unix
// socket.
package agent

import (
	"github.com/container-desk/cdesk/pkg/monitor"
	"github.com/container-desk/cdesk/pkg/system"
)

const (
	StatusRoute  = "/status"
	UpdateRoute  = "/update"
	LogsRoute    = "/logs"
	MetricsRoute = "/metrics"
)

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	Snapshot monitor.Snapshot `json:"snapshot"`
	Host     system.Host      `json:"host"`
	Polls    uint64           `json:"polls"`
}
