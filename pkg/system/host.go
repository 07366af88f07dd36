package system

import (
	"fmt"
	"time"

	"github.com/elastic/go-sysinfo"
)

// Host summarizes the machine the daemon runs on.
type Host struct {
	OS            string `json:"os"`
	OSVersion     string `json:"osVersion"`
	KernelVersion string `json:"kernelVersion"`
	Architecture  string `json:"architecture"`
	MemoryTotal   uint64 `json:"memoryTotal"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// HostSummary reads host facts once. Memory may legitimately be unreadable on
// some platforms; that is reported as an error rather than a zero total.
func HostSummary() (Host, error) {
	host, err := sysinfo.Host()
	if err != nil {
		return Host{}, fmt.Errorf("reading host info: %w", err)
	}
	info := host.Info()

	summary := Host{
		KernelVersion: info.KernelVersion,
		Architecture:  info.Architecture,
	}
	if info.OS != nil {
		summary.OS = info.OS.Name
		summary.OSVersion = info.OS.Version
	}
	if !info.BootTime.IsZero() {
		summary.UptimeSeconds = int64(time.Since(info.BootTime) / time.Second)
	}

	memory, err := host.Memory()
	if err != nil {
		return summary, fmt.Errorf("reading host memory: %w", err)
	}
	summary.MemoryTotal = memory.Total

	return summary, nil
}
