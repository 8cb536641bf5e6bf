// Package sysmon provides the resource snapshot reported by the health
// endpoint: system-wide CPU and memory usage plus process-level runtime
// figures.
package sysmon

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system and process resource usage.
type Stats struct {
	CPUPercent    float64 // 0.0 .. 100.0
	MemPercent    float64 // 0.0 .. 100.0
	Goroutines    int
	UptimeSeconds float64
}

// Monitor samples resource usage relative to its creation time.
type Monitor struct {
	started time.Time
}

// NewMonitor returns a Monitor whose uptime starts now.
func NewMonitor() *Monitor {
	return &Monitor{started: time.Now()}
}

// Snapshot collects a single resource usage snapshot.
// CPU uses interval=0 (delta since last call). Host-level figures fall back
// to zero on sampling errors.
func (m *Monitor) Snapshot() Stats {
	s := Stats{
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: time.Since(m.started).Seconds(),
	}
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
