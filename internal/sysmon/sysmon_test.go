package sysmon

import (
	"testing"
	"time"
)

func TestSnapshot_ReturnsValidRanges(t *testing.T) {
	m := NewMonitor()
	s := m.Snapshot()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.Goroutines <= 0 {
		t.Errorf("Goroutines = %d, want > 0", s.Goroutines)
	}
	if s.UptimeSeconds < 0 {
		t.Errorf("UptimeSeconds = %f, want >= 0", s.UptimeSeconds)
	}
}

func TestSnapshot_MemPercentNonZero(t *testing.T) {
	m := NewMonitor()
	if s := m.Snapshot(); s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestSnapshot_UptimeGrows(t *testing.T) {
	m := NewMonitor()
	first := m.Snapshot().UptimeSeconds
	time.Sleep(10 * time.Millisecond)
	second := m.Snapshot().UptimeSeconds
	if second <= first {
		t.Errorf("uptime did not grow: %f then %f", first, second)
	}
}
