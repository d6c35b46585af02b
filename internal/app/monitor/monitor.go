//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/process"
)

// Footprint is the resource usage of one process
type Footprint struct {
	CPU    float64
	Memory uint64 // resident bytes
}

// String renders the footprint for the header line
func (f Footprint) String() string {
	return fmt.Sprintf("cpu %.1f%% · %s", f.CPU, humanize.IBytes(f.Memory))
}

// Monitor samples the footprint of the console process
type Monitor interface {
	Sample(ctx context.Context) (Footprint, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

func (m *monitor) Sample(ctx context.Context) (Footprint, error) {
	if m.pid <= 0 || m.pid > math.MaxInt32 {
		return Footprint{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(m.pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Footprint{}, err
	}

	footprint := Footprint{}

	cpuPercent, err := proc.CPUPercentWithContext(ctx)
	if err == nil {
		footprint.CPU = cpuPercent
	}

	memInfo, err := proc.MemoryInfoWithContext(ctx)
	if err == nil {
		footprint.Memory = memInfo.RSS
	}

	return footprint, nil
}
