package models

import "time"

// Observation represents one minute of warehouse telemetry
type Observation struct {
	Timestamp time.Time `json:"timestamp"`

	// Utilization in percent, always within [0, 100]
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryUsage float64 `json:"memory_usage"`

	// 1 when a scaling action happened during this minute, else 0
	AutoScalingEvent int `json:"auto_scaling_event"`
}

// Window returns the first and last timestamps of an ordered table.
// Both are zero for an empty table.
func Window(table []Observation) (start, end time.Time) {
	if len(table) == 0 {
		return time.Time{}, time.Time{}
	}
	return table[0].Timestamp, table[len(table)-1].Timestamp
}
