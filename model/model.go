// Package model contains core data types for the project.
package model

import "time"

// CounterSnapshot is an immutable record of cumulative kernel counters read
// at one instant. Counters only grow under normal operation; deriving rates
// from them is the rate package's job.
type CounterSnapshot struct {
	NetDownBytes  uint64 // sum of received bytes over non-excluded interfaces
	NetUpBytes    uint64 // sum of transmitted bytes over non-excluded interfaces
	CPUUsedTicks  uint64 // user + nice + system
	CPUTotalTicks uint64 // used + idle
}

// MemorySnapshot is an immutable record of memory and swap occupancy in
// kilobytes. Occupancy is a ratio, not a rate, so no history is kept for it.
type MemorySnapshot struct {
	TotalKb     uint64
	AvailableKb uint64
	SwapTotalKb uint64
	SwapFreeKb  uint64
}

// Reading holds the derived values of one sampling tick. The Has* flags
// distinguish "metric disabled or not computable this tick" from a
// legitimate zero.
type Reading struct {
	Time time.Time `json:"time"`

	CPUUsage  float64 `json:"cpu_usage"`  // ratio in [0,1]
	HasCPU    bool    `json:"has_cpu"`
	MemUsage  float64 `json:"mem_usage"`  // ratio in [0,1]
	HasMem    bool    `json:"has_mem"`
	SwapUsage float64 `json:"swap_usage"` // ratio in [0,1]
	HasSwap   bool    `json:"has_swap"`

	DownloadBps float64 `json:"download_bps"` // bytes per second
	UploadBps   float64 `json:"upload_bps"`   // bytes per second
	HasNet      bool    `json:"has_net"`
}
