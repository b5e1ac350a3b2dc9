// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// URIServerStatus serves process health and runtime statistics.
const URIServerStatus = "status://server-status"

const bytesPerMB = 1024 * 1024

// ResourceUsageData is a snapshot of runtime statistics for the status resource.
type ResourceUsageData struct {
	Timestamp   string         `json:"timestamp"`
	MemoryUsage map[string]any `json:"memory_usage"`
	GCStats     map[string]any `json:"gc_stats"`
	SystemInfo  map[string]any `json:"system_info"`
}

// CollectResourceUsage reads runtime memory, GC and system statistics.
func CollectResourceUsage() *ResourceUsageData {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":  float64(memStats.HeapAlloc) / bytesPerMB,
			"heap_sys_mb":    float64(memStats.HeapSys) / bytesPerMB,
			"heap_inuse_mb":  float64(memStats.HeapInuse) / bytesPerMB,
			"heap_objects":   memStats.HeapObjects,
			"stack_inuse_mb": float64(memStats.StackInuse) / bytesPerMB,
			"sys_mb":         float64(memStats.Sys) / bytesPerMB,
		},
		GCStats: map[string]any{
			"num_gc":            memStats.NumGC,
			"num_forced_gc":     memStats.NumForcedGC,
			"gc_cpu_fraction":   memStats.GCCPUFraction,
			"gc_pause_total_ns": memStats.PauseTotalNs,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
	}
}

// handleStatusResource reports server health together with a resource usage
// snapshot and the cached version metadata.
func (c *serverCache) handleStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info := c.snapshot()
	usage := CollectResourceUsage()

	status := map[string]any{
		"status":    "healthy",
		"timestamp": usage.Timestamp,
		"server":    info["name"],
		"version":   info["version"],
		"resources": usage,
	}

	jsonData, err := marshalIndent(status)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      URIServerStatus,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
