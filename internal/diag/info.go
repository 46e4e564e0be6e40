// Package diag builds the text payload for the additive INFO command: a
// Redis-compatible text snapshot (sent as a bulk string) of server, client, memory, and
// general statistics. It carries no keyspace semantics and mutates
// nothing, so it sits alongside the command table without touching any
// of the spec's reply/error contracts.
package diag

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is the subset of server.AppState that diag needs, expressed as an
// interface so this package never imports internal/server (which in turn
// depends on internal/command, avoiding an import cycle).
type Stats interface {
	Stats() (totalConns, totalCommands int64, numClients int)
}

// Build renders the INFO payload for one snapshot in time. port is the
// listening port, startTime the server's start time, and stats the
// running connection/command counters.
func Build(port int, startTime time.Time, stats Stats) string {
	totalConns, totalCommands, numClients := stats.Stats()

	exePath, err := os.Executable()
	if err != nil {
		exePath = ""
	}

	var memTotal uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		memTotal = vm.Total
	}

	server := map[string]string{
		"redikv_version": "v1.0.0",
		"process_id":     strconv.Itoa(os.Getpid()),
		"tcp_port":       strconv.Itoa(port),
		"server_time":    fmt.Sprint(time.Now().UnixMicro()),
		"uptime_seconds": fmt.Sprintf("%d", int64(time.Since(startTime).Seconds())),
		"server_path":    exePath,
	}
	clients := map[string]string{
		"connected_clients": fmt.Sprint(numClients),
	}
	memory := map[string]string{
		"total_system_memory": fmt.Sprintf("%d B", memTotal),
	}
	general := map[string]string{
		"total_connections_received": fmt.Sprint(totalConns),
		"total_commands_processed":   fmt.Sprint(totalCommands),
	}

	msg := "\n"
	msg += printCategory("Server", server)
	msg += printCategory("Clients", clients)
	msg += printCategory("Memory", memory)
	msg += printCategory("General", general)
	return msg
}

func printCategory(header string, m map[string]string) string {
	s := fmt.Sprintf("# %s\n", header)
	for k, v := range m {
		s += fmt.Sprintf("%26s: %s\n", k, v)
	}
	s += "\n"
	return s
}
