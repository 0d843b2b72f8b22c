package health

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"
)

// State is the coarse outcome of a health check.
type State string

const (
	// StateHealthy indicates the component is fully operational.
	StateHealthy State = "healthy"

	// StateDegraded indicates the component is operational but impaired.
	StateDegraded State = "degraded"

	// StateUnhealthy indicates the component is not operational.
	StateUnhealthy State = "unhealthy"
)

// Status is the result of a single health check.
type Status struct {
	// State is the coarse outcome.
	State State `json:"state"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message,omitempty"`

	// Details carries diagnostic context such as the underlying error.
	Details map[string]any `json:"details,omitempty"`
}

// IsHealthy returns true if the state is StateHealthy.
func (s Status) IsHealthy() bool { return s.State == StateHealthy }

// IsDegraded returns true if the state is StateDegraded.
func (s Status) IsDegraded() bool { return s.State == StateDegraded }

// IsUnhealthy returns true if the state is StateUnhealthy.
func (s Status) IsUnhealthy() bool { return s.State == StateUnhealthy }

// Healthy creates a healthy status with an optional message.
func Healthy(message string) Status {
	return Status{State: StateHealthy, Message: message}
}

// Degraded creates a degraded status with a message and optional details.
func Degraded(message string, details map[string]any) Status {
	return Status{State: StateDegraded, Message: message, Details: details}
}

// Unhealthy creates an unhealthy status with a message and optional details.
func Unhealthy(message string, details map[string]any) Status {
	return Status{State: StateUnhealthy, Message: message, Details: details}
}

// Report maps component names to their check results.
type Report map[string]Status

// Healthy reports whether every component in the report is healthy.
func (r Report) Healthy() bool {
	for _, s := range r {
		if !s.IsHealthy() {
			return false
		}
	}
	return true
}

// ConnectivityVerifier is the slice of the graph store needed by GraphCheck.
type ConnectivityVerifier interface {
	VerifyConnectivity(ctx context.Context) error
}

// GraphCheck verifies that the knowledge store is reachable.
func GraphCheck(ctx context.Context, v ConnectivityVerifier) Status {
	if v == nil {
		return Unhealthy("graph store not configured", nil)
	}
	if err := v.VerifyConnectivity(ctx); err != nil {
		return Unhealthy("graph store unreachable", map[string]any{
			"error": err.Error(),
		})
	}
	return Healthy("graph store reachable")
}

// FileCheck verifies that a required file (e.g. classifier weights) exists
// and is a regular file.
func FileCheck(path string) Status {
	if path == "" {
		return Unhealthy("file path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Unhealthy(fmt.Sprintf("file %q not accessible", path), map[string]any{
			"path":  path,
			"error": err.Error(),
		})
	}
	if info.IsDir() {
		return Unhealthy(fmt.Sprintf("%q is a directory, expected a file", path), map[string]any{
			"path": path,
		})
	}

	return Healthy(fmt.Sprintf("file %q present (%d bytes)", path, info.Size()))
}

// DirWritableCheck verifies that a directory exists and is writable by
// creating and removing a probe file.
func DirWritableCheck(path string) Status {
	if path == "" {
		return Unhealthy("directory path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Unhealthy(fmt.Sprintf("directory %q not accessible", path), map[string]any{
			"path":  path,
			"error": err.Error(),
		})
	}
	if !info.IsDir() {
		return Unhealthy(fmt.Sprintf("%q is not a directory", path), map[string]any{
			"path": path,
		})
	}

	probe, err := os.CreateTemp(path, ".healthcheck-*")
	if err != nil {
		return Unhealthy(fmt.Sprintf("directory %q not writable", path), map[string]any{
			"path":  path,
			"error": err.Error(),
		})
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)

	return Healthy(fmt.Sprintf("directory %q writable", path))
}

// NetworkCheck verifies TCP connectivity to a host and port. Useful for
// probing the bolt or redis endpoint without a driver round trip.
func NetworkCheck(host string, port int, timeout time.Duration) Status {
	if host == "" {
		return Unhealthy("host cannot be empty", nil)
	}
	if port <= 0 || port > 65535 {
		return Unhealthy(fmt.Sprintf("invalid port %d", port), nil)
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return Unhealthy(fmt.Sprintf("cannot connect to %s", addr), map[string]any{
			"address": addr,
			"error":   err.Error(),
		})
	}
	_ = conn.Close()

	return Healthy(fmt.Sprintf("connected to %s", addr))
}
