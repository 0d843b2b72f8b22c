package health

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeVerifier struct {
	err error
}

func (f fakeVerifier) VerifyConnectivity(ctx context.Context) error {
	return f.err
}

func TestGraphCheck(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		status := GraphCheck(context.Background(), fakeVerifier{})
		if !status.IsHealthy() {
			t.Errorf("expected healthy, got %+v", status)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		status := GraphCheck(context.Background(), fakeVerifier{err: errors.New("refused")})
		if !status.IsUnhealthy() {
			t.Errorf("expected unhealthy, got %+v", status)
		}
		if status.Details["error"] != "refused" {
			t.Errorf("expected error detail, got %v", status.Details)
		}
	})

	t.Run("nil verifier", func(t *testing.T) {
		if status := GraphCheck(context.Background(), nil); !status.IsUnhealthy() {
			t.Errorf("expected unhealthy, got %+v", status)
		}
	})
}

func TestFileCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.keras")
	if err := os.WriteFile(path, []byte("weights"), 0o644); err != nil {
		t.Fatal(err)
	}

	if status := FileCheck(path); !status.IsHealthy() {
		t.Errorf("expected healthy for existing file, got %+v", status)
	}
	if status := FileCheck(filepath.Join(dir, "missing.keras")); !status.IsUnhealthy() {
		t.Errorf("expected unhealthy for missing file, got %+v", status)
	}
	if status := FileCheck(dir); !status.IsUnhealthy() {
		t.Errorf("expected unhealthy for directory, got %+v", status)
	}
	if status := FileCheck(""); !status.IsUnhealthy() {
		t.Errorf("expected unhealthy for empty path, got %+v", status)
	}
}

func TestDirWritableCheck(t *testing.T) {
	dir := t.TempDir()

	if status := DirWritableCheck(dir); !status.IsHealthy() {
		t.Errorf("expected healthy for writable dir, got %+v", status)
	}
	if status := DirWritableCheck(filepath.Join(dir, "absent")); !status.IsUnhealthy() {
		t.Errorf("expected unhealthy for missing dir, got %+v", status)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if status := DirWritableCheck(file); !status.IsUnhealthy() {
		t.Errorf("expected unhealthy for non-directory, got %+v", status)
	}
}

func TestNetworkCheck(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatal(err)
		}
		defer ln.Close()

		port := ln.Addr().(*net.TCPAddr).Port
		status := NetworkCheck("127.0.0.1", port, time.Second)
		if !status.IsHealthy() {
			t.Errorf("expected healthy, got %+v", status)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		if status := NetworkCheck("127.0.0.1", -1, time.Second); !status.IsUnhealthy() {
			t.Errorf("expected unhealthy, got %+v", status)
		}
	})

	t.Run("empty host", func(t *testing.T) {
		if status := NetworkCheck("", 80, time.Second); !status.IsUnhealthy() {
			t.Errorf("expected unhealthy, got %+v", status)
		}
	})
}

func TestReport_Healthy(t *testing.T) {
	report := Report{
		"graph": Healthy(""),
		"model": Healthy(""),
	}
	if !report.Healthy() {
		t.Error("expected all-healthy report to be healthy")
	}

	report["storage"] = Degraded("slow disk", nil)
	if report.Healthy() {
		t.Error("expected report with degraded component to be unhealthy")
	}
}
