// If you are AI: This file provides helper functions for starting and managing server processes in tests.

package itest

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

// binaryPath points at the amfd binary built once in TestMain.
var binaryPath string

// requireIntegration skips the test unless integration runs are requested
// with ITEST=1.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("ITEST") != "1" {
		t.Skip("Set ITEST=1 to run integration tests")
	}
}

// findFreePort reserves and releases a TCP port for the server under test.
func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

// writeServerConfig writes a config bound to port with a small payload cap
// and returns its path.
func writeServerConfig(t *testing.T, port int) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := fmt.Sprintf(`server:
  port: %d

inspect:
  max_payload_bytes: 4096

api:
  enabled: true
  recent_entries: 16
`, port)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

// startServer launches amfd on a free port and blocks until it reports
// healthy. The process is interrupted and reaped when the test ends.
func startServer(t *testing.T) int {
	t.Helper()

	port := findFreePort(t)
	configPath := writeServerConfig(t, port)

	cmd := exec.Command(binaryPath, "--config", configPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	t.Cleanup(func() {
		cmd.Process.Signal(syscall.SIGINT)
		done := make(chan struct{})
		go func() {
			cmd.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(3 * time.Second):
			cmd.Process.Kill()
			<-done
		}
	})

	if err := WaitForHealth(port, 5*time.Second); err != nil {
		t.Fatalf("Health endpoint not available: %v", err)
	}

	return port
}

// WaitForHealth waits for the health endpoint to become available.
// Returns an error if the endpoint is not available within the timeout.
func WaitForHealth(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/healthz", port)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("health endpoint not available after %v", timeout)
}
