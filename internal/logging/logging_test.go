package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDir_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	closer, err := InitDir(dir)
	if err != nil {
		t.Fatalf("InitDir() failed: %v", err)
	}

	Logger.Info("hello from test", "key", "value")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tagdo.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing message, got: %s", data)
	}
}
