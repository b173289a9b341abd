package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.log")
	lj := Setup(Options{File: path, MaxSizeMB: 1})
	if lj == nil {
		t.Fatal("expected a file writer")
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		lj.Close()
	})

	log.Printf("[INFO] hello %s", "file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] hello file") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestSetup_StdoutOnly(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	if lj := Setup(Options{}); lj != nil {
		t.Error("expected nil writer without a file")
	}
}
