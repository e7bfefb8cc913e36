package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	cfgPath := filepath.Join(dir, "grove.yaml")
	body := "logging:\n  file: " + filepath.Join(logDir, "grove.log") + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--config", cfgPath))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("grove %v: %v", args, err)
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("grove %v should not create the log dir, stat err: %v", args, err)
	}
	return out.String()
}

func TestThemesCommand(t *testing.T) {
	out := run(t, "themes", "--theme", "blue")
	if !strings.Contains(out, "* blue") {
		t.Errorf("themes output should mark blue:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out := run(t, "config")
	for _, want := range []string{"version: 1", "theme: orange", "completeDelayMs: 1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
