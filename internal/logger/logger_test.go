package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// fileLogger builds a file-only logger at level and returns it with its path.
func fileLogger(t *testing.T, level string, rot Rotation) (*zap.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forest.log")
	l, err := New(Options{Level: level, File: path, Rotation: rot})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"DEBUG", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			l, path := fileLogger(t, tt.level, Rotation{MaxSizeMB: 10})
			l.Debug("mesh uploaded")
			l.Info("scene ready")
			l.Warn("texture unavailable")
			l.Error("regenerate failed")
			_ = l.Sync()

			content := readLog(t, path)
			for _, want := range tt.expected {
				if !strings.Contains(content, want) {
					t.Errorf("expected %s in log output", want)
				}
			}
			for _, not := range tt.excluded {
				if strings.Contains(content, not) {
					t.Errorf("unexpected %s in log output", not)
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("Warn"); err != nil || lvl != zapcore.WarnLevel {
		t.Errorf("ParseLevel(Warn) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Options{Level: "loud", Console: true}); err == nil {
		t.Error("New should reject an unknown level")
	}
}

func TestNewWithoutSinks(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without sinks should discard everything")
	}
}

func TestLogRotation(t *testing.T) {
	l, path := fileLogger(t, "info", Rotation{MaxSizeMB: 1, MaxBackups: 2})
	sugar := l.Sugar()

	// About 3 MB of output against a 1 MB limit.
	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		sugar.Infof("tree %d placed: %s", i, payload)
	}
	_ = l.Sync()

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name == "forest.log" || !strings.HasPrefix(name, "forest") {
			continue
		}
		rotated++
		// lumberjack names backups forest-YYYY-MM-DDTHH-MM-SS.mmm.log
		if !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s lacks a timestamp", name)
		}
	}
	if rotated == 0 {
		t.Error("expected at least one rotated file")
	}
}

func TestSetupNamedAndOrNop(t *testing.T) {
	prev := Log
	t.Cleanup(func() {
		Log = prev
		Sugar = prev.Sugar()
	})

	path := filepath.Join(t.TempDir(), "named.log")
	if err := Setup(Options{Level: "info", File: path}); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	Named("placement").Info("forest sampled")
	Warn("forest placement incomplete")
	OrNop(nil).Info("dropped")
	Sync()

	content := readLog(t, path)
	if !strings.Contains(content, "placement") {
		t.Errorf("expected component name in output, got %q", content)
	}
	if !strings.Contains(content, "incomplete") {
		t.Error("package-level Warn did not reach the global logger")
	}
	if strings.Contains(content, "dropped") {
		t.Error("no-op logger wrote to the global sink")
	}
}
