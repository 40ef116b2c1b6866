package shader

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestProgramName(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"/shaders/basic.vert", "basic", true},
		{"skybox.frag", "skybox", true},
		{"basic.vert.swp", "", false},
		{"README.md", "", false},
	}
	for _, tt := range tests {
		got, ok := programName(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("programName(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWatcherReportsEditedProgram(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir, nil)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "basic.frag"), []byte("#version 410 core\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if names := w.Changed(); len(names) > 0 {
			if !slices.Equal(names, []string{"basic"}) {
				t.Fatalf("Changed() = %v, want [basic]", names)
			}
			if again := w.Changed(); len(again) != 0 {
				t.Errorf("Changed() repeated %v", again)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("edit to basic.frag was never reported")
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestNilWatcher(t *testing.T) {
	var w *Watcher
	if w.Changed() != nil || w.Close() != nil {
		t.Error("nil watcher should be inert")
	}
}
