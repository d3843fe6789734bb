package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New("~/calendars")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if want := filepath.Join(home, "calendars"); s.Dir() != want {
		t.Errorf("Dir() = %q, want %q", s.Dir(), want)
	}
}

func TestFileName(t *testing.T) {
	date := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		selection Selection
		ext       string
		want      string
	}{
		{SelectionAll, "ics", "03-04-2024 all calendar items.ics"},
		{SelectionBold, "csv", "03-04-2024 bold calendar items.csv"},
	}

	for _, tt := range tests {
		if got := FileName(date, tt.selection, tt.ext); got != tt.want {
			t.Errorf("FileName(%s, %s) = %q, want %q", tt.selection, tt.ext, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.WriteFile("out.csv", []byte("first"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := s.WriteFile("out.csv", []byte("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 file, got %d", len(entries))
	}
}
