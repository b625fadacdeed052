package blur

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return lines
}

func TestFileDiagnostics(t *testing.T) {
	t.Run("formats worker number and milliseconds", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := FileDiagnostics{Dir: dir}.Open(2)
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}
		_ = sink.Record(2, 1500*time.Microsecond)
		_ = sink.Record(2, 3*time.Millisecond)
		if err := sink.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}

		lines := readLines(t, filepath.Join(dir, "thread3.txt"))
		want := []string{"3\t1.5", "3\t3"}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %d", len(want), len(lines))
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
			}
		}
	})

	t.Run("existing log is truncated", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "thread1.txt")
		if err := os.WriteFile(path, []byte("stale\nstale\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		sink, err := FileDiagnostics{Dir: dir}.Open(0)
		if err != nil {
			t.Fatalf("open failed: %v", err)
		}
		_ = sink.Record(0, 0)
		_ = sink.Close()

		lines := readLines(t, path)
		if len(lines) != 1 || lines[0] != "1\t0" {
			t.Errorf("unexpected content %q", lines)
		}
	})
}

func TestNopDiagnostics(t *testing.T) {
	sink, err := NopDiagnostics{}.Open(0)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := sink.Record(0, time.Second); err != nil {
		t.Errorf("record failed: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
